package domain

import "context"

// DefaultTicketStatus is the status given to orders submitted without one.
const DefaultTicketStatus = "pending"

// TicketOrder is a ticket purchase, stored in the "ticketorder" collection.
// Required fields are pointers so that presence, not a non-zero value, is what is checked.
// EventID is an advisory reference; Status is an open string (pending, confirmed, cancelled by convention).
// swagger:model TicketOrder
type TicketOrder struct {
	EventID    *string `json:"event_id" bson:"event_id" validate:"required"`
	BuyerName  *string `json:"buyer_name" bson:"buyer_name" validate:"required"`
	BuyerEmail *string `json:"buyer_email" bson:"buyer_email" validate:"required,email"`
	Quantity   *int    `json:"quantity" bson:"quantity" validate:"required,gte=1,lte=10"`
	AmountPaid float64 `json:"amount_paid" bson:"amount_paid" validate:"gte=0"`
	Status     string  `json:"status" bson:"status"`
}

// ApplyDefaults fills unset optional fields.
func (t *TicketOrder) ApplyDefaults() {
	if t.Status == "" {
		t.Status = DefaultTicketStatus
	}
}

// Validate implements Validator.
func (t *TicketOrder) Validate() error {
	return validateStruct(t)
}

// TicketService creates and lists ticket orders.
type TicketService interface {
	CreateTicketOrder(ctx context.Context, order *TicketOrder) (string, error)
	ListTicketOrders(ctx context.Context) ([]Document, error)
}
