package controllers

import (
	"log/slog"
	"net/http"

	"esummit/internal/delivery/http/helpers"
	"esummit/internal/domain"
)

// TicketController handles ticket order intake. No payment is taken; orders are recorded with their status.
type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateTicketOrder godoc
// @Summary Place a ticket order
// @Description Record a ticket order. quantity must be between 1 and 10 and status defaults to "pending".
// @Description When amount_paid is omitted or zero it is priced from the referenced event, if that event exists.
// @Description A confirmation email is sent to buyer_email; delivery failures do not fail the order.
// @Tags tickets
// @Accept json
// @Produce json
// @Param order body domain.TicketOrder true "Ticket order"
// @Success 200 {object} helpers.CreatedResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 422 {object} helpers.ErrorResponse "error.code: validation_error"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/tickets [post]
func (c *TicketController) CreateTicketOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.TicketOrder
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateTicketOrder(r.Context(), &req)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreatedResponse{ID: id})
}

// ListTicketOrders godoc
// @Summary List ticket orders
// @Tags tickets
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /api/tickets [get]
func (c *TicketController) ListTicketOrders(w http.ResponseWriter, r *http.Request) {
	docs, err := c.Service.ListTicketOrders(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SerializeDocuments(docs))
}
