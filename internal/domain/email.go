package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// TicketConfirmationTemplate is the email sent for every accepted ticket order.
const TicketConfirmationTemplate = "ticket_confirmation"

// EmailTemplates lists every email the service can send.
var EmailTemplates = []string{TicketConfirmationTemplate}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TicketConfirmationEmailData holds data for the ticket order confirmation email.
type TicketConfirmationEmailData struct {
	OrderID    string
	Email      string
	BuyerName  string
	EventID    string
	EventName  string // empty when the event was not looked up
	Quantity   int
	AmountPaid float64
	Status     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTicketConfirmation(ctx context.Context, data *TicketConfirmationEmailData) error
}
