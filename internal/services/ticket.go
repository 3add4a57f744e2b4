package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"esummit/internal/domain"
)

type ticketService struct {
	store          domain.DocumentStore
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewTicketService returns a TicketService. emailService may be nil, in which case no confirmation is sent.
func NewTicketService(store domain.DocumentStore, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.TicketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ticketService{
		store:          store,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *ticketService) CreateTicketOrder(ctx context.Context, order *domain.TicketOrder) (string, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	order.ApplyDefaults()
	if err := order.Validate(); err != nil {
		return "", err
	}
	event := s.priceOrder(ctx, order)

	id, err := insertRecord(ctx, s.store, domain.CollectionTicketOrder, order)
	if err != nil {
		return "", fmt.Errorf("create ticket order: %w", err)
	}
	s.sendConfirmation(ctx, id, order, event)
	return id, nil
}

// priceOrder fills AmountPaid from the referenced event's price when the order arrives unpriced.
// It is best-effort: a missing event or an unavailable store leaves the order unchanged.
// It returns the event when one was found.
func (s *ticketService) priceOrder(ctx context.Context, order *domain.TicketOrder) *domain.Event {
	if order.AmountPaid != 0 || order.EventID == nil || order.Quantity == nil || s.store == nil {
		return nil
	}
	var event domain.Event
	if err := s.store.FindByID(ctx, domain.CollectionEvent, *order.EventID, &event); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "event price lookup failed", "event_id", *order.EventID, "err", err)
		}
		return nil
	}
	order.AmountPaid = event.Price * float64(*order.Quantity)
	return &event
}

func (s *ticketService) sendConfirmation(ctx context.Context, orderID string, order *domain.TicketOrder, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	data := &domain.TicketConfirmationEmailData{
		OrderID:    orderID,
		Email:      deref(order.BuyerEmail),
		BuyerName:  deref(order.BuyerName),
		EventID:    deref(order.EventID),
		Quantity:   deref(order.Quantity),
		AmountPaid: order.AmountPaid,
		Status:     order.Status,
	}
	if event != nil {
		data.EventName = deref(event.Name)
	}
	if err := s.emailService.SendTicketConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "ticket confirmation email failed", "order_id", orderID, "err", err)
	}
}

func (s *ticketService) ListTicketOrders(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	docs, err := listRecords(ctx, s.store, domain.CollectionTicketOrder)
	if err != nil {
		return nil, fmt.Errorf("list ticket orders: %w", err)
	}
	return docs, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
