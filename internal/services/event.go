package services

import (
	"context"
	"fmt"
	"time"

	"esummit/internal/domain"
)

type eventService struct {
	store          domain.DocumentStore
	contextTimeout time.Duration
}

func NewEventService(store domain.DocumentStore, timeout time.Duration) domain.EventService {
	return &eventService{store: store, contextTimeout: timeout}
}

// CreateEvent stores the event. Speaker IDs are kept as given and not checked against the speaker collection.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (string, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.ApplyDefaults()
	if err := event.Validate(); err != nil {
		return "", err
	}
	id, err := insertRecord(ctx, s.store, domain.CollectionEvent, event)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	docs, err := listRecords(ctx, s.store, domain.CollectionEvent)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return docs, nil
}
