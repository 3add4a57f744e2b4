package services

import (
	"context"
	"fmt"
	"time"

	"esummit/internal/domain"
)

type highlightService struct {
	store          domain.DocumentStore
	contextTimeout time.Duration
}

func NewHighlightService(store domain.DocumentStore, timeout time.Duration) domain.HighlightService {
	return &highlightService{store: store, contextTimeout: timeout}
}

func (s *highlightService) CreateHighlight(ctx context.Context, highlight *domain.Highlight) (string, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	highlight.ApplyDefaults()
	if err := highlight.Validate(); err != nil {
		return "", err
	}
	id, err := insertRecord(ctx, s.store, domain.CollectionHighlight, highlight)
	if err != nil {
		return "", fmt.Errorf("create highlight: %w", err)
	}
	return id, nil
}

func (s *highlightService) ListHighlights(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	docs, err := listRecords(ctx, s.store, domain.CollectionHighlight)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return docs, nil
}
