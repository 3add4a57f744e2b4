package services

import (
	"context"
	"fmt"
	"time"

	"esummit/internal/domain"
)

type speakerService struct {
	store          domain.DocumentStore
	contextTimeout time.Duration
}

func NewSpeakerService(store domain.DocumentStore, timeout time.Duration) domain.SpeakerService {
	return &speakerService{store: store, contextTimeout: timeout}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, speaker *domain.Speaker) (string, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker.ApplyDefaults()
	if err := speaker.Validate(); err != nil {
		return "", err
	}
	id, err := insertRecord(ctx, s.store, domain.CollectionSpeaker, speaker)
	if err != nil {
		return "", fmt.Errorf("create speaker: %w", err)
	}
	return id, nil
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	docs, err := listRecords(ctx, s.store, domain.CollectionSpeaker)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return docs, nil
}
