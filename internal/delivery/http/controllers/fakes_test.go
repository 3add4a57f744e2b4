package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"esummit/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memoryCollection stores records as documents the way a store would, keyed by generated ids.
type memoryCollection struct {
	mu   sync.Mutex
	docs []domain.Document
	err  error
}

func (m *memoryCollection) insert(record any) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	b, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := fmt.Sprintf("id-%d", len(m.docs)+1)
	doc[domain.IDField] = id
	m.docs = append(m.docs, doc)
	return id, nil
}

func (m *memoryCollection) list() ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Document(nil), m.docs...), nil
}

type fakeSpeakerService struct {
	memoryCollection
	last *domain.Speaker
}

func (f *fakeSpeakerService) CreateSpeaker(_ context.Context, s *domain.Speaker) (string, error) {
	f.last = s
	return f.insert(s)
}

func (f *fakeSpeakerService) ListSpeakers(_ context.Context) ([]domain.Document, error) {
	return f.list()
}

type fakeEventService struct {
	memoryCollection
	last *domain.Event
}

func (f *fakeEventService) CreateEvent(_ context.Context, e *domain.Event) (string, error) {
	f.last = e
	return f.insert(e)
}

func (f *fakeEventService) ListEvents(_ context.Context) ([]domain.Document, error) {
	return f.list()
}

type fakeTicketService struct {
	memoryCollection
	last *domain.TicketOrder
}

func (f *fakeTicketService) CreateTicketOrder(_ context.Context, t *domain.TicketOrder) (string, error) {
	f.last = t
	return f.insert(t)
}

func (f *fakeTicketService) ListTicketOrders(_ context.Context) ([]domain.Document, error) {
	return f.list()
}

type fakeHighlightService struct {
	memoryCollection
	last *domain.Highlight
}

func (f *fakeHighlightService) CreateHighlight(_ context.Context, h *domain.Highlight) (string, error) {
	f.last = h
	return f.insert(h)
}

func (f *fakeHighlightService) ListHighlights(_ context.Context) ([]domain.Document, error) {
	return f.list()
}

type fakeDiagnosticsService struct {
	report *domain.Diagnostics
}

func (f *fakeDiagnosticsService) Diagnose(_ context.Context) *domain.Diagnostics {
	return f.report
}
