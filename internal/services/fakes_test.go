package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"esummit/internal/domain"
)

// fakeDocumentStore is an in-memory DocumentStore. Records are stored as their JSON form.
type fakeDocumentStore struct {
	mu          sync.Mutex
	collections map[string][]domain.Document
	nextID      int
	name        string
	insertErr   error // if set, Insert returns this
	findErr     error // if set, FindAll and FindByID return this
	pingErr     error
	listErr     error
	listNames   []string // if set, ListCollections returns these instead of the stored names
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{
		collections: make(map[string][]domain.Document),
		nextID:      1,
		name:        "esummit",
	}
}

func (f *fakeDocumentStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	doc := domain.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("doc-%d", f.nextID)
	f.nextID++
	doc[domain.IDField] = id
	f.collections[collection] = append(f.collections[collection], doc)
	return id, nil
}

func (f *fakeDocumentStore) FindAll(ctx context.Context, collection string) ([]domain.Document, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Document, 0, len(f.collections[collection]))
	out = append(out, f.collections[collection]...)
	return out, nil
}

func (f *fakeDocumentStore) FindByID(ctx context.Context, collection, id string, dest any) error {
	if f.findErr != nil {
		return f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.collections[collection] {
		if doc[domain.IDField] == id {
			raw, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			return json.Unmarshal(raw, dest)
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDocumentStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listNames != nil {
		return f.listNames, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.collections))
	for name := range f.collections {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeDocumentStore) Name() string { return f.name }

func (f *fakeDocumentStore) Close(ctx context.Context) error { return nil }

// fakeEmailService records ticket confirmations.
type fakeEmailService struct {
	err  error
	sent []*domain.TicketConfirmationEmailData
}

func (f *fakeEmailService) SendTicketConfirmation(ctx context.Context, data *domain.TicketConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeMailer records the last message sent.
type fakeMailer struct {
	err                     error
	to, subject, html, text string
	calls                   int
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return nil
}

// fakeRenderer returns fixed content, or err when set.
type fakeRenderer struct {
	err          error
	lastTemplate string
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.lastTemplate = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}
