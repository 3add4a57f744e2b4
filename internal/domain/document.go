package domain

import "context"

// Collection names, one per record kind.
const (
	CollectionSpeaker     = "speaker"
	CollectionEvent       = "event"
	CollectionTicketOrder = "ticketorder"
	CollectionHighlight   = "highlight"
)

// Collections lists every collection the service writes to.
var Collections = []string{CollectionSpeaker, CollectionEvent, CollectionTicketOrder, CollectionHighlight}

// IDField is the key under which a stored document carries its store-generated identifier.
const IDField = "_id"

// Document is one stored record as read back from a collection.
// The identifier is kept in its store-native type under IDField.
type Document map[string]any

// DocumentStore persists records in named collections.
type DocumentStore interface {
	// Insert stores record in collection and returns the generated identifier.
	Insert(ctx context.Context, collection string, record any) (string, error)
	// FindAll returns every document of collection in storage order.
	FindAll(ctx context.Context, collection string) ([]Document, error)
	// FindByID decodes the document with the given identifier into dest.
	// It returns ErrNotFound when no document matches or id is not a valid identifier.
	FindByID(ctx context.Context, collection, id string, dest any) error
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	// Name is the database name.
	Name() string
	Close(ctx context.Context) error
}
