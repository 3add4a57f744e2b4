package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"esummit/internal/domain"
	"esummit/internal/repository/mongodb"
	"esummit/internal/repository/postgres"
)

// DefaultDatabaseName is used for MongoDB when neither DATABASE_NAME nor the URL path names a database.
const DefaultDatabaseName = "esummit"

// Backend identifies a document store implementation.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
)

// DetectBackend picks the store implementation from the URL scheme.
func DetectBackend(databaseURL string) (Backend, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
}

// DatabaseName returns name if set, else the database in the URL path, else DefaultDatabaseName.
func DatabaseName(databaseURL, name string) string {
	if name != "" {
		return name
	}
	if u, err := url.Parse(databaseURL); err == nil {
		if p := strings.Trim(u.Path, "/"); p != "" {
			return p
		}
	}
	return DefaultDatabaseName
}

// Open returns the document store for databaseURL. dbName only applies to MongoDB;
// Postgres uses the database named in the URL.
func Open(ctx context.Context, databaseURL, dbName string) (domain.DocumentStore, error) {
	backend, err := DetectBackend(databaseURL)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendMongo:
		return mongodb.Open(ctx, databaseURL, DatabaseName(databaseURL, dbName))
	default:
		return postgres.Open(ctx, databaseURL)
	}
}
