package services

import (
	"context"
	"time"

	"esummit/internal/domain"
)

// withTimeout bounds a store call. A non-positive timeout leaves ctx unbounded.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// insertRecord stores record in collection. A nil store means no database was configured.
func insertRecord(ctx context.Context, store domain.DocumentStore, collection string, record any) (string, error) {
	if store == nil {
		return "", domain.ErrStoreUnavailable
	}
	return store.Insert(ctx, collection, record)
}

func listRecords(ctx context.Context, store domain.DocumentStore, collection string) ([]domain.Document, error) {
	if store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return store.FindAll(ctx, collection)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
