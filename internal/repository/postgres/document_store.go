package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"esummit/internal/domain"

	"github.com/lib/pq"
)

// pq error codes handled by the store.
const (
	codeUndefinedTable       = "42P01"
	codeInvalidTextRepresent = "22P02"
	codeUniqueViolation      = "23505"
	codeDuplicateTable       = "42P07"
)

// documentStore keeps each collection in its own table:
// id UUID generated by Postgres, doc JSONB holding the record.
type documentStore struct {
	DB     *sql.DB
	dbName string

	// ensured holds the collections whose table has been created by this process.
	ensured sync.Map
}

// NewDocumentStore returns a domain.DocumentStore implemented with Postgres JSONB tables.
func NewDocumentStore(db *sql.DB, dbName string) domain.DocumentStore {
	return &documentStore{DB: db, dbName: dbName}
}

// Open connects to the Postgres database at url, resolves its name and
// creates the table of every collection in domain.Collections.
func Open(ctx context.Context, url string) (domain.DocumentStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	var name string
	if err := db.QueryRowContext(ctx, `SELECT current_database()`).Scan(&name); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	store := &documentStore{DB: db, dbName: name}
	if err := store.ensureTables(ctx, domain.Collections); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return store, nil
}

func (s *documentStore) ensureTables(ctx context.Context, collections []string) error {
	for _, c := range collections {
		if err := s.ensureTable(ctx, c); err != nil {
			return domain.NewStorageError("create table", c, err)
		}
	}
	return nil
}

// ensureTable creates the table of collection once per process. Another process
// creating the same table at the same time makes Postgres report a duplicate
// pg_type row or relation; the table exists either way.
func (s *documentStore) ensureTable(ctx context.Context, collection string) error {
	if _, ok := s.ensured.Load(collection); ok {
		return nil
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, pq.QuoteIdentifier(collection))
	if _, err := s.DB.ExecContext(ctx, query); err != nil && !isPQCode(err, codeUniqueViolation) && !isPQCode(err, codeDuplicateTable) {
		return err
	}
	s.ensured.Store(collection, struct{}{})
	return nil
}

func (s *documentStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	doc, err := json.Marshal(record)
	if err != nil {
		return "", domain.NewStorageError("insert", collection, fmt.Errorf("encode document: %w", err))
	}
	if err := s.ensureTable(ctx, collection); err != nil {
		return "", domain.NewStorageError("insert", collection, err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1) RETURNING id`, pq.QuoteIdentifier(collection))
	var id string
	if err := s.DB.QueryRowContext(ctx, query, string(doc)).Scan(&id); err != nil {
		return "", domain.NewStorageError("insert", collection, err)
	}
	return id, nil
}

func (s *documentStore) FindAll(ctx context.Context, collection string) ([]domain.Document, error) {
	query := fmt.Sprintf(`SELECT id, doc FROM %s`, pq.QuoteIdentifier(collection))
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		if isPQCode(err, codeUndefinedTable) {
			return []domain.Document{}, nil
		}
		return nil, domain.NewStorageError("find", collection, err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, domain.NewStorageError("find", collection, err)
		}
		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, domain.NewStorageError("find", collection, err)
		}
		doc[domain.IDField] = id
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("find", collection, err)
	}
	return docs, nil
}

func (s *documentStore) FindByID(ctx context.Context, collection, id string, dest any) error {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, pq.QuoteIdentifier(collection))
	var raw []byte
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isPQCode(err, codeUndefinedTable) || isPQCode(err, codeInvalidTextRepresent) {
			return domain.ErrNotFound
		}
		return domain.NewStorageError("find", collection, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return domain.NewStorageError("find", collection, fmt.Errorf("decode document: %w", err))
	}
	return nil
}

func (s *documentStore) Ping(ctx context.Context) error {
	return domain.NewStorageError("ping", "", s.DB.PingContext(ctx))
}

func (s *documentStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, domain.NewStorageError("list collections", "", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, domain.NewStorageError("list collections", "", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list collections", "", err)
	}
	return names, nil
}

func (s *documentStore) Name() string {
	return s.dbName
}

func (s *documentStore) Close(_ context.Context) error {
	return s.DB.Close()
}

// decodeDocument keeps JSON numbers as json.Number so integers survive the round trip.
func decodeDocument(raw []byte) (domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	doc := domain.Document{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func isPQCode(err error, code pq.ErrorCode) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == code
}
