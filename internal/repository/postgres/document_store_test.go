package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"esummit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDocumentStore_Insert(t *testing.T) {
	ctx := context.Background()
	speaker := &domain.Speaker{Name: ptr("Ravi"), Socials: map[string]string{}}
	speakerJSON := `{"name":"Ravi","title":null,"company":null,"bio":null,"photo_url":null,"socials":{}}`

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "speaker"`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`INSERT INTO "speaker" \(doc\) VALUES \(\$1\) RETURNING id`).
					WithArgs(speakerJSON).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("5b8f6a1e-2f7c-4a59-9c1e-0d6f1b2a3c4d"))
			},
			wantID: "5b8f6a1e-2f7c-4a59-9c1e-0d6f1b2a3c4d",
		},
		{
			name: "create table fails",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "speaker"`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "insert rejected",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "speaker"`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`INSERT INTO "speaker"`).
					WillReturnError(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewDocumentStore(db, "esummit")
			id, err := store.Insert(ctx, domain.CollectionSpeaker, speaker)
			if tt.wantErr {
				require.Error(t, err)
				var serr *domain.StorageError
				require.True(t, errors.As(err, &serr))
				assert.Equal(t, domain.CollectionSpeaker, serr.Collection)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_Insert_EnsuresTableOnce(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "highlight"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "highlight"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1"))
	mock.ExpectQuery(`INSERT INTO "highlight"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-2"))

	store := NewDocumentStore(db, "esummit")
	h := &domain.Highlight{Year: ptr(2024), Headline: ptr("Sold out")}
	id1, err := store.Insert(ctx, domain.CollectionHighlight, h)
	require.NoError(t, err)
	id2, err := store.Insert(ctx, domain.CollectionHighlight, h)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id1)
	assert.Equal(t, "id-2", id2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_Insert_ConcurrentTableCreation(t *testing.T) {
	for _, code := range []pq.ErrorCode{codeUniqueViolation, codeDuplicateTable} {
		t.Run(string(code), func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "ticketorder"`).
				WillReturnError(&pq.Error{Code: code, Message: "duplicate key value violates unique constraint \"pg_type_typname_nsp_index\""})
			mock.ExpectQuery(`INSERT INTO "ticketorder"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1"))
			mock.ExpectQuery(`INSERT INTO "ticketorder"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-2"))

			store := NewDocumentStore(db, "esummit")
			order := &domain.TicketOrder{EventID: ptr("ev"), BuyerName: ptr("Asha"), BuyerEmail: ptr("asha@example.com"), Quantity: ptr(1)}
			id, err := store.Insert(context.Background(), domain.CollectionTicketOrder, order)
			require.NoError(t, err)
			assert.Equal(t, "id-1", id)
			_, err = store.Insert(context.Background(), domain.CollectionTicketOrder, order)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_EnsureTables(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, c := range domain.Collections {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "` + c + `"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery(`INSERT INTO "speaker"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1"))

	store := &documentStore{DB: db, dbName: "esummit"}
	require.NoError(t, store.ensureTables(ctx, domain.Collections))
	// Tables created up front are not created again on first insert.
	_, err = store.Insert(ctx, domain.CollectionSpeaker, &domain.Speaker{Name: ptr("Ravi")})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	db2, mock2, err := sqlmock.New()
	require.NoError(t, err)
	defer db2.Close()
	mock2.ExpectExec(`CREATE TABLE IF NOT EXISTS "speaker"`).
		WillReturnError(&pq.Error{Code: "42501", Message: "permission denied for schema public"})

	err = (&documentStore{DB: db2}).ensureTables(ctx, domain.Collections)
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, domain.CollectionSpeaker, serr.Collection)
	require.NoError(t, mock2.ExpectationsWereMet())
}

func TestDocumentStore_FindAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []domain.Document
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, doc FROM "highlight"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}).
						AddRow("id-1", []byte(`{"year":2024,"headline":"Sold out","stats":{"attendees":1200},"gallery":[]}`)).
						AddRow("id-2", []byte(`{"year":2023,"headline":"First edition","stats":{},"gallery":["a.jpg"]}`)))
			},
			want: []domain.Document{
				{
					"_id":      "id-1",
					"year":     json.Number("2024"),
					"headline": "Sold out",
					"stats":    map[string]any{"attendees": json.Number("1200")},
					"gallery":  []any{},
				},
				{
					"_id":      "id-2",
					"year":     json.Number("2023"),
					"headline": "First edition",
					"stats":    map[string]any{},
					"gallery":  []any{"a.jpg"},
				},
			},
		},
		{
			name: "empty collection",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, doc FROM "highlight"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}))
			},
			want: []domain.Document{},
		},
		{
			name: "table not created yet",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, doc FROM "highlight"`).
					WillReturnError(&pq.Error{Code: "42P01", Message: `relation "highlight" does not exist`})
			},
			want: []domain.Document{},
		},
		{
			name: "connection failure",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, doc FROM "highlight"`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "corrupt document",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, doc FROM "highlight"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "doc"}).AddRow("id-1", []byte(`{not json`)))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewDocumentStore(db, "esummit")
			got, err := store.FindAll(ctx, domain.CollectionHighlight)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_FindByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-uuid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc FROM "event" WHERE id = \$1`).
					WithArgs("ev-uuid").
					WillReturnRows(sqlmock.NewRows([]string{"doc"}).
						AddRow([]byte(`{"name":"Keynote","date":"2025-02-14T10:00:00Z","location":"Hall A","speaker_ids":[],"price":100,"capacity":null,"tags":[]}`)))
			},
			want: &domain.Event{
				Name:       ptr("Keynote"),
				Date:       domain.NewEventDate(time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)),
				Location:   ptr("Hall A"),
				SpeakerIDs: []string{},
				Price:      100,
				Tags:       []string{},
			},
		},
		{
			name: "no rows",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc FROM "event"`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "malformed uuid",
			id:   "not-a-uuid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc FROM "event"`).
					WithArgs("not-a-uuid").
					WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "connection failure",
			id:   "ev-uuid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT doc FROM "event"`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			store := NewDocumentStore(db, "esummit")
			var got domain.Event
			err = store.FindByID(ctx, domain.CollectionEvent, tt.id, &got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Date)
			require.True(t, tt.want.Date.Time().Equal(got.Date.Time()))
			got.Date = tt.want.Date
			require.Equal(t, *tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDocumentStore_ListCollections(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT table_name FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("event").AddRow("speaker"))

	store := NewDocumentStore(db, "esummit")
	names, err := store.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"event", "speaker"}, names)
	assert.Equal(t, "esummit", store.Name())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_Ping(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	store := NewDocumentStore(db, "esummit")
	require.NoError(t, store.Ping(ctx))
	err = store.Ping(ctx)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
