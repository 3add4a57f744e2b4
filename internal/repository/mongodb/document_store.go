package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"esummit/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type documentStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDocumentStore returns a domain.DocumentStore backed by the given MongoDB database.
func NewDocumentStore(client *mongo.Client, db *mongo.Database) domain.DocumentStore {
	return &documentStore{client: client, db: db}
}

// Open connects to the MongoDB deployment at uri and selects dbName.
// The driver connects lazily, so an unreachable server surfaces on first use.
func Open(ctx context.Context, uri, dbName string) (domain.DocumentStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return NewDocumentStore(client, client.Database(dbName)), nil
}

func (s *documentStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", domain.NewStorageError("insert", collection, err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *documentStore) FindAll(ctx context.Context, collection string) ([]domain.Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewStorageError("find", collection, err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, domain.NewStorageError("find", collection, err)
	}
	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, normalizeDocument(m))
	}
	return docs, nil
}

func (s *documentStore) FindByID(ctx context.Context, collection, id string, dest any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(dest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrNotFound
		}
		return domain.NewStorageError("find", collection, err)
	}
	return nil
}

func (s *documentStore) Ping(ctx context.Context) error {
	return domain.NewStorageError("ping", "", s.client.Ping(ctx, readpref.Primary()))
}

func (s *documentStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewStorageError("list collections", "", err)
	}
	return names, nil
}

func (s *documentStore) Name() string {
	return s.db.Name()
}

func (s *documentStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// normalizeDocument converts BSON-specific values into plain Go values:
// dates become time.Time, embedded documents become maps, arrays become slices.
// The top-level _id keeps its native type.
func normalizeDocument(m bson.M) domain.Document {
	doc := make(domain.Document, len(m))
	for k, v := range m {
		if k == domain.IDField {
			doc[k] = v
			continue
		}
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(val.T), 0).UTC()
	case bson.M:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = normalizeValue(inner)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = normalizeValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = normalizeValue(inner)
		}
		return out
	default:
		return v
	}
}
