// Package mongo stores admins and contacts in MongoDB using the collection
// and field names of the legacy Express deployment, so an existing
// database (bcrypt admin hashes included) can be served as-is.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DefaultDatabase = "portfolio"

	adminsCollection   = "admins"
	contactsCollection = "contacts"
)

type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	admins   *mongo.Collection
	contacts *mongo.Collection
}

// NewStore connects to uri and uses database dbName (DefaultDatabase when
// empty).
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	if dbName == "" {
		dbName = DefaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:   client,
		db:       db,
		admins:   db.Collection(adminsCollection),
		contacts: db.Collection(contactsCollection),
	}, nil
}

// ApplyMigrations creates the indexes the repos rely on. Index creation is
// idempotent.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	_, err := s.admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("admins index: %w", err)
	}

	_, err = s.contacts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	if err != nil {
		return fmt.Errorf("contacts index: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Admins() store.Admins     { return &adminsRepo{coll: s.admins} }
func (s *Store) Contacts() store.Contacts { return &contactsRepo{coll: s.contacts} }

func mapError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrAlreadyExists
	default:
		return err
	}
}

// bsonTime truncates to the millisecond precision of a BSON datetime.
func bsonTime(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Millisecond)
}
