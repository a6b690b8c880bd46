package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Telephone string             `bson:"telephone"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Type      string             `bson:"type"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d contactDoc) toDomain() domain.Contact {
	return domain.Contact{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Telephone: d.Telephone,
		Subject:   d.Subject,
		Message:   d.Message,
		Type:      d.Type,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type contactsRepo struct {
	coll *mongo.Collection
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	created := bsonTime(c.CreatedAt)
	doc := contactDoc{
		ID:        primitive.NewObjectIDFromTimestamp(created),
		Name:      c.Name,
		Email:     c.Email,
		Telephone: c.Telephone,
		Subject:   c.Subject,
		Message:   c.Message,
		Type:      c.Type,
		CreatedAt: created,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Contact{}, mapError(err)
	}
	return doc.toDomain(), nil
}

func (r *contactsRepo) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Contact, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// DeleteContact treats ids that are not valid ObjectIDs as unknown.
func (r *contactsRepo) DeleteContact(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
