package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// adminDoc keeps the legacy schema: the hash lives under "password".
type adminDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

func (d adminDoc) toDomain() domain.Admin {
	created := d.CreatedAt
	if created.IsZero() {
		created = d.ID.Timestamp()
	}
	return domain.Admin{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.Password,
		CreatedAt:    created.UTC(),
	}
}

type adminsRepo struct {
	coll *mongo.Collection
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var doc adminDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		return domain.Admin{}, mapError(err)
	}
	return doc.toDomain(), nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	doc := adminDoc{
		ID:        primitive.NewObjectID(),
		Username:  a.Username,
		Password:  a.PasswordHash,
		CreatedAt: bsonTime(a.CreatedAt),
	}
	if a.ID != "" {
		oid, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return domain.Admin{}, err
		}
		doc.ID = oid
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Admin{}, mapError(err)
	}
	return doc.toDomain(), nil
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
