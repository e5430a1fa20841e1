package mongostore

import (
	"context"

	"github.com/Srinandan2003/CollabSphere/database"
	"github.com/Srinandan2003/CollabSphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryStore struct {
	coll *mongo.Collection
}

func NewCategoryStore(db *database.DB) *CategoryStore {
	return &CategoryStore{coll: db.Collection("categories")}
}

// Insert relies on the unique categories.name index for conflict
// detection; a duplicate surfaces as store.ErrDuplicate.
func (s *CategoryStore) Insert(ctx context.Context, category *models.Category) error {
	_, err := s.coll.InsertOne(ctx, category)
	return wrapErr(err)
}

func (s *CategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, wrapErr(err)
	}
	return categories, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}
