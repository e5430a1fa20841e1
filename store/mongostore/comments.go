package mongostore

import (
	"context"

	"github.com/Srinandan2003/CollabSphere/database"
	"github.com/Srinandan2003/CollabSphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentStore struct {
	coll *mongo.Collection
}

func NewCommentStore(db *database.DB) *CommentStore {
	return &CommentStore{coll: db.Collection("comments")}
}

func (s *CommentStore) Insert(ctx context.Context, comment *models.Comment) error {
	_, err := s.coll.InsertOne(ctx, comment)
	return wrapErr(err)
}

func (s *CommentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &comment, nil
}

func (s *CommentStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, wrapErr(err)
	}
	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, wrapErr(err)
	}
	return comments, nil
}

func (s *CommentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *CommentStore) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"post": postID})
	return wrapErr(err)
}
