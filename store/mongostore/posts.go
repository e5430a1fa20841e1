package mongostore

import (
	"context"
	"regexp"

	"github.com/Srinandan2003/CollabSphere/database"
	"github.com/Srinandan2003/CollabSphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostStore struct {
	coll *mongo.Collection
}

func NewPostStore(db *database.DB) *PostStore {
	return &PostStore{coll: db.Collection("posts")}
}

func (s *PostStore) Insert(ctx context.Context, post *models.Post) error {
	_, err := s.coll.InsertOne(ctx, post)
	return wrapErr(err)
}

func (s *PostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &post, nil
}

func (s *PostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{})
}

func (s *PostStore) SearchByTitle(ctx context.Context, query string) ([]models.Post, error) {
	filter := bson.M{}
	if query != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}
	}
	return s.find(ctx, filter)
}

func (s *PostStore) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, wrapErr(err)
	}
	return posts, nil
}

// Update writes only the editable fields so a concurrent $push onto
// the comment list or $addToSet into the like set is never clobbered
// by a stale read-modify-write.
func (s *PostStore) Update(ctx context.Context, post *models.Post) error {
	set := bson.M{"title": post.Title, "content": post.Content}
	unset := bson.M{}
	if post.Media != "" {
		set["media"] = post.Media
	} else {
		unset["media"] = ""
	}
	if post.Category != nil {
		set["category"] = post.Category
	} else {
		unset["category"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": post.ID}, update)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *PostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *PostStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return s.updateLikes(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *PostStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return s.updateLikes(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *PostStore) updateLikes(ctx context.Context, postID primitive.ObjectID, update bson.M) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&post)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &post, nil
}

func (s *PostStore) PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *PostStore) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}
