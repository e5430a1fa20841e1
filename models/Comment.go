package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Text      string             `json:"text" bson:"text"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CommentWithUser is a comment resolved with its author's display name,
// the shape the post-detail page consumes.
type CommentWithUser struct {
	Comment
	Username string `json:"userName"`
}
