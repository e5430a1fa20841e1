package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id"`
	Title     string               `json:"title" bson:"title"`
	Content   string               `json:"content" bson:"content"`
	Media     string               `json:"media,omitempty" bson:"media,omitempty"`
	Category  *primitive.ObjectID  `json:"category,omitempty" bson:"category,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Comments  []primitive.ObjectID `json:"comments" bson:"comments"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
