// Package store defines the entity-store contracts the services depend
// on. The mongostore package implements them against MongoDB; memstore
// provides an in-memory implementation for tests.
package store

import (
	"context"
	"errors"
	"io"

	"github.com/Srinandan2003/CollabSphere/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNoDocument is returned when a lookup matches nothing.
	ErrNoDocument = errors.New("no document found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]models.Post, error)
	// SearchByTitle matches title substrings case-insensitively.
	SearchByTitle(ctx context.Context, query string) ([]models.Post, error)
	// Update persists only the editable fields (title, content, media,
	// category), leaving comment refs and likes to their own operators.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddLike adds userID to the like set if absent and returns the
	// updated post. RemoveLike is the inverse; both are no-ops when the
	// membership already holds.
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error)

	// PushComment appends commentID to the post's comment-reference
	// list; PullComment filters it out.
	PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}

type CommentStore interface {
	Insert(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// DeleteByPost removes every comment whose post field equals postID.
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}

type CategoryStore interface {
	Insert(ctx context.Context, category *models.Category) error
	FindAll(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MediaStore stores post media blobs keyed by ObjectID.
type MediaStore interface {
	Upload(filename string, r io.Reader) (primitive.ObjectID, error)
	// Open returns a reader over the blob, or ErrNoDocument before any
	// byte is produced, so callers can answer a clean 404.
	Open(id primitive.ObjectID) (io.ReadCloser, error)
	Delete(id primitive.ObjectID) error
}
