package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Srinandan2003/CollabSphere/models"
	"github.com/Srinandan2003/CollabSphere/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService struct {
	posts    store.PostStore
	comments store.CommentStore
	users    store.UserStore
	log      *slog.Logger
}

func NewCommentService(posts store.PostStore, comments store.CommentStore, users store.UserStore, log *slog.Logger) *CommentService {
	return &CommentService{posts: posts, comments: comments, users: users, log: log}
}

// Add creates a comment and appends its id to the post's reference
// list. The two writes are not transactional; when the append fails the
// fresh comment record is removed again so no orphan survives.
func (s *CommentService) Add(ctx context.Context, postID, userID primitive.ObjectID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		User:      userID,
		Post:      postID,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Insert(ctx, &comment); err != nil {
		return nil, err
	}
	if err := s.posts.PushComment(ctx, postID, comment.ID); err != nil {
		if delErr := s.comments.Delete(ctx, comment.ID); delErr != nil {
			s.log.Warn("orphan comment left behind", "comment", comment.ID.Hex(), "post", postID.Hex(), "error", delErr)
		}
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

// Delete removes the comment record first and then filters its id out
// of the post's reference list, so a failure between the steps can only
// leave a dangling id, which List tolerates.
func (s *CommentService) Delete(ctx context.Context, postID, commentID primitive.ObjectID) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return fmt.Errorf("%w: post", ErrNotFound)
		}
		return err
	}

	// a comment reachable through another post's URL is not ours to
	// delete; a missing record is fine, only the dangling ref remains
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil && !errors.Is(err, store.ErrNoDocument) {
		return err
	}
	if err == nil && comment.Post != postID {
		return fmt.Errorf("%w: comment", ErrNotFound)
	}

	if err := s.comments.Delete(ctx, commentID); err != nil && !errors.Is(err, store.ErrNoDocument) {
		return err
	}
	if err := s.posts.PullComment(ctx, postID, commentID); err != nil && !errors.Is(err, store.ErrNoDocument) {
		return err
	}
	return nil
}

// List resolves the post's comment references in order, dropping ids
// whose record no longer exists, and attaches each author's username.
func (s *CommentService) List(ctx context.Context, postID primitive.ObjectID) ([]models.CommentWithUser, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}

	comments, err := s.comments.FindByIDs(ctx, post.Comments)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Comment, len(comments))
	userIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
		userIDs = append(userIDs, c.User)
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]models.CommentWithUser, 0, len(post.Comments))
	for _, id := range post.Comments {
		comment, ok := byID[id]
		if !ok {
			// dangling reference from an interrupted delete
			continue
		}
		out = append(out, models.CommentWithUser{
			Comment:  comment,
			Username: names[comment.User],
		})
	}
	return out, nil
}
