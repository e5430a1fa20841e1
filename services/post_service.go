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

type PostService struct {
	posts    store.PostStore
	comments store.CommentStore
	media    store.MediaStore
	log      *slog.Logger
}

func NewPostService(posts store.PostStore, comments store.CommentStore, media store.MediaStore, log *slog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, media: media, log: log}
}

// UpdatePost carries the partial-update fields; nil means "leave as is".
type UpdatePost struct {
	Title    *string
	Content  *string
	Media    *string
	Category *primitive.ObjectID
}

func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, title, content, media string, category *primitive.ObjectID) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		Media:     media,
		Category:  category,
		User:      userID,
		Comments:  []primitive.ObjectID{},
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}
	if err := s.posts.Insert(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Get(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

// SearchByTitle matches titles case-insensitively on a substring; an
// empty query lists everything, newest first.
func (s *PostService) SearchByTitle(ctx context.Context, query string) ([]models.Post, error) {
	return s.posts.SearchByTitle(ctx, strings.TrimSpace(query))
}

// Like adds userID to the post's like set. Liking a post twice is a
// no-op, so the endpoint is safe to retry. Returns the new like count.
func (s *PostService) Like(ctx context.Context, postID, userID primitive.ObjectID) (int, error) {
	post, err := s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return 0, fmt.Errorf("%w: post", ErrNotFound)
		}
		return 0, err
	}
	return len(post.Likes), nil
}

// Unlike removes userID from the like set; removing an absent user is
// a no-op. Returns the new like count.
func (s *PostService) Unlike(ctx context.Context, postID, userID primitive.ObjectID) (int, error) {
	post, err := s.posts.RemoveLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return 0, fmt.Errorf("%w: post", ErrNotFound)
		}
		return 0, err
	}
	return len(post.Likes), nil
}

func (s *PostService) Update(ctx context.Context, id, requesterID primitive.ObjectID, fields UpdatePost) (*models.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.User != requesterID {
		return nil, fmt.Errorf("%w: not the post owner", ErrForbidden)
	}

	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		post.Title = title
	}
	if fields.Content != nil {
		content := strings.TrimSpace(*fields.Content)
		if content == "" {
			return nil, fmt.Errorf("%w: content is required", ErrValidation)
		}
		post.Content = content
	}
	if fields.Media != nil {
		post.Media = *fields.Media
	}
	if fields.Category != nil {
		post.Category = fields.Category
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post owned by requesterID along with its comments
// and media blob.
func (s *PostService) Delete(ctx context.Context, id, requesterID primitive.ObjectID) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.User != requesterID {
		return fmt.Errorf("%w: not the post owner", ErrForbidden)
	}

	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return fmt.Errorf("%w: post", ErrNotFound)
		}
		return err
	}

	if post.Media != "" {
		mediaID, err := primitive.ObjectIDFromHex(post.Media)
		if err == nil {
			if err := s.media.Delete(mediaID); err != nil && !errors.Is(err, store.ErrNoDocument) {
				s.log.Warn("failed to delete post media", "post", id.Hex(), "media", post.Media, "error", err)
			}
		}
	}
	return nil
}
