package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Srinandan2003/CollabSphere/models"
	"github.com/Srinandan2003/CollabSphere/store/memstore"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testEnv struct {
	store      *memstore.Store
	users      *UserService
	posts      *PostService
	comments   *CommentService
	categories *CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := memstore.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testEnv{
		store:      s,
		users:      NewUserService(s.Users()),
		posts:      NewPostService(s.Posts(), s.Comments(), s.Media(), log),
		comments:   NewCommentService(s.Posts(), s.Comments(), s.Users(), log),
		categories: NewCategoryService(s.Categories()),
	}
}

func (e *testEnv) mustSignUp(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := e.users.SignUp(context.Background(), username, email, "secret123")
	if err != nil {
		t.Fatalf("SignUp(%q): %v", email, err)
	}
	return user
}

func (e *testEnv) mustCreatePost(t *testing.T, userID primitive.ObjectID, title, content string) *models.Post {
	t.Helper()
	post, err := e.posts.Create(context.Background(), userID, title, content, "", nil)
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return post
}
