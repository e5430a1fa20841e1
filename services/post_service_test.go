package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Srinandan2003/CollabSphere/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGetPost(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")

	post := env.mustCreatePost(t, author.ID, "Hello", "First post")

	got, err := env.posts.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Hello" || got.Content != "First post" {
		t.Errorf("got title=%q content=%q, want Hello/First post", got.Title, got.Content)
	}
	if len(got.Comments) != 0 {
		t.Errorf("new post has %d comments, want 0", len(got.Comments))
	}
	if len(got.Likes) != 0 {
		t.Errorf("new post has %d likes, want 0", len(got.Likes))
	}
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "content"},
		{"blank title", "   ", "content"},
		{"empty content", "title", ""},
		{"blank content", "title", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.posts.Create(context.Background(), author.ID, tt.title, tt.content, "", nil)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Create(%q, %q) = %v, want ErrValidation", tt.title, tt.content, err)
			}
		})
	}
}

func TestGetPostNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.posts.Get(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) = %v, want ErrNotFound", err)
	}
}

func TestLikeUnlike(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	liker := env.mustSignUp(t, "bob", "bob@example.com")
	post := env.mustCreatePost(t, author.ID, "A", "B")
	ctx := context.Background()

	count, err := env.posts.Like(ctx, post.ID, liker.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if count != 1 {
		t.Errorf("like count = %d, want 1", count)
	}

	// liking twice is a no-op
	count, err = env.posts.Like(ctx, post.ID, liker.ID)
	if err != nil {
		t.Fatalf("second Like: %v", err)
	}
	if count != 1 {
		t.Errorf("like count after double like = %d, want 1", count)
	}

	count, err = env.posts.Unlike(ctx, post.ID, liker.ID)
	if err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if count != 0 {
		t.Errorf("like count after unlike = %d, want 0", count)
	}

	// unliking when absent is a no-op too
	count, err = env.posts.Unlike(ctx, post.ID, liker.ID)
	if err != nil {
		t.Fatalf("second Unlike: %v", err)
	}
	if count != 0 {
		t.Errorf("like count after double unlike = %d, want 0", count)
	}
}

func TestLikeUnknownPost(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustSignUp(t, "alice", "alice@example.com")
	_, err := env.posts.Like(context.Background(), primitive.NewObjectID(), user.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Like(unknown post) = %v, want ErrNotFound", err)
	}
}

func TestSearchByTitle(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	env.mustCreatePost(t, author.ID, "Go concurrency patterns", "...")
	env.mustCreatePost(t, author.ID, "Cooking with gas", "...")
	env.mustCreatePost(t, author.ID, "gopher habits", "...")
	ctx := context.Background()

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"go", 2},
		{"GO", 2},
		{"cooking", 1},
		{"xyz-no-match", 0},
	}
	for _, tt := range tests {
		got, err := env.posts.SearchByTitle(ctx, tt.query)
		if err != nil {
			t.Fatalf("SearchByTitle(%q): %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("SearchByTitle(%q) returned %d posts, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	ctx := context.Background()

	// seed an older post directly so the timestamps are distinct
	older := &models.Post{
		ID:        primitive.NewObjectID(),
		Title:     "older",
		Content:   "...",
		User:      author.ID,
		Comments:  []primitive.ObjectID{},
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().Add(-time.Minute),
	}
	if err := env.store.Posts().Insert(ctx, older); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	newer := env.mustCreatePost(t, author.ID, "newer", "...")

	posts, err := env.posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("List returned %d posts, want 2", len(posts))
	}
	if posts[0].ID != newer.ID {
		t.Errorf("first post is %q, want %q", posts[0].Title, newer.Title)
	}
}

func TestUpdateKeepsConcurrentCommentRefs(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "alice", "alice@example.com")
	post := env.mustCreatePost(t, owner.ID, "A", "B")
	ctx := context.Background()

	// a comment lands between a stale read of the post and its write-back
	comment, err := env.comments.Add(ctx, post.ID, owner.ID, "racing")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	stale := *post // read from before the comment existed
	stale.Title = "edited"
	if err := env.store.Posts().Update(ctx, &stale); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := env.posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "edited" {
		t.Errorf("title = %q, want edited", got.Title)
	}
	if len(got.Comments) != 1 || got.Comments[0] != comment.ID {
		t.Errorf("post.Comments = %v, want [%v]; stale update clobbered the ref", got.Comments, comment.ID)
	}
}

func TestUpdatePost(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "alice", "alice@example.com")
	other := env.mustSignUp(t, "bob", "bob@example.com")
	post := env.mustCreatePost(t, owner.ID, "Old title", "Old content")
	ctx := context.Background()

	title := "New title"
	got, err := env.posts.Update(ctx, post.ID, owner.ID, UpdatePost{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "New title" {
		t.Errorf("title = %q, want New title", got.Title)
	}
	if got.Content != "Old content" {
		t.Errorf("content changed to %q on partial update", got.Content)
	}

	if _, err := env.posts.Update(ctx, post.ID, other.ID, UpdatePost{Title: &title}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update by non-owner = %v, want ErrForbidden", err)
	}

	empty := " "
	if _, err := env.posts.Update(ctx, post.ID, owner.ID, UpdatePost{Title: &empty}); !errors.Is(err, ErrValidation) {
		t.Errorf("Update with blank title = %v, want ErrValidation", err)
	}
}

func TestDeletePostAuthorization(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "alice", "alice@example.com")
	other := env.mustSignUp(t, "bob", "bob@example.com")
	post := env.mustCreatePost(t, owner.ID, "A", "B")
	ctx := context.Background()

	if _, err := env.comments.Add(ctx, post.ID, other.ID, "hi"); err != nil {
		t.Fatalf("Add comment: %v", err)
	}

	if err := env.posts.Delete(ctx, post.ID, other.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Delete by non-owner = %v, want ErrForbidden", err)
	}

	// post and its comments are untouched
	got, err := env.posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get after failed delete: %v", err)
	}
	if len(got.Comments) != 1 {
		t.Errorf("post has %d comment refs after failed delete, want 1", len(got.Comments))
	}
	comments, err := env.comments.List(ctx, post.ID)
	if err != nil {
		t.Fatalf("List comments: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("post has %d comments after failed delete, want 1", len(comments))
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "alice", "alice@example.com")
	post := env.mustCreatePost(t, owner.ID, "A", "B")
	ctx := context.Background()

	comment, err := env.comments.Add(ctx, post.ID, owner.ID, "first")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := env.posts.Delete(ctx, post.ID, owner.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.posts.Get(ctx, post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if _, err := env.store.Comments().FindByID(ctx, comment.ID); err == nil {
		t.Error("comment record survived post deletion")
	}
}
