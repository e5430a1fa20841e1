package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddAndListComments(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	commenter := env.mustSignUp(t, "bob", "bob@example.com")
	post := env.mustCreatePost(t, author.ID, "A", "B")
	ctx := context.Background()

	comment, err := env.comments.Add(ctx, post.ID, commenter.ID, "hello")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := env.comments.List(ctx, post.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d comments, want 1", len(list))
	}
	if list[0].Text != "hello" {
		t.Errorf("comment text = %q, want hello", list[0].Text)
	}
	if list[0].Username != "bob" {
		t.Errorf("comment username = %q, want bob", list[0].Username)
	}

	got, err := env.posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get post: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0] != comment.ID {
		t.Errorf("post.Comments = %v, want [%v]", got.Comments, comment.ID)
	}
}

func TestAddCommentValidation(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	post := env.mustCreatePost(t, author.ID, "A", "B")
	ctx := context.Background()

	if _, err := env.comments.Add(ctx, post.ID, author.ID, "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("Add with blank text = %v, want ErrValidation", err)
	}
	if _, err := env.comments.Add(ctx, primitive.NewObjectID(), author.ID, "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Add to unknown post = %v, want ErrNotFound", err)
	}
}

func TestDeleteComment(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	post := env.mustCreatePost(t, author.ID, "A", "B")
	ctx := context.Background()

	keep, err := env.comments.Add(ctx, post.ID, author.ID, "keep")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	drop, err := env.comments.Add(ctx, post.ID, author.ID, "drop")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := env.comments.Delete(ctx, post.ID, drop.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	list, err := env.comments.List(ctx, post.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != keep.ID {
		t.Errorf("List after delete = %d comments, want only %q", len(list), keep.Text)
	}

	got, err := env.posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get post: %v", err)
	}
	for _, id := range got.Comments {
		if id == drop.ID {
			t.Error("deleted comment id still referenced by post")
		}
	}
}

func TestDeleteCommentBelongingToOtherPost(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	postP := env.mustCreatePost(t, author.ID, "P", "...")
	postQ := env.mustCreatePost(t, author.ID, "Q", "...")
	ctx := context.Background()

	comment, err := env.comments.Add(ctx, postQ.ID, author.ID, "on Q")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	// deleting Q's comment through P's URL must not touch it
	if err := env.comments.Delete(ctx, postP.ID, comment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete via wrong post = %v, want ErrNotFound", err)
	}

	list, err := env.comments.List(ctx, postQ.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != comment.ID {
		t.Errorf("comment on Q gone after delete through P; List = %v", list)
	}
}

func TestDeleteCommentUnknownPost(t *testing.T) {
	env := newTestEnv(t)
	if err := env.comments.Delete(context.Background(), primitive.NewObjectID(), primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete with unknown post = %v, want ErrNotFound", err)
	}
}

func TestListCommentsSkipsDanglingRefs(t *testing.T) {
	env := newTestEnv(t)
	author := env.mustSignUp(t, "alice", "alice@example.com")
	post := env.mustCreatePost(t, author.ID, "A", "B")
	ctx := context.Background()

	comment, err := env.comments.Add(ctx, post.ID, author.ID, "real")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	// simulate an interrupted delete: the record vanishes but the
	// reference stays on the post
	if err := env.store.Comments().Delete(ctx, comment.ID); err != nil {
		t.Fatalf("raw delete: %v", err)
	}

	list, err := env.comments.List(ctx, post.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List returned %d comments for dangling refs, want 0", len(list))
	}
}

func TestListCommentsUnknownPost(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.comments.List(context.Background(), primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(unknown post) = %v, want ErrNotFound", err)
	}
}
