package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSignUpAndSignIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.SignUp(ctx, "alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if user.VerificationToken == "" {
		t.Error("no verification token assigned")
	}
	if !user.VerificationTokenExpiresAt.After(time.Now()) {
		t.Error("verification token already expired")
	}

	got, err := env.users.SignIn(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("SignIn returned user %v, want %v", got.ID, user.ID)
	}
	if got.LastLogin.IsZero() {
		t.Error("SignIn did not record lastLogin")
	}
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "a@example.com", "secret123"},
		{"missing email", "alice", "", "secret123"},
		{"bad email", "alice", "not-an-email", "secret123"},
		{"short password", "alice", "a@example.com", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.SignUp(ctx, tt.username, tt.email, tt.password)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("SignUp = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustSignUp(t, "alice", "alice@example.com")
	_, err := env.users.SignUp(ctx, "alice2", "alice@example.com", "secret123")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate SignUp = %v, want ErrConflict", err)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustSignUp(t, "alice", "alice@example.com")

	// unknown email and wrong password fail identically
	if _, err := env.users.SignIn(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn(unknown email) = %v, want ErrInvalidCredentials", err)
	}
	if _, err := env.users.SignIn(ctx, "alice@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn(wrong password) = %v, want ErrInvalidCredentials", err)
	}
	if _, err := env.users.SignIn(ctx, "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("SignIn(empty) = %v, want ErrValidation", err)
	}
}
