package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Srinandan2003/CollabSphere/models"
	"github.com/Srinandan2003/CollabSphere/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const verificationTokenTTL = 24 * time.Hour

type UserService struct {
	users    store.UserStore
	validate *validator.Validate
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users, validate: validator.New()}
}

// SignUp registers a new account. The email must be unused; the
// password is stored as a bcrypt hash and a verification token with a
// 24h expiry is attached.
func (s *UserService) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user.Password = string(hashed)
	user.VerificationToken = uuid.NewString()
	user.VerificationTokenExpiresAt = time.Now().Add(verificationTokenTTL)
	user.CreatedAt = time.Now()

	if err := s.users.Insert(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// SignIn checks the credentials and records the login time.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID looks up a user for the profile endpoint and the auth
// middleware.
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
