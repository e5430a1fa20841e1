package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Srinandan2003/CollabSphere/models"
	"github.com/Srinandan2003/CollabSphere/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	categories store.CategoryStore
}

func NewCategoryService(categories store.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := models.Category{
		ID:   primitive.NewObjectID(),
		Name: name,
	}
	if err := s.categories.Insert(ctx, &category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: category already exists", ErrConflict)
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// Delete removes the category only. Posts referencing it keep the
// dangling reference; they render without a category.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return err
	}
	return nil
}
