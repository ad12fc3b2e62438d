package service

import (
	"context"
	"fmt"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

// CategoryStore is the storage CategoryService depends on.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, id string, in *models.UpdateCategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CategoryService handles boutique categories.
type CategoryService struct {
	repo CategoryStore
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(repo CategoryStore) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create stores a new category. A taken slug is a *utils.ConstraintError.
func (s *CategoryService) Create(ctx context.Context, in *models.CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Update applies a partial update.
func (s *CategoryService) Update(ctx context.Context, id string, in *models.UpdateCategoryInput) (*models.Category, error) {
	category, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	return category, nil
}

// Delete removes a category. Its products stay, without a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	if !ok {
		return utils.ErrNotFound
	}
	return nil
}
