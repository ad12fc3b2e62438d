package service

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

// ProductStore is the storage ProductService depends on.
type ProductStore interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id string, in *models.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductService provides the boutique catalog. Public reads only ever see
// active products; the admin variants see everything.
type ProductService struct {
	repo ProductStore
}

// NewProductService constructs a ProductService.
func NewProductService(repo ProductStore) *ProductService {
	return &ProductService{repo: repo}
}

// ListPublic returns active products, restricted to categoryID when it is set.
func (s *ProductService) ListPublic(ctx context.Context, categoryID string) ([]models.Product, error) {
	if categoryID != "" {
		return s.repo.ListByCategory(ctx, categoryID)
	}
	return s.repo.ListActive(ctx)
}

// ListAll returns every product for the back office.
func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAll(ctx)
}

// GetPublic returns an active product by slug.
func (s *ProductService) GetPublic(ctx context.Context, slug string) (*models.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Get returns a product by id, active or not.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new product. Featured defaults to false and Active to true.
func (s *ProductService) Create(ctx context.Context, in *models.CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:             in.Name,
		Slug:             in.Slug,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		OriginalPrice:    emptyToNil(in.OriginalPrice),
		SKU:              emptyToNil(in.SKU),
		Stock:            in.Stock,
		CategoryID:       emptyToNil(in.CategoryID),
		Brand:            in.Brand,
		Model:            in.Model,
		Specifications:   in.Specifications,
		Images:           pq.StringArray(in.Images),
		Featured:         false,
		Active:           true,
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update applies a partial update; updated_at always moves forward.
func (s *ProductService) Update(ctx context.Context, id string, in *models.UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

// Delete removes a product, returning utils.ErrNotFound for unknown ids.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if !ok {
		return utils.ErrNotFound
	}
	return nil
}

// emptyToNil treats "" the same as an absent optional reference.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
