package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/connectik/connectik_api/internal/models"
)

const categoryColumns = `id, name, slug, description, created_at`

// CategoryRepository handles data access for boutique categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, `SELECT `+categoryColumns+` FROM categories ORDER BY name`); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a category by id, or utils.ErrNotFound.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := r.db.GetContext(ctx, &c, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// GetBySlug returns a category by slug, or utils.ErrNotFound.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := r.db.GetContext(ctx, &c, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// Create inserts a category. A duplicate slug is returned as *utils.ConstraintError.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	err := r.db.QueryRowxContext(ctx, `INSERT INTO categories (id, name, slug, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		category.ID, category.Name, category.Slug, category.Description,
	).StructScan(category)
	return mapError(err)
}

// Update applies the fields present in in and returns the stored category.
func (r *CategoryRepository) Update(ctx context.Context, id string, in *models.UpdateCategoryInput) (*models.Category, error) {
	b := &setBuilder{}
	if in.Name != nil {
		b.add("name", *in.Name)
	}
	if in.Slug != nil {
		b.add("slug", *in.Slug)
	}
	if in.Description.Set {
		b.add("description", in.Description)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	set, idArg := b.where(id)
	var c models.Category
	err := r.db.QueryRowxContext(ctx, `UPDATE categories SET `+set+` WHERE id = `+idArg+` RETURNING `+categoryColumns, b.args...).
		StructScan(&c)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// Delete removes a category; its products keep existing with category_id set to NULL.
// It reports false when no row had that id.
func (r *CategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
