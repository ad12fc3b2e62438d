package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/connectik/connectik_api/internal/models"
)

const productColumns = `id, name, slug, description, short_description, price, original_price, sku,
	stock, category_id, brand, model, specifications, images, featured, active, created_at, updated_at`

// productOrder is the storefront ordering: featured first, newest first within each group.
const productOrder = ` ORDER BY featured DESC, created_at DESC`

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListActive returns every active product.
func (r *ProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE active = true`+productOrder)
}

// ListByCategory returns the active products of a category.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products
		WHERE category_id = $1 AND active = true`+productOrder, categoryID)
}

// ListAll returns every product including inactive ones, for the back office.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products`+productOrder)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug returns an active product by slug, or utils.ErrNotFound.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.db.GetContext(ctx, &p, `SELECT `+productColumns+` FROM products
		WHERE slug = $1 AND active = true LIMIT 1`, slug)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// GetByID returns a product by id regardless of its active flag, or utils.ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.db.GetContext(ctx, &p, `SELECT `+productColumns+` FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Create inserts a product. Featured and Active must already carry their
// defaults. Unique violations on slug or sku are returned as *utils.ConstraintError.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.Images == nil {
		product.Images = pq.StringArray{}
	}

	query := `INSERT INTO products (id, name, slug, description, short_description, price, original_price,
			sku, stock, category_id, brand, model, specifications, images, featured, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + productColumns

	err := r.db.QueryRowxContext(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.ShortDescription,
		product.Price,
		product.OriginalPrice,
		product.SKU,
		product.Stock,
		product.CategoryID,
		product.Brand,
		product.Model,
		product.Specifications,
		product.Images,
		product.Featured,
		product.Active,
	).StructScan(product)
	return mapError(err)
}

// Update applies the fields present in in; an empty sku, category or original
// price is stored as NULL, as on create. updated_at is refreshed on every
// successful update, even when in carries no field.
func (r *ProductRepository) Update(ctx context.Context, id string, in *models.UpdateProductInput) (*models.Product, error) {
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
	if in.ShortDescription.Set {
		b.add("short_description", in.ShortDescription)
	}
	if in.Price != nil {
		b.add("price", *in.Price)
	}
	if in.OriginalPrice.Set {
		b.add("original_price", in.OriginalPrice.NullIfEmpty())
	}
	if in.SKU.Set {
		b.add("sku", in.SKU.NullIfEmpty())
	}
	if in.Stock != nil {
		b.add("stock", *in.Stock)
	}
	if in.CategoryID.Set {
		b.add("category_id", in.CategoryID.NullIfEmpty())
	}
	if in.Brand.Set {
		b.add("brand", in.Brand)
	}
	if in.Model.Set {
		b.add("model", in.Model)
	}
	if in.Specifications.Set {
		b.add("specifications", in.Specifications)
	}
	if in.Images != nil {
		b.add("images", pq.StringArray(*in.Images))
	}
	if in.Featured != nil {
		b.add("featured", *in.Featured)
	}
	if in.Active != nil {
		b.add("active", *in.Active)
	}
	b.raw("updated_at = NOW()")

	set, idArg := b.where(id)
	query := `UPDATE products SET ` + set + ` WHERE id = ` + idArg + ` RETURNING ` + productColumns

	var p models.Product
	if err := r.db.QueryRowxContext(ctx, query, b.args...).StructScan(&p); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Delete removes a product. It reports false when no row had that id.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
