package models

import (
	"time"

	"github.com/lib/pq"
)

// MaxProductImages caps the images list of a product.
const MaxProductImages = 10

// Product is a boutique catalog entry. Prices are decimal strings with two
// decimals so they round-trip NUMERIC(10,2) without float rounding.
type Product struct {
	ID               string         `db:"id" json:"id"`
	Name             string         `db:"name" json:"name"`
	Slug             string         `db:"slug" json:"slug"`
	Description      *string        `db:"description" json:"description"`
	ShortDescription *string        `db:"short_description" json:"shortDescription"`
	Price            string         `db:"price" json:"price"`
	OriginalPrice    *string        `db:"original_price" json:"originalPrice"`
	SKU              *string        `db:"sku" json:"sku"`
	Stock            int            `db:"stock" json:"stock"`
	CategoryID       *string        `db:"category_id" json:"categoryId"`
	Brand            *string        `db:"brand" json:"brand"`
	Model            *string        `db:"model" json:"model"`
	Specifications   *string        `db:"specifications" json:"specifications"`
	Images           pq.StringArray `db:"images" json:"images"`
	Featured         bool           `db:"featured" json:"featured"`
	Active           bool           `db:"active" json:"active"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updatedAt"`
}

// CreateProductInput is the body accepted when creating a product.
// Featured defaults to false and Active to true when omitted.
type CreateProductInput struct {
	Name             string   `json:"name" binding:"required,min=1"`
	Slug             string   `json:"slug" binding:"required,min=1"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	Price            string   `json:"price" binding:"required,decimal"`
	OriginalPrice    *string  `json:"originalPrice" binding:"omitempty,decimal"`
	SKU              *string  `json:"sku"`
	Stock            int      `json:"stock" binding:"min=0"`
	CategoryID       *string  `json:"categoryId"`
	Brand            *string  `json:"brand"`
	Model            *string  `json:"model"`
	Specifications   *string  `json:"specifications"`
	Images           []string `json:"images" binding:"max=10"`
	Featured         *bool    `json:"featured"`
	Active           *bool    `json:"active"`
}

// UpdateProductInput is a partial product. Nil or unset fields are left
// untouched; a NullString sent as null clears the column.
type UpdateProductInput struct {
	Name             *string    `json:"name" binding:"omitempty,min=1"`
	Slug             *string    `json:"slug" binding:"omitempty,min=1"`
	Description      NullString `json:"description"`
	ShortDescription NullString `json:"shortDescription"`
	Price            *string    `json:"price" binding:"omitempty,decimal"`
	OriginalPrice    NullString `json:"originalPrice" binding:"omitempty,decimal"`
	SKU              NullString `json:"sku"`
	Stock            *int       `json:"stock" binding:"omitempty,min=0"`
	CategoryID       NullString `json:"categoryId"`
	Brand            NullString `json:"brand"`
	Model            NullString `json:"model"`
	Specifications   NullString `json:"specifications"`
	Images           *[]string  `json:"images" binding:"omitempty,max=10"`
	Featured         *bool      `json:"featured"`
	Active           *bool      `json:"active"`
}
