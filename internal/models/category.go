package models

import "time"

// Category groups boutique products. Slug is unique and used in public URLs.
type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CreateCategoryInput is the body accepted when creating a category.
type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Slug        string  `json:"slug" binding:"required,min=1"`
	Description *string `json:"description"`
}

// UpdateCategoryInput is a partial category. Nil or unset fields are left
// untouched; a null description clears it.
type UpdateCategoryInput struct {
	Name        *string    `json:"name" binding:"omitempty,min=1"`
	Slug        *string    `json:"slug" binding:"omitempty,min=1"`
	Description NullString `json:"description"`
}
