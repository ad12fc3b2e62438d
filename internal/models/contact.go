package models

import "time"

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	ID        string    `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone"`
	Service   *string   `db:"service" json:"service"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateContactInput is the body of POST /api/contact.
type CreateContactInput struct {
	FirstName string  `json:"firstName" binding:"required,notblank"`
	LastName  string  `json:"lastName" binding:"required,notblank"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone"`
	Service   *string `json:"service"`
	Message   string  `json:"message" binding:"required,min=10"`
}
