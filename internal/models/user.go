package models

// User is a storefront account. Accounts are created through the CLI only.
type User struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}

// CreateUserInput holds the fields accepted when creating a user.
type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=1"`
	Password string `json:"password" binding:"required,min=1"`
}
