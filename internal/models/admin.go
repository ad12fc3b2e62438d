package models

import "time"

// AdminSession is the identity held by an authenticated back-office session.
// It lives in the session store only and is never written to Postgres.
type AdminSession struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// AdminLoginRequest is the body of POST /api/admin/login.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
