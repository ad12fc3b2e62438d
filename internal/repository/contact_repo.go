package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/connectik/connectik_api/internal/models"
)

const contactColumns = `id, first_name, last_name, email, phone, service, message, created_at`

// ContactRepository provides data access methods for contact_submissions.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores a submission and fills its id and created_at.
func (r *ContactRepository) Create(ctx context.Context, s *models.ContactSubmission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `INSERT INTO contact_submissions (id, first_name, last_name, email, phone, service, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		s.ID,
		s.FirstName,
		s.LastName,
		s.Email,
		nullStringPtr(s.Phone),
		nullStringPtr(s.Service),
		s.Message,
	).Scan(&s.CreatedAt)
}

// List returns all submissions, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	err := r.db.SelectContext(ctx, &submissions,
		`SELECT `+contactColumns+` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetByID returns a submission by id, or utils.ErrNotFound.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	if err := r.db.GetContext(ctx, &s, `SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id); err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// Delete removes a submission. It reports false when no row had that id.
func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// nullStringPtr stores empty optional strings as NULL.
func nullStringPtr(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
