package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/sse"
	"github.com/connectik/connectik_api/internal/utils"
)

// ContactStore is the storage ContactService depends on.
type ContactStore interface {
	Create(ctx context.Context, s *models.ContactSubmission) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactService handles the contact form inbox.
type ContactService struct {
	repo     ContactStore
	notifier sse.Notifier
}

// NewContactService constructs a ContactService.
func NewContactService(repo ContactStore) *ContactService {
	return &ContactService{repo: repo, notifier: sse.NopNotifier{}}
}

// SetNotifier sets the notifier told about new submissions.
func (s *ContactService) SetNotifier(n sse.Notifier) {
	s.notifier = n
}

// Submit stores a contact form submission.
func (s *ContactService) Submit(ctx context.Context, in *models.CreateContactInput) (*models.ContactSubmission, error) {
	submission := &models.ContactSubmission{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     in.Phone,
		Service:   in.Service,
		Message:   in.Message,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	s.notifier.NotifyContactCreated(submission)
	return submission, nil
}

// List returns every submission, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.repo.List(ctx)
}

// Get returns one submission or utils.ErrNotFound.
func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a submission, returning utils.ErrNotFound for unknown ids.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	if !ok {
		return utils.ErrNotFound
	}
	return nil
}
