package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectik/connectik_api/internal/cache"
	"github.com/connectik/connectik_api/internal/config"
	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

// AdminAuthService checks the back-office credential and manages admin sessions.
type AdminAuthService struct {
	admin    config.AdminConfig
	sessions cache.SessionStore
}

func NewAdminAuthService(admin config.AdminConfig, sessions cache.SessionStore) *AdminAuthService {
	return &AdminAuthService{admin: admin, sessions: sessions}
}

// Login opens a session when email and password match the configured admin.
// It returns the new session id and the session identity.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (string, *models.AdminSession, error) {
	if email != s.admin.Email || !s.checkPassword(password) {
		log.Warn().Str("email", email).Msg("Admin login failed")
		return "", nil, utils.ErrInvalidCredentials
	}

	session := &models.AdminSession{Email: s.admin.Email, Name: s.admin.Name}
	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	log.Info().Str("email", email).Msg("Admin login successful")
	return id, session, nil
}

func (s *AdminAuthService) checkPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}

// Authenticate resolves a session id. Unknown or expired sessions return
// utils.ErrUnauthorized.
func (s *AdminAuthService) Authenticate(ctx context.Context, sessionID string) (*models.AdminSession, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, utils.ErrSessionNotFound) {
		return nil, utils.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

// Logout destroys the session. Destroying an already missing session succeeds.
func (s *AdminAuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
