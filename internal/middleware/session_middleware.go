package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/config"
	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

const (
	adminKey     = "admin"
	sessionIDKey = "session_id"

	// SessionHeader carries the raw session id for clients that cannot keep cookies.
	SessionHeader = "X-Session-Id"
)

// SessionAuthenticator resolves a session id to the admin it belongs to.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*models.AdminSession, error)
}

// SessionCookie reads and writes the signed admin session cookie.
type SessionCookie struct {
	cfg config.SessionConfig
}

func NewSessionCookie(cfg config.SessionConfig) *SessionCookie {
	return &SessionCookie{cfg: cfg}
}

// Set writes the cookie for session id.
func (s *SessionCookie) Set(c *gin.Context, id string) {
	c.SetSameSite(s.cfg.SameSite)
	c.SetCookie(s.cfg.CookieName, utils.SignValue(id, s.cfg.Secret), int(s.cfg.TTL.Seconds()),
		"/", s.cfg.CookieDomain, s.cfg.Secure, true)
}

// Clear expires the cookie.
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.cfg.SameSite)
	c.SetCookie(s.cfg.CookieName, "", -1, "/", s.cfg.CookieDomain, s.cfg.Secure, true)
}

// Read returns the session id from the signed cookie, or from the
// X-Session-Id header when there is no valid cookie.
func (s *SessionCookie) Read(c *gin.Context) string {
	if raw, err := c.Cookie(s.cfg.CookieName); err == nil && raw != "" {
		if id, ok := utils.UnsignValue(raw, s.cfg.Secret); ok {
			return id
		}
	}
	return c.GetHeader(SessionHeader)
}

// SessionMiddleware lets a request through only with a live admin session.
type SessionMiddleware struct {
	auth   SessionAuthenticator
	cookie *SessionCookie
}

func NewSessionMiddleware(auth SessionAuthenticator, cookie *SessionCookie) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, cookie: cookie}
}

func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := m.cookie.Read(c)
		if id == "" {
			unauthorized(c)
			return
		}

		admin, err := m.auth.Authenticate(c.Request.Context(), id)
		if errors.Is(err, utils.ErrUnauthorized) {
			unauthorized(c)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("Session lookup failed")
			utils.Message(c, http.StatusInternalServerError, "Erreur interne du serveur")
			c.Abort()
			return
		}

		c.Set(adminKey, admin)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	utils.Error(c, http.StatusUnauthorized, utils.ErrUnauthorized.Error(), "Non autorisé - connexion admin requise")
	c.Abort()
}

// GetAdmin returns the admin authenticated by SessionMiddleware.
func GetAdmin(c *gin.Context) (*models.AdminSession, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.AdminSession)
	return admin, ok
}

// SessionID returns the session id resolved by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
