package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/middleware"
	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AdminAuthService
	cookie      *middleware.SessionCookie
}

func NewAuthHandler(authService *service.AdminAuthService, cookie *middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if !bind(c, &req) {
		return
	}

	sessionID, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, utils.ErrInvalidCredentials) {
		utils.Error(c, http.StatusUnauthorized, utils.ErrInvalidCredentials.Error(), "Email ou mot de passe incorrect")
		return
	}
	if err != nil {
		respondError(c, err, "", msgInternalError)
		return
	}

	h.cookie.Set(c, sessionID)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Connexion réussie",
		"admin":     admin,
		"sessionId": sessionID,
	})
}

// Logout handles POST /api/admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := h.cookie.Read(c); id != "" {
		if err := h.authService.Logout(c.Request.Context(), id); err != nil {
			log.Error().Err(err).Str("request_id", utils.RequestID(c)).Msg("Logout failed")
			utils.Message(c, http.StatusInternalServerError, "Erreur lors de la déconnexion")
			return
		}
	}
	h.cookie.Clear(c)
	utils.Message(c, http.StatusOK, "Déconnexion réussie")
}

// Me handles GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	admin, _ := middleware.GetAdmin(c)
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
