package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

// ContactHandler serves the contact form and its admin inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.CreateContactInput
	if !bind(c, &req) {
		return
	}

	submission, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "", msgInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Votre demande a été envoyée avec succès. Nous vous contacterons bientôt.",
		"id":      submission.ID,
	})
}

// List handles GET /api/admin/contact-submissions
func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Erreur lors de la récupération des demandes")
		return
	}
	utils.JSON(c, http.StatusOK, submissions)
}

// Get handles GET /api/admin/contact-submissions/:id
func (h *ContactHandler) Get(c *gin.Context) {
	submission, err := h.contactService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Demande non trouvée", "Erreur lors de la récupération de la demande")
		return
	}
	utils.JSON(c, http.StatusOK, submission)
}

// Delete handles DELETE /api/admin/contact-submissions/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Demande non trouvée", "Erreur lors de la suppression")
		return
	}
	utils.Message(c, http.StatusOK, "Demande supprimée avec succès")
}
