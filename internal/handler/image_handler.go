package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageStorage issues upload URLs and serves public product images.
type ImageStorage interface {
	UploadURL(ctx context.Context) (string, error)
	SetPublicPolicy(ctx context.Context, imageURL string) (string, error)
	PublicURL(ctx context.Context, entityPath string) (string, error)
}

// ImageHandler serves image upload endpoints and public object reads.
type ImageHandler struct {
	images ImageStorage
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images ImageStorage) *ImageHandler {
	return &ImageHandler{images: images}
}

type imagePolicyRequest struct {
	ImageURL string `json:"imageURL" binding:"required"`
}

// UploadURL handles POST /api/admin/images/upload
func (h *ImageHandler) UploadURL(c *gin.Context) {
	uploadURL, err := h.images.UploadURL(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Erreur lors de la génération de l'URL d'envoi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadURL": uploadURL})
}

// SetPolicy handles PUT /api/admin/images
func (h *ImageHandler) SetPolicy(c *gin.Context) {
	var req imagePolicyRequest
	if !bind(c, &req) {
		return
	}

	objectPath, err := h.images.SetPublicPolicy(c.Request.Context(), req.ImageURL)
	if err != nil {
		respondError(c, err, "Image non trouvée", "Erreur lors de la publication de l'image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"objectPath": objectPath})
}

// Serve handles GET /objects/*objectPath by redirecting to a short-lived URL.
func (h *ImageHandler) Serve(c *gin.Context) {
	target, err := h.images.PublicURL(c.Request.Context(), c.Param("objectPath"))
	if err != nil {
		respondError(c, err, "Objet non trouvé", "")
		return
	}
	c.Redirect(http.StatusFound, target)
}
