package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

const msgCategoryNotFound = "Catégorie non trouvée"

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/categories and GET /api/admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Erreur lors de la récupération des catégories")
		return
	}
	utils.JSON(c, http.StatusOK, categories)
}

// GetBySlug handles GET /api/categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, msgCategoryNotFound, "")
		return
	}
	utils.JSON(c, http.StatusOK, category)
}

// Create handles POST /api/admin/categories and the public demo POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryInput
	if !bind(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "", "Erreur lors de la création de la catégorie")
		return
	}
	utils.JSON(c, http.StatusCreated, category)
}

// Update handles PUT /api/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req models.UpdateCategoryInput
	if !bind(c, &req) {
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, msgCategoryNotFound, "Erreur lors de la modification de la catégorie")
		return
	}
	utils.JSON(c, http.StatusOK, category)
}

// Delete handles DELETE /api/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgCategoryNotFound, "Erreur lors de la suppression de la catégorie")
		return
	}
	utils.Message(c, http.StatusOK, "Catégorie supprimée avec succès")
}
