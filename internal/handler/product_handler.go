package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

const msgProductNotFound = "Produit non trouvé"

// ProductHandler serves the public catalog and its admin management.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListPublic handles GET /api/products?category=<id>
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.productService.ListPublic(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err, "", "Erreur lors de la récupération des produits")
		return
	}
	utils.JSON(c, http.StatusOK, products)
}

// GetPublic handles GET /api/products/:slug
func (h *ProductHandler) GetPublic(c *gin.Context) {
	product, err := h.productService.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, msgProductNotFound, "Erreur lors de la récupération du produit")
		return
	}
	utils.JSON(c, http.StatusOK, product)
}

// ListAll handles GET /api/admin/products
func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.productService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "Erreur lors de la récupération des produits")
		return
	}
	utils.JSON(c, http.StatusOK, products)
}

// Get handles GET /api/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgProductNotFound, "Erreur lors de la récupération du produit")
		return
	}
	utils.JSON(c, http.StatusOK, product)
}

// Create handles POST /api/admin/products and the public demo POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductInput
	if !bind(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "", "Erreur lors de la création du produit")
		return
	}
	utils.JSON(c, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req models.UpdateProductInput
	if !bind(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, msgProductNotFound, "Erreur lors de la modification du produit")
		return
	}
	utils.JSON(c, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, msgProductNotFound, "Erreur lors de la suppression du produit")
		return
	}
	utils.Message(c, http.StatusOK, "Produit supprimé avec succès")
}
