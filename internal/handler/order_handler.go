package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/utils"
)

const msgOrderNotFound = "Commande non trouvée"

// OrderHandler serves the admin order endpoints.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/admin/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req models.CreateOrderInput
	if !bind(c, &req) {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "", "Erreur lors de la création de la commande")
		return
	}
	utils.JSON(c, http.StatusCreated, order)
}

// Get handles GET /api/admin/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgOrderNotFound, "")
		return
	}
	utils.JSON(c, http.StatusOK, order)
}

// Items handles GET /api/admin/orders/:id/items
func (h *OrderHandler) Items(c *gin.Context) {
	items, err := h.orderService.Items(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, msgOrderNotFound, "")
		return
	}
	utils.JSON(c, http.StatusOK, items)
}

// AddItem handles POST /api/admin/orders/:id/items
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req models.AddOrderItemInput
	if !bind(c, &req) {
		return
	}

	item, err := h.orderService.AddItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Commande ou produit non trouvé", "Erreur lors de l'ajout de l'article")
		return
	}
	utils.JSON(c, http.StatusCreated, item)
}

// UpdateStatus handles PUT /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusInput
	if !bind(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, msgOrderNotFound, "")
		return
	}
	utils.JSON(c, http.StatusOK, order)
}
