package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/connectik/connectik_api/internal/middleware"
)

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Contact  *ContactHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Order    *OrderHandler
	Image    *ImageHandler
	Events   *SSEHandler
}

// RouteOptions holds the route-level switches.
type RouteOptions struct {
	// PublicDemoRoutes registers the unauthenticated create endpoints and
	// the public contact inbox listing.
	PublicDemoRoutes bool
	LoginLimiter     *middleware.InvalidAuthRateLimiter
}

// RegisterRoutes registers all routes.
func RegisterRoutes(router *gin.Engine, h *Handlers, sessionMw *middleware.SessionMiddleware, opts RouteOptions) {
	router.GET("/health", h.Health.GetHealth)

	if h.Image != nil {
		router.GET("/objects/*objectPath", h.Image.Serve)
	}

	api := router.Group("/api")
	{
		api.POST("/contact", h.Contact.Submit)

		api.GET("/products", h.Product.ListPublic)
		api.GET("/products/:slug", h.Product.GetPublic)

		api.GET("/categories", h.Category.List)
		api.GET("/categories/:slug", h.Category.GetBySlug)

		if opts.PublicDemoRoutes {
			api.GET("/contact-submissions", h.Contact.List)
			api.POST("/products", h.Product.Create)
			api.POST("/categories", h.Category.Create)
		}
	}

	// Session endpoints
	login := []gin.HandlerFunc{h.Auth.Login}
	if opts.LoginLimiter != nil {
		login = append([]gin.HandlerFunc{middleware.LoginThrottle(opts.LoginLimiter)}, login...)
	}
	api.POST("/admin/login", login...)
	api.POST("/admin/logout", h.Auth.Logout)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(sessionMw.Handle())
	{
		admin.GET("/me", h.Auth.Me)

		// Contact inbox
		admin.GET("/contact-submissions", h.Contact.List)
		admin.GET("/contact-submissions/:id", h.Contact.Get)
		admin.DELETE("/contact-submissions/:id", h.Contact.Delete)

		// Catalog
		admin.GET("/products", h.Product.ListAll)
		admin.GET("/products/:id", h.Product.Get)
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.GET("/categories", h.Category.List)
		admin.POST("/categories", h.Category.Create)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		// Orders
		admin.POST("/orders", h.Order.Create)
		admin.GET("/orders/:id", h.Order.Get)
		admin.GET("/orders/:id/items", h.Order.Items)
		admin.POST("/orders/:id/items", h.Order.AddItem)
		admin.PUT("/orders/:id/status", h.Order.UpdateStatus)

		// Live updates
		if h.Events != nil {
			admin.GET("/events", h.Events.Stream)
		}

		// Images
		if h.Image != nil {
			admin.POST("/images/upload", h.Image.UploadURL)
			admin.PUT("/images", h.Image.SetPolicy)
		}
	}
}
