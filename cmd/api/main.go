package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/cache"
	"github.com/connectik/connectik_api/internal/config"
	"github.com/connectik/connectik_api/internal/database"
	"github.com/connectik/connectik_api/internal/handler"
	"github.com/connectik/connectik_api/internal/middleware"
	"github.com/connectik/connectik_api/internal/repository"
	"github.com/connectik/connectik_api/internal/service"
	"github.com/connectik/connectik_api/internal/sse"
	"github.com/connectik/connectik_api/internal/utils"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting connectik api")

	// 3. Connect to database
	db, err := database.Connect(context.Background(), &cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Run migrations
	if err := database.RunMigrations(db.DB, cfg.DB.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 5. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	sessions := cache.NewRedisSessionStore(redisClient, cfg.Session.TTL)

	// 6. Initialize repositories
	contactRepo := repository.NewContactRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// 7. Initialize services
	adminAuthSvc := service.NewAdminAuthService(cfg.Admin, sessions)
	contactSvc := service.NewContactService(contactRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo)

	sseHub := sse.NewHub()
	notifier := sse.NewHubNotifier(sseHub)
	contactSvc.SetNotifier(notifier)
	orderSvc.SetNotifier(notifier)

	var imageHandler *handler.ImageHandler
	imageSvc, err := service.NewImageService(context.Background(), &cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("Image service initialization failed - image upload will be disabled")
	} else {
		imageHandler = handler.NewImageHandler(imageSvc)
	}

	// 8. Initialize handlers
	cookie := middleware.NewSessionCookie(cfg.Session)
	handlers := &handler.Handlers{
		Health:   handler.NewHealthHandler(db.PingContext, redisClient.Ping),
		Auth:     handler.NewAuthHandler(adminAuthSvc, cookie),
		Contact:  handler.NewContactHandler(contactSvc),
		Category: handler.NewCategoryHandler(categorySvc),
		Product:  handler.NewProductHandler(productSvc),
		Order:    handler.NewOrderHandler(orderSvc),
		Image:    imageHandler,
		Events:   handler.NewSSEHandler(sseHub),
	}

	// 9. Initialize middleware
	sessionMw := middleware.NewSessionMiddleware(adminAuthSvc, cookie)
	utils.RegisterValidators()

	if cfg.PublicDemoRoutes {
		log.Warn().Msg("Public demo routes enabled: POST /api/products, POST /api/categories, GET /api/contact-submissions")
	}

	// 10. Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS))
	router.Use(middleware.LoggingMiddleware())
	handler.RegisterRoutes(router, handlers, sessionMw, handler.RouteOptions{
		PublicDemoRoutes: cfg.PublicDemoRoutes,
		LoginLimiter:     middleware.NewInvalidAuthRateLimiter(5, time.Minute),
	})

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. End SSE streams so open connections can drain
	sseHub.Close()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
