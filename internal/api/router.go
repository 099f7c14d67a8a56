package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/handlers"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/middleware"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	"github.com/welldanyogia/webrana-posts-backend/internal/logger"
	"github.com/welldanyogia/webrana-posts-backend/internal/repository"
	"github.com/welldanyogia/webrana-posts-backend/internal/services"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB       *gorm.DB
	Logger   *slog.Logger
	Verifier auth.Verifier
	// Security configuration
	AllowedOrigins []string // Allowed CORS origins
	RateLimit      float64  // Requests per second (0 = disabled)
	RateBurst      int      // Burst size for rate limiter
	Limiter        *middleware.IPRateLimiter
	CSRFEnabled    bool
	Production     bool
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	sec := logger.NewSecurityLogger(log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware order matters: ids first so every log line can carry one
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.SecureCORS(cfg.AllowedOrigins, cfg.Production))

	limiter := cfg.Limiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	if limiter != nil {
		e.Use(middleware.RateLimiter(limiter, sec))
	}

	postRepo := repository.NewPostRepository(cfg.DB)
	postService := services.NewPostService(postRepo, log)

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	postHandler := handlers.NewPostHandler(postService, log)

	// Health routes (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	v1 := e.Group("/api/v1")
	if cfg.CSRFEnabled {
		v1.Use(middleware.CSRF(cfg.Production, sec))
	}

	requireUser := middleware.RequireRole(cfg.Verifier, auth.RoleUser, sec)

	posts := v1.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, requireUser)
	posts.PUT("/:id", postHandler.Update, requireUser)

	return e
}
