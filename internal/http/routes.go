package http

import (
	"taskdeck/internal/config"
	"taskdeck/internal/http/handlers"
	"taskdeck/internal/http/middleware"
	"taskdeck/internal/repository"
	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, services and handlers onto the engine.
// Paths and status codes follow the public API contract; routes live at the
// root, not under /api.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens, cfg.BcryptCost)
	tasks := service.NewTaskService(repository.NewTaskRepository(db))

	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	RegisterAPIRoutes(r, handlers.NewHandler(auth, tasks), tokens, cfg)
}

// RegisterAPIRoutes registers the API surface for an already-wired handler.
// Split out so tests can mount the real routes over in-memory stores.
func RegisterAPIRoutes(r *gin.Engine, h *handlers.Handler, tokens *service.TokenService, cfg *config.Config) {
	// Credential endpoints get the tighter limiter window.
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	r.POST("/register", authRL, h.Register)
	r.POST("/login", authRL, h.Login)

	apiRL := middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)
	requireAuth := middleware.Auth(tokens)

	r.GET("/me", apiRL, requireAuth, h.Me)

	tasks := r.Group("/tasks")
	tasks.Use(apiRL, requireAuth)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
