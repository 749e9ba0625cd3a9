package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_book_app/cmd/docs"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/middleware"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	RegisterValidators()

	// Add health check route
	r.GET("/health", healthHandler(services.HealthCheck))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	if err := setupAPIV1Routes(r, cfg, services, analytics); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the store is reachable.
// @Tags health
// @Produce  plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Store unavailable"
// @Router /health [get]
func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "Store unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	loginLimiter, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	apiLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("api rate limit: %w", err)
	}

	// Public authentication routes
	public := r.Group("/api/v1")
	registerAuthRoutes(public, NewAuthHandler(service.User, service.Token, analytics), middleware.RateLimit(loginLimiter))

	// Apply AuthMiddleware to the rest of the v1 group
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.GinMiddlewarize(apiLimiter),
		middleware.PosthogMiddleware(analytics),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerPartyRoutes(v1, service.Party)
	registerTransactionRoutes(v1, service.Transaction, analytics)
	registerRoznamchaRoutes(v1, service.Roznamcha)
	registerLedgerRoutes(v1, service.Ledger, analytics)
	registerBackupRoutes(v1, service.Backup, analytics)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
