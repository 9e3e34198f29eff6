package handlers

import (
	"fmt"
	"net/http"

	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/dto"
	"github.com/SscSPs/zcred_app/internal/middleware"
	"github.com/SscSPs/zcred_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// RegisterBindingValidators installs the custom DTO validation tags on gin's validator.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// redisClient may be nil, in which case rate limits are tracked per process.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	redisClient *redis.Client,
) error {
	if err := RegisterBindingValidators(); err != nil {
		return err
	}

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, "zcred:login", redisClient)
	if err != nil {
		return err
	}
	adminLimiter, err := middleware.NewLimiter(cfg.AdminRateLimit, "zcred:admin", redisClient)
	if err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")
	RegisterAuthRoutes(api, cfg, services.User, middleware.RateLimit(loginLimiter))

	// Everything else under /api/v1 requires a valid token
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterProfileRoutes(v1, services.User)
	RegisterConversionRoutes(v1, services.Conversion)
	RegisterAdminRoutes(v1.Group("/admin", middleware.RateLimit(adminLimiter)), services.Conversion, services.User)

	return nil
}
