package services

import (
	portsrepo "github.com/SscSPs/zcred_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/zcred_app/internal/core/ports/services"
	"github.com/SscSPs/zcred_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(
			repos.ConversionRateRepo,
			repos.UserRepo,
			WithRateTTL(cfg.RateCacheTTL),
			WithFallbackRate(cfg.RateFallback),
		),
		User: NewUserService(repos.UserRepo),
	}
}
