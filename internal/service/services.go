package service

import (
	"github.com/JegankarthiMCA/i/internal/config"
	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
)

// Services bundles every service behind a single injection point for the
// transport layer.
type Services struct {
	AuthService    AuthService
	AccountService AccountService
	CatalogService CatalogService
}

// NewServices wires all services to the repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		AccountService: NewAccountService(storages.UserRepository, logger),
		CatalogService: NewCatalogService(storages.CourseRepository, storages.VideoRepository, logger),
	}
}
