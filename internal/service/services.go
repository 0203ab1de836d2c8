package service

import (
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/crypto"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/workers"
)

// Services groups the application services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires the services to storages. hasher and pool are shared by
// the auth and user services.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, pool workers.Offloader, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, pool, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, pool, logger),
		AppInfoService: appInfoService,
	}, nil
}
