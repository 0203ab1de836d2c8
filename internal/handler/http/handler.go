package http

import (
	"time"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/service"
)

// Handler serves the REST API on top of the application services.
type Handler struct {
	services *service.Services

	// realm is announced in the WWW-Authenticate challenge of 401 responses.
	realm string

	// requestTimeout bounds every request. Zero disables the deadline.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, realm string, logger *logger.Logger) *Handler {
	if realm == "" {
		realm = config.DefaultRealm
	}

	logger.Info().Str("realm", realm).Dur("request_timeout", cfg.RequestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		realm:          realm,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
