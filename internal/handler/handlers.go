package handler

import (
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/handler/http"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
