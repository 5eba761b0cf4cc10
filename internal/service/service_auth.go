package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
)

// authService is the concrete implementation of AuthService. The configured
// api key is only kept as a bcrypt hash.
type authService struct {
	apiKeyHash []byte

	logger *logger.Logger
}

// NewAuthService hashes cfg.APIKey. It fails when the key is empty.
func NewAuthService(cfg config.ServerApp, logger *logger.Logger) (AuthService, error) {
	hash, err := utils.HashAPIKey(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("hash api key: %w", err)
	}

	return &authService{
		apiKeyHash: hash,
		logger:     logger,
	}, nil
}

func (a *authService) Authenticate(ctx context.Context, apiKey string) error {
	if apiKey == "" || !utils.CompareAPIKey(a.apiKeyHash, apiKey) {
		return ErrInvalidAPIKey
	}
	return nil
}
