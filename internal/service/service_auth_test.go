// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
)

func TestNewAuthService_EmptyKey(t *testing.T) {
	svc, err := NewAuthService(config.ServerApp{}, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, utils.ErrEmptyAPIKey)
}

func TestAuthenticate(t *testing.T) {
	svc, err := NewAuthService(config.ServerApp{APIKey: "secret-key"}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "matching key", key: "secret-key"},
		{name: "wrong key", key: "secret-kez", wantErr: ErrInvalidAPIKey},
		{name: "empty key", key: "", wantErr: ErrInvalidAPIKey},
		{name: "prefix of key", key: "secret", wantErr: ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authenticate(context.Background(), tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
