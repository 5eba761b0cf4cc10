// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ServerConfig is the configuration of the themestore emulator. It is
// populated by merging environment variables (THEMESTORE_ prefix) and
// command-line flags, flags winning.
type ServerConfig struct {
	// App holds application-level settings.
	App ServerApp

	// Storage holds the database settings.
	Storage ServerStorage

	// Server holds network address and timeout settings of the HTTP server.
	Server Server
}

// ServerApp holds application-level settings of the emulator.
type ServerApp struct {
	// APIKey is the only key accepted by the emulator. It is hashed at
	// startup and never kept in plain text by the handlers.
	// Env: THEMESTORE_API_KEY
	APIKey string `env:"API_KEY"`
}

// ServerStorage holds connection settings for the relational database.
type ServerStorage struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL through pgx, anything else is handed to SQLite
	// (e.g. "file:themes.db?_foreign_keys=on").
	// Env: THEMESTORE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: THEMESTORE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: THEMESTORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

const (
	defaultServerAddress = "localhost:8080"
	defaultServerDSN     = "file:themes.db?_foreign_keys=on"
	defaultServerTimeout = 30 * time.Second
)

// GetServerConfig loads, merges, and validates the emulator configuration
// from environment variables and the given command-line arguments (without
// the program name).
func GetServerConfig(args []string) (*ServerConfig, error) {
	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg, serverEnvPrefix); err != nil {
		return nil, err
	}

	flagCfg, err := ParseServerFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return buildServerConfig(envCfg, flagCfg)
}

func buildServerConfig(layers ...*ServerConfig) (*ServerConfig, error) {
	cfg := &ServerConfig{
		Storage: ServerStorage{DSN: defaultServerDSN},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
	}

	var errs error
	for _, layer := range layers {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("error merging configs: %w", errs)
	}

	return cfg, cfg.validate()
}
