// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

const (
	// DefaultConfigFileName is the name of the persisted configuration file
	// looked up in the working directory.
	DefaultConfigFileName = "config.yml"

	// DefaultAPIURL is the theme store address used when none is configured.
	DefaultAPIURL = "http://localhost:8080"

	// DefaultRequestTimeout bounds a single request to the theme store.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultConcurrency is the number of assets transferred in parallel by
	// batch operations.
	DefaultConcurrency = 4

	// DefaultWatchDebounce is the quiet window used to coalesce filesystem
	// events on the same path.
	DefaultWatchDebounce = 200 * time.Millisecond
)

// ClientFile is the persisted key-value document (config.yml) consumed by
// the CLI. The same struct is used as the merge unit for the environment and
// flag layers.
//
// Struct tags:
//   - yaml: key in config.yml.
//   - env : environment variable name, looked up with the THEMESYNC_ prefix.
type ClientFile struct {
	// APIKey authenticates every request to the theme store.
	// Env: THEMESYNC_API_KEY
	APIKey string `yaml:"api_key" env:"API_KEY"`

	// ThemeID is the remote theme all asset operations apply to.
	// Env: THEMESYNC_THEME_ID
	ThemeID int64 `yaml:"theme_id" env:"THEME_ID"`

	// Site is the public base URL used to build preview links.
	Site string `yaml:"site,omitempty" env:"SITE"`

	// APIURL is the base address of the theme store API.
	// Env: THEMESYNC_API_URL
	APIURL string `yaml:"api_url,omitempty" env:"API_URL"`

	// Whitelist holds additional regular expressions a path may match to be
	// synchronised, on top of the default theme directories.
	Whitelist []string `yaml:"whitelist,omitempty"`

	// Ignore holds additional regular expressions excluding paths from
	// synchronisation, on top of config.yml.
	Ignore []string `yaml:"ignore,omitempty"`

	// RequestTimeout bounds a single HTTP request (e.g. "30s").
	// Env: THEMESYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `yaml:"request_timeout,omitempty" env:"REQUEST_TIMEOUT"`

	// Concurrency is the number of assets transferred in parallel.
	// Env: THEMESYNC_CONCURRENCY
	Concurrency int `yaml:"concurrency,omitempty" env:"CONCURRENCY"`
}

// ClientApp holds settings describing the local working copy.
type ClientApp struct {
	// WorkDir is the absolute path of the theme directory.
	WorkDir string
	// ConfigPath is the absolute path of config.yml.
	ConfigPath string
	// Site is the public base URL of the site, used for previews.
	Site string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the theme store API.
	HTTPAddress string
	// APIKey is sent as a bearer token with every request.
	APIKey string
	// ThemeID selects the remote theme.
	ThemeID int64
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientSync holds settings of the synchronization engine.
type ClientSync struct {
	// Concurrency bounds parallel asset transfers in batch operations.
	Concurrency int
	// WatchDebounce is the coalescing window of the change watcher.
	WatchDebounce time.Duration
	// Patterns is the compiled whitelist/ignore set.
	Patterns *Patterns
}

// ClientConfig is the validated, read-only configuration of the CLI.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Sync    ClientSync
}

// PreviewURL returns the site URL pointing at the configured theme, or the
// bare site URL when no theme id is set.
func (c *ClientConfig) PreviewURL() (string, error) {
	if c.App.Site == "" {
		return "", ErrMissingSite
	}

	u, err := url.Parse(c.App.Site)
	if err != nil {
		return "", fmt.Errorf("parse site url: %w", err)
	}

	if c.Adapter.ThemeID > 0 {
		q := u.Query()
		q.Set("preview_theme_id", fmt.Sprint(c.Adapter.ThemeID))
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// ClientOptions carries the values the CLI layer resolved from its flags.
type ClientOptions struct {
	// WorkDir is the theme directory; defaults to the current directory.
	WorkDir string
	// ConfigPath overrides <WorkDir>/config.yml.
	ConfigPath string
	// Overrides is merged last, on top of the file and environment.
	Overrides ClientFile
}

// GetClientConfig loads, merges, and validates the client configuration in
// the following priority order (last source wins for non-zero fields):
//  1. config.yml
//  2. Environment variables
//  3. Overrides from the command line
//
// Returns a [ClientConfig] or an error wrapping one of the configuration
// sentinels ([ErrConfigEmpty], [ErrMissingCredentials], ...).
func GetClientConfig(opts ClientOptions) (*ClientConfig, error) {
	workDir, configPath, err := resolvePaths(opts)
	if err != nil {
		return nil, err
	}

	file, err := newClientConfigBuilder().
		withYAML(configPath).
		withEnv().
		withOverrides(opts.Overrides).
		build()
	if err != nil {
		return nil, err
	}

	return newClientConfig(file, workDir, configPath)
}

func newClientConfig(file *ClientFile, workDir, configPath string) (*ClientConfig, error) {
	patterns, err := NewPatterns(file.Whitelist, file.Ignore)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		App: ClientApp{
			WorkDir:    workDir,
			ConfigPath: configPath,
			Site:       file.Site,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    file.APIURL,
			APIKey:         file.APIKey,
			ThemeID:        file.ThemeID,
			RequestTimeout: file.RequestTimeout,
		},
		Sync: ClientSync{
			Concurrency:   file.Concurrency,
			WatchDebounce: DefaultWatchDebounce,
			Patterns:      patterns,
		},
	}

	return cfg, nil
}

func resolvePaths(opts ClientOptions) (string, string, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", "", fmt.Errorf("resolve working directory: %w", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(workDir, DefaultConfigFileName)
	}

	configPath, err = filepath.Abs(configPath)
	if err != nil {
		return "", "", fmt.Errorf("resolve config path: %w", err)
	}

	return workDir, configPath, nil
}
