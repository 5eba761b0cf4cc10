// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [ClientFile] carries everything the sync
// commands need before any of them runs.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// configuration sentinels otherwise.
func (c *ClientFile) validate() error {
	if strings.TrimSpace(c.APIKey) == "" || c.ThemeID == 0 {
		return ErrMissingCredentials
	}

	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidServerConfigs)
	}

	if cfg.App.APIKey == "" {
		return fmt.Errorf("%w: empty api key", ErrInvalidServerConfigs)
	}

	return nil
}
