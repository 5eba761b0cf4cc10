// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// parseYAML reads the persisted client configuration at path.
//
// Returns [ErrConfigNotFound] (wrapped) when the file does not exist and
// [ErrInvalidConfigFile] (wrapped) when it cannot be decoded.
func parseYAML(path string) (*ClientFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg ClientFile
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfigFile, path, err)
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path. An existing file is only replaced when
// force is true; otherwise [ErrConfigExists] is returned.
func Save(path string, cfg ClientFile, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	// config.yml holds the api key
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
