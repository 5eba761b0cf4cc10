// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-theme-sync/internal/config"
)

// ErrInvalidAssetPath is returned for a path the theme store would reject.
var ErrInvalidAssetPath = errors.New("invalid asset path")

// ValidatePath checks that path starts with one of the theme root
// directories and stays inside it. Configured whitelist patterns do not
// widen this check.
func ValidatePath(path string) error {
	if strings.HasPrefix(path, "/") || strings.Contains(path, `\`) {
		return fmt.Errorf("%w: %s: must be relative and use forward slashes", ErrInvalidAssetPath, path)
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." || segment == "." {
			return fmt.Errorf("%w: %s: must not contain relative segments", ErrInvalidAssetPath, path)
		}
	}

	for _, root := range config.ThemeRoots {
		if strings.HasPrefix(path, root) && len(path) > len(root) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s: must be in %s", ErrInvalidAssetPath, path, strings.Join(config.ThemeRoots, ", "))
}

// IsValidPath reports whether [ValidatePath] accepts path.
func IsValidPath(path string) bool {
	return ValidatePath(path) == nil
}
