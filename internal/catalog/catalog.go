// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/MKhiriev/go-theme-sync/internal/config"
)

type assetCatalog struct {
	fs       billy.Filesystem
	root     string
	patterns *config.Patterns
}

// NewAssetCatalog builds a catalog over fs, which must be rooted at the
// absolute directory root. A nil patterns value means the defaults.
func NewAssetCatalog(fs billy.Filesystem, root string, patterns *config.Patterns) AssetCatalog {
	if patterns == nil {
		patterns = config.DefaultPatterns()
	}

	return &assetCatalog{
		fs:       fs,
		root:     filepath.Clean(root),
		patterns: patterns,
	}
}

func (c *assetCatalog) IsMember(path string) bool {
	return c.patterns.Whitelisted(path) && !c.patterns.Ignored(path)
}

func (c *assetCatalog) IsIgnored(path string) bool {
	return c.patterns.Ignored(path)
}

func (c *assetCatalog) LocalAssets() (Set, error) {
	assets := NewSet()
	if err := c.walk(".", assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (c *assetCatalog) walk(dir string, assets Set) error {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := c.fs.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if err = c.walk(name, assets); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			rel := filepath.ToSlash(name)
			if c.IsMember(rel) {
				assets.Add(rel)
			}
		}
	}

	return nil
}

func (c *assetCatalog) Exists(path string) bool {
	info, err := c.fs.Stat(filepath.FromSlash(path))
	return err == nil && info.Mode().IsRegular()
}

func (c *assetCatalog) Normalize(absPath string) (string, bool) {
	rel, err := filepath.Rel(c.root, filepath.Clean(absPath))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}
