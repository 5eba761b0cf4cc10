// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-theme-sync/internal/config"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testRoot = "/work/theme"

func newTestFS(t *testing.T, files ...string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for _, f := range files {
		require.NoError(t, util.WriteFile(fs, f, []byte("content of "+f), 0o644))
	}
	return fs
}

// ── IsMember ──────────────────────────────────────────────────────────────────

func TestIsMember_Defaults(t *testing.T) {
	c := NewAssetCatalog(memfs.New(), testRoot, nil)

	assert.True(t, c.IsMember("assets/style.css"))
	assert.True(t, c.IsMember("layouts/theme.liquid"))
	assert.False(t, c.IsMember("config.yml"))
	assert.False(t, c.IsMember("config/config.yml"))
	assert.False(t, c.IsMember("node_modules/x.js"))
	assert.False(t, c.IsMember("README.md"))
}

func TestIsMember_ConfiguredPatterns(t *testing.T) {
	patterns, err := config.NewPatterns([]string{`^locales/`}, []string{`\.scss$`})
	require.NoError(t, err)
	c := NewAssetCatalog(memfs.New(), testRoot, patterns)

	assert.True(t, c.IsMember("locales/en.json"))
	assert.False(t, c.IsMember("assets/theme.scss"))
	assert.True(t, c.IsIgnored("assets/theme.scss"))
	assert.False(t, c.IsIgnored("assets/theme.css"))
}

// ── LocalAssets ───────────────────────────────────────────────────────────────

func TestLocalAssets_FiltersByMembership(t *testing.T) {
	fs := newTestFS(t,
		"assets/style.css",
		"assets/img/logo.png",
		"config.yml",
		"config/settings_data.json",
		"templates/index.liquid",
		"notes.txt",
		"node_modules/pkg/index.js",
	)
	c := NewAssetCatalog(fs, testRoot, nil)

	got, err := c.LocalAssets()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/img/logo.png",
		"assets/style.css",
		"config/settings_data.json",
		"templates/index.liquid",
	}, got.Sorted())
}

// TestLocalAssets_OrderIndependent verifies that the same file set created in
// different orders produces the same catalog.
func TestLocalAssets_OrderIndependent(t *testing.T) {
	files := []string{"snippets/b.liquid", "assets/a.css", "layouts/theme.liquid", "assets/z/y.js"}
	reversed := []string{files[3], files[2], files[1], files[0]}

	first, err := NewAssetCatalog(newTestFS(t, files...), testRoot, nil).LocalAssets()
	require.NoError(t, err)
	second, err := NewAssetCatalog(newTestFS(t, reversed...), testRoot, nil).LocalAssets()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Sorted(), second.Sorted())
}

func TestLocalAssets_EmptyDirectory(t *testing.T) {
	got, err := NewAssetCatalog(memfs.New(), testRoot, nil).LocalAssets()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalAssets_OnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("api_key: k"), 0o600))

	c := NewAssetCatalog(osfs.New(dir), dir, nil)
	got, err := c.LocalAssets()
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/app.js"}, got.Sorted())
	assert.True(t, c.Exists("assets/app.js"))
	assert.False(t, c.Exists("assets"))
	assert.False(t, c.Exists("assets/missing.js"))
}

// ── Normalize ─────────────────────────────────────────────────────────────────

func TestNormalize(t *testing.T) {
	c := NewAssetCatalog(memfs.New(), testRoot, nil)

	tests := []struct {
		name   string
		abs    string
		want   string
		wantOK bool
	}{
		{name: "nested file", abs: "/work/theme/assets/app.js", want: "assets/app.js", wantOK: true},
		{name: "unclean path", abs: "/work/theme/assets/../layouts/theme.liquid", want: "layouts/theme.liquid", wantOK: true},
		{name: "root itself", abs: "/work/theme"},
		{name: "outside", abs: "/work/other/assets/app.js"},
		{name: "sibling with common prefix", abs: "/work/theme2/assets/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Normalize(tt.abs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Set ───────────────────────────────────────────────────────────────────────

func TestSet_Difference(t *testing.T) {
	remote := NewSet("assets/old.js", "assets/new.js", "config.yml")
	local := NewSet("assets/new.js")

	assert.Equal(t, []string{"assets/old.js", "config.yml"}, remote.Difference(local).Sorted())
	assert.True(t, remote.Has("assets/new.js"))
	assert.False(t, local.Has("assets/old.js"))
}
