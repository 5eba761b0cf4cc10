// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

const testDebounce = 50 * time.Millisecond

// ── helpers ───────────────────────────────────────────────────────────────────

func startWatcher(t *testing.T, root string) ChangeWatcher {
	t.Helper()
	w, err := NewChangeWatcher(root, testDebounce, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func nextEvent(t *testing.T, w ChangeWatcher) models.ChangeEvent {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a change event")
	}
	return models.ChangeEvent{}
}

func assertNoEvent(t *testing.T, w ChangeWatcher) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(4 * testDebounce):
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestWatcher_CreateIsCoalesced(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "assets"), 0o755))
	w := startWatcher(t, root)

	path := filepath.Join(root, "assets", "app.js")
	writeFile(t, path, "one")
	writeFile(t, path, "two")

	ev := nextEvent(t, w)
	assert.Equal(t, models.ChangeEvent{Path: path, Kind: models.Created}, ev)
	assertNoEvent(t, w)
}

func TestWatcher_UpdateAndDelete(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "style.css")
	writeFile(t, path, "a{}")
	w := startWatcher(t, root)

	writeFile(t, path, "b{}")
	assert.Equal(t, models.ChangeEvent{Path: path, Kind: models.Updated}, nextEvent(t, w))

	require.NoError(t, os.Remove(path))
	assert.Equal(t, models.ChangeEvent{Path: path, Kind: models.Deleted}, nextEvent(t, w))
}

func TestWatcher_CreateThenDeleteBecomesDeleted(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	path := filepath.Join(root, "tmp.liquid")
	writeFile(t, path, "x")
	require.NoError(t, os.Remove(path))

	assert.Equal(t, models.ChangeEvent{Path: path, Kind: models.Deleted}, nextEvent(t, w))
}

func TestWatcher_NewDirectoryIsWatchedRecursively(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	dir := filepath.Join(root, "snippets")
	require.NoError(t, os.Mkdir(dir, 0o755))
	// give the backend a moment to register the new directory
	time.Sleep(2 * testDebounce)

	path := filepath.Join(dir, "card.liquid")
	writeFile(t, path, "{{ card }}")

	ev := nextEvent(t, w)
	assert.Equal(t, path, ev.Path)
	assert.Equal(t, models.Created, ev.Kind)
}

func TestWatcher_DirectoriesNeverSurface(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	assertNoEvent(t, w)
}

func TestWatcher_ChmodIsIgnored(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.css")
	writeFile(t, path, "a")
	w := startWatcher(t, root)

	require.NoError(t, os.Chmod(path, 0o600))
	assertNoEvent(t, w)
}

func TestWatcher_CloseClosesChannels(t *testing.T) {
	w, err := NewChangeWatcher(t.TempDir(), testDebounce, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok)
	_, ok = <-w.Errors()
	assert.False(t, ok)
}

func TestNewChangeWatcher_MissingRoot(t *testing.T) {
	_, err := NewChangeWatcher(filepath.Join(t.TempDir(), "missing"), 0, logger.Nop())
	assert.Error(t, err)
}

func TestWatcher_RemovedDirectoryReportsItsFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "assets", "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "deep"), 0o755))
	a := filepath.Join(dir, "a.css")
	b := filepath.Join(dir, "deep", "b.js")
	writeFile(t, a, "a {}")
	writeFile(t, b, "var b")

	w := startWatcher(t, root)
	require.NoError(t, os.RemoveAll(dir))

	got := map[string]models.ChangeKind{}
	for range 2 {
		ev := nextEvent(t, w)
		got[ev.Path] = ev.Kind
	}
	assert.Equal(t, map[string]models.ChangeKind{
		a: models.Deleted,
		b: models.Deleted,
	}, got)
	assertNoEvent(t, w)
}

func TestWatcher_DirectoryMovedOutReportsItsFiles(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	dir := filepath.Join(root, "assets", "sub")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	a := filepath.Join(dir, "a.css")
	writeFile(t, a, "a {}")

	w := startWatcher(t, root)
	require.NoError(t, os.Rename(dir, filepath.Join(outside, "sub")))

	assert.Equal(t, models.ChangeEvent{Path: a, Kind: models.Deleted}, nextEvent(t, w))
	assertNoEvent(t, w)

	// the moved tree is no longer watched
	writeFile(t, filepath.Join(outside, "sub", "a.css"), "b {}")
	assertNoEvent(t, w)
}

func TestWatcher_DirectoryMovedInsideReportsBothSides(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, filepath.Join(dir, "a.css"), "a {}")

	w := startWatcher(t, root)
	require.NoError(t, os.Rename(dir, filepath.Join(root, "static")))

	got := map[string]models.ChangeKind{}
	for range 2 {
		ev := nextEvent(t, w)
		got[ev.Path] = ev.Kind
	}
	assert.Equal(t, map[string]models.ChangeKind{
		filepath.Join(root, "assets", "a.css"): models.Deleted,
		filepath.Join(root, "static", "a.css"): models.Created,
	}, got)
}
