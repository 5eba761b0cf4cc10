// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package watcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

// DefaultDebounce is the quiet window used when none is given.
const DefaultDebounce = 200 * time.Millisecond

type fsWatcher struct {
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration

	events chan models.ChangeEvent
	errors chan error
	done   chan struct{}
	wg     sync.WaitGroup

	// dirs, files and gone are only touched by the run loop after start.
	// gone holds directories already forgotten whose self notification may
	// still be on its way.
	dirs  map[string]struct{}
	files map[string]struct{}
	gone  map[string]struct{}

	closeOnce sync.Once
	logger    *logger.Logger
}

// NewChangeWatcher watches root and every directory below it. Directories
// created later are added as they appear. Events on the same path that
// arrive within debounce of each other are merged into one.
func NewChangeWatcher(root string, debounce time.Duration, logger *logger.Logger) (ChangeWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	w := &fsWatcher{
		fsw:      fsw,
		root:     filepath.Clean(root),
		debounce: debounce,
		events:   make(chan models.ChangeEvent),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		dirs:     make(map[string]struct{}),
		files:    make(map[string]struct{}),
		gone:     make(map[string]struct{}),
		logger:   logger,
	}

	if _, err = w.addTree(w.root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *fsWatcher) Events() <-chan models.ChangeEvent {
	return w.events
}

func (w *fsWatcher) Errors() <-chan error {
	return w.errors
}

func (w *fsWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.events)
		close(w.errors)
	})
	return err
}

// addTree watches dir and its subdirectories and returns the regular files
// found below it.
func (w *fsWatcher) addTree(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// vanished between notification and walk
			if errors.Is(err, fs.ErrNotExist) && path != dir {
				return nil
			}
			return err
		}

		if d.IsDir() {
			if err = w.fsw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			w.dirs[path] = struct{}{}
			return nil
		}

		if d.Type().IsRegular() {
			w.files[path] = struct{}{}
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// forgetTree stops watching dir and everything below it and returns the
// files that were known there, sorted.
func (w *fsWatcher) forgetTree(dir string) []string {
	prefix := dir + string(filepath.Separator)
	for d := range w.dirs {
		if d == dir || strings.HasPrefix(d, prefix) {
			delete(w.dirs, d)
			w.gone[d] = struct{}{}
			// a moved directory keeps its inotify watch
			_ = w.fsw.Remove(d)
		}
	}

	var files []string
	for f := range w.files {
		if strings.HasPrefix(f, prefix) {
			delete(w.files, f)
			files = append(files, f)
		}
	}
	slices.Sort(files)

	return files
}

func (w *fsWatcher) run() {
	defer w.wg.Done()

	pending := newQueue()
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.handle(ev, pending) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}

		case <-timer.C:
			if !w.flush(pending) {
				return
			}
		}
	}
}

// handle records ev in pending and reports whether anything was recorded.
func (w *fsWatcher) handle(ev fsnotify.Event, pending *queue) bool {
	if ev.Name == "" {
		// self notification for a watch we already removed
		return false
	}
	name := filepath.Clean(ev.Name)

	switch {
	case ev.Op&fsnotify.Create == fsnotify.Create:
		delete(w.gone, name)
		info, err := os.Lstat(name)
		if err != nil {
			// created and removed before we looked
			return false
		}
		if info.IsDir() {
			files, err := w.addTree(name)
			if err != nil {
				w.logger.Warn().Err(err).Str("dir", name).Msg("failed to watch new directory")
			}
			for _, f := range files {
				pending.push(f, models.Created)
			}
			return len(files) > 0
		}
		if !info.Mode().IsRegular() {
			return false
		}
		w.files[name] = struct{}{}
		pending.push(name, models.Created)

	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if _, ok := w.dirs[name]; ok {
			files := w.forgetTree(name)
			for _, f := range files {
				pending.push(f, models.Deleted)
			}
			return len(files) > 0
		}
		if _, ok := w.gone[name]; ok {
			return false
		}
		delete(w.files, name)
		pending.push(name, models.Deleted)

	case ev.Op&fsnotify.Write == fsnotify.Write:
		if _, ok := w.dirs[name]; ok {
			return false
		}
		w.files[name] = struct{}{}
		pending.push(name, models.Updated)

	default:
		// chmod only
		return false
	}

	return true
}

// flush emits every pending event. It returns false when the watcher was
// closed while emitting.
func (w *fsWatcher) flush(pending *queue) bool {
	for _, ev := range pending.drain() {
		if ev.Kind != models.Deleted {
			info, err := os.Stat(ev.Path)
			switch {
			case err != nil:
				ev.Kind = models.Deleted
			case info.IsDir():
				continue
			}
		}

		w.logger.Debug().Str("path", ev.Path).Str("kind", ev.Kind.String()).Msg("change detected")

		select {
		case w.events <- ev:
		case <-w.done:
			return false
		}
	}

	return true
}
