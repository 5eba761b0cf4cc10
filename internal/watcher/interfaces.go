// Package watcher turns filesystem notifications below the working directory
// into coalesced change events.
package watcher

import "github.com/MKhiriev/go-theme-sync/models"

// ChangeWatcher produces change events for files below a root directory.
type ChangeWatcher interface {
	// Events delivers coalesced events with absolute paths, in the order the
	// first notification for each path arrived. The channel is closed by
	// Close.
	Events() <-chan models.ChangeEvent

	// Errors delivers failures reported by the notification backend. Any
	// value received here means events may have been lost.
	Errors() <-chan error

	// Close stops watching and releases the backend.
	Close() error
}
