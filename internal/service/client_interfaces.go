package service

import (
	"context"

	"github.com/MKhiriev/go-theme-sync/internal/watcher"
	"github.com/MKhiriev/go-theme-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientSyncService orchestrates every asset operation between the working
// directory and the remote theme. Batch operations treat each asset
// independently: a failing asset is recorded in the returned report and the
// batch goes on. The returned error is reserved for conditions that stop the
// whole operation.
type ClientSyncService interface {
	// Upload sends every path to the theme store. An empty paths slice means
	// every asset of the local catalog. Paths outside the theme roots are
	// skipped with a warning.
	Upload(ctx context.Context, paths []string) (models.SyncReport, error)

	// Replace makes the remote theme mirror the local one. Without
	// confirmation it returns [ErrReplaceNotConfirmed] and makes no call.
	// With empty paths it deletes every remote-only asset that is not
	// ignored and then uploads the whole catalog; with literal paths it
	// deletes and then re-uploads exactly those paths. The deletion phase
	// completes before the upload phase starts.
	Replace(ctx context.Context, paths []string, confirmed bool) (models.SyncReport, error)

	// Remove deletes every path from the remote theme.
	Remove(ctx context.Context, paths []string) (models.SyncReport, error)

	// Download writes remote assets into the working directory. An empty
	// paths slice means every remote asset.
	Download(ctx context.Context, paths []string) (models.SyncReport, error)

	// Check lists the remote assets once to prove that the configuration is
	// usable. The call is never retried.
	Check(ctx context.Context) error

	// Watch consumes events from source until ctx is cancelled, the event
	// stream ends, or source reports an error. Created and Updated events
	// upload the file, Deleted events remove it unless keepRemote is set.
	// Events for paths outside the catalog are discarded. Actions for the
	// same path run in the order the events arrived; actions already
	// dispatched when ctx is cancelled are completed before Watch returns.
	Watch(ctx context.Context, source watcher.ChangeWatcher, keepRemote bool) error
}

// ClientThemeService exposes the theme management calls used while
// configuring a working directory.
type ClientThemeService interface {
	// ListThemes returns every theme sorted by name.
	ListThemes(ctx context.Context) ([]models.Theme, error)

	// CreateTheme creates a theme called name. The name must not be blank.
	CreateTheme(ctx context.Context, name string) (models.Theme, error)
}

// Reporter receives progress of asset operations. Batch operations call it
// from several goroutines, so implementations must be safe for concurrent
// use.
type Reporter interface {
	// Start is called before an asset operation is attempted.
	Start(op models.Operation, path string)

	// Result is called exactly once per attempted or skipped asset.
	Result(result models.SyncResult)

	// Warn reports a non-fatal diagnostic about path.
	Warn(path, message string)

	// Done is called when a batch finished, whatever its outcome.
	Done(op models.Operation, report models.SyncReport)
}
