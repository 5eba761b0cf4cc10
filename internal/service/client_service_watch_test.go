package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-theme-sync/models"
)

// fakeWatcher is a channel backed ChangeWatcher.
type fakeWatcher struct {
	events chan models.ChangeEvent
	errs   chan error
}

func newFakeWatcher(events ...models.ChangeEvent) *fakeWatcher {
	w := &fakeWatcher{
		events: make(chan models.ChangeEvent, len(events)+1),
		errs:   make(chan error, 1),
	}
	for _, ev := range events {
		w.events <- ev
	}
	return w
}

func (w *fakeWatcher) Events() <-chan models.ChangeEvent { return w.events }
func (w *fakeWatcher) Errors() <-chan error              { return w.errs }
func (w *fakeWatcher) Close() error                      { return nil }

// finished closes the event stream so Watch returns once it drained it.
func (w *fakeWatcher) finished() *fakeWatcher {
	close(w.events)
	return w
}

func workPath(rel string) string {
	return testWorkDir + "/" + rel
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestWatch_EventOutsideCatalogIsDiscarded(t *testing.T) {
	f := newSyncFixture(t, map[string][]byte{"README.md": []byte("# readme")})

	source := newFakeWatcher(
		models.ChangeEvent{Path: workPath("README.md"), Kind: models.Created},
		models.ChangeEvent{Path: workPath("config.yml"), Kind: models.Updated},
		models.ChangeEvent{Path: "/elsewhere/assets/app.js", Kind: models.Created},
	).finished()

	// any adapter call fails the controller
	err := f.svc.Watch(context.Background(), source, false)
	assert.NoError(t, err)
}

func TestWatch_CreatedInCatalogUploadsOnce(t *testing.T) {
	f := newSyncFixture(t, map[string][]byte{"assets/app.js": []byte("console.log(1)")})

	f.store.EXPECT().
		PutAsset(gomock.Any(), "assets/app.js", models.TextPayload([]byte("console.log(1)"))).
		Return(nil).
		Times(1)

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("assets/app.js"), Kind: models.Created}).finished()

	require.NoError(t, f.svc.Watch(context.Background(), source, false))
}

func TestWatch_UpdateOfVanishedFileIsSkipped(t *testing.T) {
	f := newSyncFixture(t, nil)

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("assets/gone.css"), Kind: models.Updated}).finished()

	require.NoError(t, f.svc.Watch(context.Background(), source, false))
}

func TestWatch_DeletedRemovesRemote(t *testing.T) {
	f := newSyncFixture(t, nil)

	f.store.EXPECT().DeleteAsset(gomock.Any(), "snippets/card.liquid").Return(nil)

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("snippets/card.liquid"), Kind: models.Deleted}).finished()

	require.NoError(t, f.svc.Watch(context.Background(), source, false))
}

func TestWatch_KeepRemoteIgnoresDeletions(t *testing.T) {
	f := newSyncFixture(t, nil)

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("snippets/card.liquid"), Kind: models.Deleted}).finished()

	require.NoError(t, f.svc.Watch(context.Background(), source, true))
}

func TestWatch_SamePathKeepsEventOrder(t *testing.T) {
	f := newSyncFixture(t, map[string][]byte{"assets/app.js": []byte("x")})

	gomock.InOrder(
		f.store.EXPECT().PutAsset(gomock.Any(), "assets/app.js", gomock.Any()).
			DoAndReturn(func(context.Context, string, models.Payload) error {
				time.Sleep(20 * time.Millisecond)
				return nil
			}),
		f.store.EXPECT().DeleteAsset(gomock.Any(), "assets/app.js").Return(nil),
	)

	source := newFakeWatcher(
		models.ChangeEvent{Path: workPath("assets/app.js"), Kind: models.Updated},
		models.ChangeEvent{Path: workPath("assets/app.js"), Kind: models.Deleted},
	).finished()

	require.NoError(t, f.svc.Watch(context.Background(), source, false))
}

// ── termination ───────────────────────────────────────────────────────────────

func TestWatch_UnknownKindIsFatal(t *testing.T) {
	f := newSyncFixture(t, nil)

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("assets/app.js"), Kind: models.ChangeKind(42)})

	err := f.svc.Watch(context.Background(), source, false)
	assert.ErrorIs(t, err, ErrUnknownChangeKind)
}

func TestWatch_WatcherErrorIsFatal(t *testing.T) {
	f := newSyncFixture(t, nil)

	source := newFakeWatcher()
	source.errs <- assert.AnError

	err := f.svc.Watch(context.Background(), source, false)
	assert.ErrorIs(t, err, ErrWatcherFailed)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWatch_CancelReturnsNil(t *testing.T) {
	f := newSyncFixture(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	source := newFakeWatcher()

	done := make(chan error, 1)
	go func() {
		done <- f.svc.Watch(ctx, source, false)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_InFlightUploadCompletesAfterCancel(t *testing.T) {
	f := newSyncFixture(t, map[string][]byte{"assets/app.js": []byte("x")})

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	f.store.EXPECT().PutAsset(gomock.Any(), "assets/app.js", gomock.Any()).
		DoAndReturn(func(callCtx context.Context, _ string, _ models.Payload) error {
			close(started)
			time.Sleep(30 * time.Millisecond)
			assert.NoError(t, callCtx.Err())
			return nil
		})

	source := newFakeWatcher(models.ChangeEvent{Path: workPath("assets/app.js"), Kind: models.Created})

	done := make(chan error, 1)
	go func() {
		done <- f.svc.Watch(ctx, source, false)
	}()

	<-started
	cancel()

	require.NoError(t, <-done)
}
