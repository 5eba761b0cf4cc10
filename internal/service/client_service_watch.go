// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-theme-sync/internal/watcher"
	"github.com/MKhiriev/go-theme-sync/internal/workers"
	"github.com/MKhiriev/go-theme-sync/models"
)

func (s *clientSyncService) Watch(ctx context.Context, source watcher.ChangeWatcher, keepRemote bool) error {
	// dispatched actions outlive cancellation so none is left half-applied
	pool := workers.NewLanePool(context.WithoutCancel(ctx), s.concurrency)
	defer pool.Close()

	events := source.Events()
	errs := source.Errors()

	s.logger.Info().Bool("keep_remote", keepRemote).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("watch stopped")
			return nil

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			return fmt.Errorf("%w: %w", ErrWatcherFailed, err)

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.dispatch(pool, ev, keepRemote); err != nil {
				return err
			}
		}
	}
}

func (s *clientSyncService) dispatch(pool *workers.LanePool, ev models.ChangeEvent, keepRemote bool) error {
	rel, ok := s.catalog.Normalize(ev.Path)
	if !ok || !s.catalog.IsMember(rel) {
		s.logger.Debug().Str("path", ev.Path).Str("kind", ev.Kind.String()).Msg("change outside catalog discarded")
		return nil
	}

	var action assetAction
	switch ev.Kind {
	case models.Created, models.Updated:
		if !s.catalog.Exists(rel) {
			s.logger.Debug().Str("path", rel).Msg("changed file is gone, skipping upload")
			return nil
		}
		action = s.uploadOne
	case models.Deleted:
		if keepRemote {
			s.logger.Debug().Str("path", rel).Msg("local deletion kept on remote")
			return nil
		}
		action = s.removeOne
	default:
		return fmt.Errorf("%w: %s for %s", ErrUnknownChangeKind, ev.Kind, rel)
	}

	return pool.Submit(rel, func(ctx context.Context) {
		action(ctx, rel)
	})
}
