// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-theme-sync/internal/adapter"
	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/internal/classifier"
	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/models"
)

// ClientSyncOptions tunes the sync engine.
type ClientSyncOptions struct {
	// Concurrency bounds parallel asset operations. Values below 1 mean
	// [config.DefaultConcurrency].
	Concurrency int
}

type clientSyncService struct {
	catalog    catalog.AssetCatalog
	classifier classifier.ContentClassifier
	adapter    adapter.ThemeStoreAdapter
	fs         billy.Filesystem
	reporter   Reporter

	concurrency int
	logger      *logger.Logger
}

// NewClientSyncService builds the sync engine. fs must be rooted at the same
// working directory as assets; a nil reporter discards progress.
func NewClientSyncService(
	assets catalog.AssetCatalog,
	contentClassifier classifier.ContentClassifier,
	themeStore adapter.ThemeStoreAdapter,
	fs billy.Filesystem,
	reporter Reporter,
	opts ClientSyncOptions,
	logger *logger.Logger,
) ClientSyncService {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = config.DefaultConcurrency
	}

	return &clientSyncService{
		catalog:     assets,
		classifier:  contentClassifier,
		adapter:     themeStore,
		fs:          fs,
		reporter:    reporter,
		concurrency: opts.Concurrency,
		logger:      logger,
	}
}

func (s *clientSyncService) Upload(ctx context.Context, paths []string) (models.SyncReport, error) {
	if len(paths) == 0 {
		local, err := s.catalog.LocalAssets()
		if err != nil {
			return models.SyncReport{}, fmt.Errorf("list local assets: %w", err)
		}
		paths = local.Sorted()
	}

	report := s.runBatch(ctx, paths, s.uploadOne)
	s.reporter.Done(models.OperationUpload, report)

	return report, nil
}

func (s *clientSyncService) Replace(ctx context.Context, paths []string, confirmed bool) (models.SyncReport, error) {
	if !confirmed {
		return models.SyncReport{}, ErrReplaceNotConfirmed
	}

	deletions := paths
	uploads := paths
	if len(paths) == 0 {
		records, err := s.adapter.ListAssets(ctx)
		if err != nil {
			return models.SyncReport{}, fmt.Errorf("list remote assets: %w", err)
		}

		local, err := s.catalog.LocalAssets()
		if err != nil {
			return models.SyncReport{}, fmt.Errorf("list local assets: %w", err)
		}

		remote := catalog.NewSet()
		for _, rec := range records {
			remote.Add(rec.Path)
		}

		deletions = remote.Difference(local).Sorted()
		uploads = local.Sorted()
	}

	// ignored paths are never deleted
	candidates := make([]string, 0, len(deletions))
	for _, p := range deletions {
		if s.catalog.IsIgnored(p) {
			s.logger.Debug().Str("path", p).Msg("ignored path kept on remote")
			continue
		}
		candidates = append(candidates, p)
	}

	var report models.SyncReport

	deleted := s.runBatch(ctx, candidates, s.removeOne)
	s.reporter.Done(models.OperationDelete, deleted)
	report.Merge(deleted)

	uploaded := s.runBatch(ctx, uploads, s.uploadOne)
	s.reporter.Done(models.OperationUpload, uploaded)
	report.Merge(uploaded)

	return report, nil
}

func (s *clientSyncService) Remove(ctx context.Context, paths []string) (models.SyncReport, error) {
	report := s.runBatch(ctx, paths, s.removeOne)
	s.reporter.Done(models.OperationDelete, report)

	return report, nil
}

func (s *clientSyncService) Download(ctx context.Context, paths []string) (models.SyncReport, error) {
	if len(paths) == 0 {
		records, err := s.adapter.ListAssets(ctx)
		if err != nil {
			return models.SyncReport{}, fmt.Errorf("list remote assets: %w", err)
		}

		remote := catalog.NewSet()
		for _, rec := range records {
			remote.Add(rec.Path)
		}
		paths = remote.Sorted()
	}

	report := s.runBatch(ctx, paths, s.downloadOne)
	s.reporter.Done(models.OperationDownload, report)

	return report, nil
}

func (s *clientSyncService) Check(ctx context.Context) error {
	if _, err := s.adapter.ListAssets(ctx); err != nil {
		return fmt.Errorf("check configuration: %w", err)
	}

	return nil
}

type assetAction func(ctx context.Context, path string) models.SyncResult

// runBatch applies action to every distinct path with bounded parallelism.
// Results keep the first-seen order of paths regardless of completion order.
func (s *clientSyncService) runBatch(ctx context.Context, paths []string, action assetAction) models.SyncReport {
	paths = uniquePaths(paths)
	results := make([]models.SyncResult, len(paths))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, p := range paths {
		g.Go(func() error {
			results[i] = action(ctx, p)
			return nil
		})
	}
	// actions never return an error, failures live in the results
	_ = g.Wait()

	return models.SyncReport{Results: results}
}

func uniquePaths(paths []string) []string {
	seen := catalog.NewSet()
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen.Has(p) {
			continue
		}
		seen.Add(p)
		unique = append(unique, p)
	}

	return unique
}

func (s *clientSyncService) uploadOne(ctx context.Context, assetPath string) models.SyncResult {
	const op = models.OperationUpload

	s.reporter.Start(op, assetPath)
	if res, ok := s.validate(op, assetPath); !ok {
		return res
	}

	content, err := util.ReadFile(s.fs, filepath.FromSlash(assetPath))
	if err != nil {
		return s.fail(op, assetPath, fmt.Errorf("read %s: %w", assetPath, err))
	}

	kind, verdict := s.classifier.Classify(assetPath, content)
	if verdict.UnknownExtension {
		s.reporter.Warn(assetPath, fmt.Sprintf("unknown file extension, sending as %s (detected %s)", kind, verdict.MediaType))
	}

	payload := models.TextPayload(content)
	if kind == models.Binary {
		payload = models.BinaryPayload(content)
	}

	if err = s.adapter.PutAsset(ctx, assetPath, payload); err != nil {
		return s.fail(op, assetPath, err)
	}

	return s.succeed(op, assetPath)
}

func (s *clientSyncService) removeOne(ctx context.Context, assetPath string) models.SyncResult {
	const op = models.OperationDelete

	s.reporter.Start(op, assetPath)
	if res, ok := s.validate(op, assetPath); !ok {
		return res
	}

	if err := s.adapter.DeleteAsset(ctx, assetPath); err != nil {
		return s.fail(op, assetPath, err)
	}

	return s.succeed(op, assetPath)
}

func (s *clientSyncService) downloadOne(ctx context.Context, assetPath string) models.SyncResult {
	const op = models.OperationDownload

	s.reporter.Start(op, assetPath)
	if res, ok := s.validate(op, assetPath); !ok {
		return res
	}

	asset, err := s.adapter.GetAsset(ctx, assetPath)
	if err != nil {
		return s.fail(op, assetPath, err)
	}

	payload, err := asset.Payload()
	if err != nil {
		return s.fail(op, assetPath, err)
	}

	local := filepath.FromSlash(assetPath)
	if err = s.fs.MkdirAll(filepath.FromSlash(path.Dir(assetPath)), 0o755); err != nil {
		return s.fail(op, assetPath, fmt.Errorf("create directory for %s: %w", assetPath, err))
	}
	if err = util.WriteFile(s.fs, local, payload.Bytes(), 0o644); err != nil {
		return s.fail(op, assetPath, fmt.Errorf("write %s: %w", assetPath, err))
	}

	return s.succeed(op, assetPath)
}

func (s *clientSyncService) validate(op models.Operation, assetPath string) (models.SyncResult, bool) {
	err := catalog.ValidatePath(assetPath)
	if err == nil {
		return models.SyncResult{}, true
	}

	s.reporter.Warn(assetPath, err.Error())
	res := models.SyncResult{Path: assetPath, Operation: op, Outcome: models.OutcomeSkipped, Err: err}
	s.reporter.Result(res)

	return res, false
}

func (s *clientSyncService) fail(op models.Operation, assetPath string, err error) models.SyncResult {
	s.logger.Debug().Err(err).Str("path", assetPath).Str("op", string(op)).Msg("asset operation failed")

	res := models.SyncResult{Path: assetPath, Operation: op, Outcome: models.OutcomeFailure, Err: err}
	s.reporter.Result(res)

	return res
}

func (s *clientSyncService) succeed(op models.Operation, assetPath string) models.SyncResult {
	res := models.SyncResult{Path: assetPath, Operation: op, Outcome: models.OutcomeSuccess}
	s.reporter.Result(res)

	return res
}
