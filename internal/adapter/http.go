package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-theme-sync/internal/config"
	"github.com/MKhiriev/go-theme-sync/internal/logger"
	"github.com/MKhiriev/go-theme-sync/internal/utils"
	"github.com/MKhiriev/go-theme-sync/models"
)

const (
	userAgent = "themesync"

	themesPath = "/api/themes"
	assetsPath = "/api/themes/{theme_id}/assets"
	assetPath  = "/api/themes/{theme_id}/asset"
)

type httpThemeStoreAdapter struct {
	client  *utils.HTTPClient
	themeID int64

	logger *logger.Logger
}

// NewHTTPThemeStoreAdapter constructs an HTTP/REST implementation of
// [ThemeStoreAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, attaches the api key as a bearer token and a fresh
// X-Trace-ID to every request, and applies the configured request timeout.
//
// A zero adapterCfg.ThemeID is accepted; asset operations then fail with
// [ErrMissingThemeID] while theme listing and creation keep working.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPThemeStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ThemeStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	traceIDs := utils.NewUUIDGenerator()
	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(adapterCfg.APIKey).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(utils.TraceIDHeader, traceIDs.Generate())
			return nil
		})

	return &httpThemeStoreAdapter{client: client, themeID: adapterCfg.ThemeID, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListAssets implements [ThemeStoreAdapter]. It GETs
// /api/themes/{theme_id}/assets and decodes the record list.
func (h *httpThemeStoreAdapter) ListAssets(ctx context.Context) ([]models.RemoteAssetRecord, error) {
	req, err := h.themeRequest(ctx)
	if err != nil {
		return nil, err
	}

	var records []models.RemoteAssetRecord
	resp, err := req.SetResult(&records).Get(assetsPath)
	if err != nil {
		return nil, transportError("list assets", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	return records, nil
}

// GetAsset implements [ThemeStoreAdapter]. It GETs
// /api/themes/{theme_id}/asset?path=... and checks that the body carries
// exactly one of value and attachment.
func (h *httpThemeStoreAdapter) GetAsset(ctx context.Context, path string) (models.AssetRequest, error) {
	req, err := h.themeRequest(ctx)
	if err != nil {
		return models.AssetRequest{}, err
	}

	var asset models.AssetRequest
	resp, err := req.
		SetQueryParam("path", path).
		SetResult(&asset).
		Get(assetPath)
	if err != nil {
		return models.AssetRequest{}, transportError("get asset "+path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AssetRequest{}, fmt.Errorf("get asset %s: %w", path, err)
	}

	if _, err = asset.Payload(); err != nil {
		return models.AssetRequest{}, fmt.Errorf("get asset %s: %w", path, err)
	}
	if asset.Path == "" {
		asset.Path = path
	}

	return asset, nil
}

// PutAsset implements [ThemeStoreAdapter]. It PUTs the wire form of payload
// to /api/themes/{theme_id}/asset.
func (h *httpThemeStoreAdapter) PutAsset(ctx context.Context, path string, payload models.Payload) error {
	req, err := h.themeRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload.Wire(path)).
		Put(assetPath)
	if err != nil {
		return transportError("put asset "+path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("put asset %s: %w", path, err)
	}

	h.logger.Debug().Str("path", path).Str("kind", payload.Kind().String()).Msg("asset uploaded")
	return nil
}

// DeleteAsset implements [ThemeStoreAdapter]. It sends
// DELETE /api/themes/{theme_id}/asset?path=...
func (h *httpThemeStoreAdapter) DeleteAsset(ctx context.Context, path string) error {
	req, err := h.themeRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetQueryParam("path", path).Delete(assetPath)
	if err != nil {
		return transportError("delete asset "+path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete asset %s: %w", path, err)
	}

	h.logger.Debug().Str("path", path).Msg("asset deleted")
	return nil
}

// ListThemes implements [ThemeStoreAdapter]. It GETs /api/themes.
func (h *httpThemeStoreAdapter) ListThemes(ctx context.Context) ([]models.Theme, error) {
	var themes []models.Theme
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&themes).
		Get(themesPath)
	if err != nil {
		return nil, transportError("list themes", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	return themes, nil
}

// CreateTheme implements [ThemeStoreAdapter]. It POSTs the name to
// /api/themes and returns the created theme.
func (h *httpThemeStoreAdapter) CreateTheme(ctx context.Context, name string) (models.Theme, error) {
	var theme models.Theme
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateThemeRequest{Name: name}).
		SetResult(&theme).
		Post(themesPath)
	if err != nil {
		return models.Theme{}, transportError("create theme", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Theme{}, fmt.Errorf("create theme: %w", err)
	}

	return theme, nil
}

func (h *httpThemeStoreAdapter) themeRequest(ctx context.Context) (*resty.Request, error) {
	if h.themeID <= 0 {
		return nil, ErrMissingThemeID
	}

	return h.client.R().
		SetContext(ctx).
		SetPathParam("theme_id", strconv.FormatInt(h.themeID, 10)), nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
