package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-theme-sync/internal/catalog"
	"github.com/MKhiriev/go-theme-sync/internal/service"
	"github.com/MKhiriev/go-theme-sync/internal/store"
	"github.com/MKhiriev/go-theme-sync/models"
)

func strPtr(s string) *string { return &s }

func TestListAssets(t *testing.T) {
	f := newHandlerFixture(t)
	records := []models.RemoteAssetRecord{
		{Path: "assets/app.js", HasValue: true},
		{Path: "assets/logo.png", HasAttachment: true},
	}
	f.store.EXPECT().ListAssets(gomock.Any(), int64(42)).Return(records, nil)

	rec := f.doAuthorized(http.MethodGet, "/api/themes/42/assets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.RemoteAssetRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, records, got)
}

func TestListAssets_UnknownTheme(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().ListAssets(gomock.Any(), int64(7)).Return(nil, store.ErrThemeNotFound)

	rec := f.doAuthorized(http.MethodGet, "/api/themes/7/assets", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrThemeNotFound.Error(), decodeError(t, rec.Body.String()))
}

func TestThemeIDParameter(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			f := newHandlerFixture(t)

			rec := f.doAuthorized(http.MethodGet, "/api/themes/"+id+"/assets", nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetAsset(t *testing.T) {
	f := newHandlerFixture(t)
	asset := models.AssetRequest{Path: "templates/index.liquid", Value: strPtr("{{ content }}")}
	f.store.EXPECT().GetAsset(gomock.Any(), int64(1), "templates/index.liquid").Return(asset, nil)

	rec := f.doAuthorized(http.MethodGet, "/api/themes/1/asset?path=templates/index.liquid", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.AssetRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, asset, got)
}

func TestGetAsset_MissingPath(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.doAuthorized(http.MethodGet, "/api/themes/1/asset", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrMissingAssetPath.Error(), decodeError(t, rec.Body.String()))
}

func TestPutAsset(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name: "text value",
			body: `{"path":"assets/a.css","value":"a{}"}`,
			setup: func(f *handlerFixture) {
				f.store.EXPECT().
					PutAsset(gomock.Any(), int64(1), models.AssetRequest{Path: "assets/a.css", Value: strPtr("a{}")}).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "attachment",
			body: `{"path":"assets/a.png","attachment":"AAEC"}`,
			setup: func(f *handlerFixture) {
				f.store.EXPECT().
					PutAsset(gomock.Any(), int64(1), models.AssetRequest{Path: "assets/a.png", Attachment: strPtr("AAEC")}).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "broken json",
			body:       `{"path":`,
			setup:      func(*handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejected path",
			body: `{"path":"README.md","value":"x"}`,
			setup: func(f *handlerFixture) {
				f.store.EXPECT().PutAsset(gomock.Any(), int64(1), gomock.Any()).
					Return(errorsJoin(service.ErrValidation, catalog.ErrInvalidAssetPath))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			rec := f.doAuthorized(http.MethodPut, "/api/themes/1/asset", strings.NewReader(tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteAsset(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().DeleteAsset(gomock.Any(), int64(3), "assets/old.js").Return(nil)

	rec := f.doAuthorized(http.MethodDelete, "/api/themes/3/asset?path=assets/old.js", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteAsset_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	f.store.EXPECT().DeleteAsset(gomock.Any(), int64(3), "assets/gone.js").Return(store.ErrAssetNotFound)

	rec := f.doAuthorized(http.MethodDelete, "/api/themes/3/asset?path=assets/gone.js", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
