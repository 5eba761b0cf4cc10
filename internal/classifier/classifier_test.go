// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-theme-sync/models"
)

func TestClassify_ByExtension(t *testing.T) {
	c := NewContentClassifier()

	tests := []struct {
		name string
		path string
		want models.AssetKind
	}{
		{name: "liquid template", path: "layouts/theme.liquid", want: models.Text},
		{name: "stylesheet", path: "assets/style.css", want: models.Text},
		{name: "json settings", path: "config/settings_data.json", want: models.Text},
		{name: "source map", path: "assets/app.js.map", want: models.Text},
		{name: "html", path: "templates/page.html", want: models.Text},
		{name: "upper case extension", path: "assets/STYLE.CSS", want: models.Text},
		{name: "png", path: "assets/logo.png", want: models.Binary},
		{name: "svg", path: "assets/icon.svg", want: models.Binary},
		{name: "compressed svg", path: "assets/icon.svgz", want: models.Binary},
		{name: "embedded opentype", path: "assets/font.eot", want: models.Binary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, verdict := c.Classify(tt.path, []byte("plain content"))
			assert.Equal(t, tt.want, kind)
			assert.False(t, verdict.UnknownExtension)
			assert.NotEmpty(t, verdict.MediaType)
		})
	}
}

func TestClassify_NULByteIsAlwaysBinary(t *testing.T) {
	c := NewContentClassifier()

	for _, p := range []string{"assets/style.css", "snippets/a.liquid", "assets/blob.unknownext"} {
		kind, _ := c.Classify(p, []byte("body {\x00}"))
		assert.Equal(t, models.Binary, kind, p)
	}
}

func TestClassify_UnknownExtensionSniffsText(t *testing.T) {
	c := NewContentClassifier()

	kind, verdict := c.Classify("assets/notes.themesyncunknown", []byte("just some words\nand another line\n"))

	assert.Equal(t, models.Text, kind)
	assert.True(t, verdict.UnknownExtension)
	assert.Contains(t, verdict.MediaType, "text/plain")
}

func TestClassify_UnknownExtensionSniffsBinary(t *testing.T) {
	c := NewContentClassifier()
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

	kind, _ := c.Classify("assets/picture.themesyncunknown", png)
	assert.Equal(t, models.Binary, kind)

	gif := []byte("GIF89a\x01\x00\x01\x00\x80\xff\xff")
	kind, verdict := c.Classify("assets/anim.themesyncunknown", gif)
	assert.Equal(t, models.Binary, kind)
	assert.True(t, verdict.UnknownExtension)
	assert.Equal(t, "image/gif", verdict.MediaType)
}

func TestClassify_NoExtension(t *testing.T) {
	c := NewContentClassifier()

	kind, verdict := c.Classify("snippets/README", []byte("hello"))
	assert.Equal(t, models.Text, kind)
	assert.True(t, verdict.UnknownExtension)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewContentClassifier()
	inputs := map[string][]byte{
		"assets/a.css":            []byte("a{}"),
		"assets/b.png":            {0x89, 'P', 'N', 'G'},
		"assets/c.themesyncunkwn": []byte("text"),
		"assets/d.themesyncunkwn": {0xff, 0xd8, 0xff, 0xe0},
	}

	for p, content := range inputs {
		firstKind, firstVerdict := c.Classify(p, content)
		for range 5 {
			kind, verdict := c.Classify(p, content)
			assert.Equal(t, firstKind, kind, p)
			assert.Equal(t, firstVerdict, verdict, p)
		}
	}

	// a second instance resolves the same table
	other := NewContentClassifier()
	kind, _ := other.Classify("assets/a.css", []byte("a{}"))
	assert.Equal(t, models.Text, kind)
}

func TestClassify_InvalidUTF8IsBinary(t *testing.T) {
	c := NewContentClassifier()

	tests := []struct {
		name    string
		path    string
		content []byte
	}{
		{name: "latin-1 stylesheet", path: "assets/style.css", content: []byte("/* caf\xe9 */ body{}")},
		{name: "latin-1 template", path: "templates/index.liquid", content: []byte("Cr\xe8me br\xfbl\xe9e")},
		{name: "truncated utf-8 sequence", path: "config/settings.json", content: []byte("{\"a\":\"\xe2\x82\"}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, verdict := c.Classify(tt.path, tt.content)
			assert.Equal(t, models.Binary, kind)
			assert.False(t, verdict.UnknownExtension)
		})
	}

	kind, _ := c.Classify("assets/style.css", []byte("/* café */ body{}"))
	assert.Equal(t, models.Text, kind)
}

func TestClassify_ThemeExtensionsIgnoreHostTable(t *testing.T) {
	c := NewContentClassifier()

	tests := []struct {
		path      string
		mediaType string
		want      models.AssetKind
	}{
		{path: "assets/app.js", mediaType: "application/javascript", want: models.Text},
		{path: "assets/app.css", mediaType: "text/css", want: models.Text},
		{path: "assets/font.woff2", mediaType: "font/woff2", want: models.Binary},
		{path: "assets/font.ttf", mediaType: "font/ttf", want: models.Binary},
		{path: "assets/photo.JPG", mediaType: "image/jpeg", want: models.Binary},
		{path: "layouts/theme.liquid", mediaType: "application/x-liquid", want: models.Text},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, verdict := c.Classify(tt.path, []byte("content"))
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.mediaType, verdict.MediaType)
		})
	}
}
