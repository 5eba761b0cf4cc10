// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

import (
	"bytes"
	"mime"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/go-theme-sync/models"
)

// themeTypes resolves the extensions theme stores care about. It is consulted
// before the host extension table, which differs between machines.
var themeTypes = map[string]string{
	".liquid": "application/x-liquid",
	".json":   "application/json",
	".map":    "application/js",
	".css":    "text/css",
	".scss":   "text/x-scss",
	".js":     "application/javascript",
	".mjs":    "application/javascript",
	".html":   "text/html",
	".htm":    "text/html",
	".txt":    "text/plain",
	".xml":    "application/xml",
	".svg":    "image/svg+xml",
	".svgz":   "image/svg+xml",
	".png":    "image/png",
	".jpg":    "image/jpeg",
	".jpeg":   "image/jpeg",
	".gif":    "image/gif",
	".webp":   "image/webp",
	".ico":    "image/x-icon",
	".eot":    "application/vnd.ms-fontobject",
	".ttf":    "font/ttf",
	".otf":    "font/otf",
	".woff":   "font/woff",
	".woff2":  "font/woff2",
}

// textualTypes are media types outside of text/* that carry text.
var textualTypes = map[string]struct{}{
	"application/x-liquid":   {},
	"application/json":       {},
	"application/js":         {},
	"application/javascript": {},
	"application/xml":        {},
}

type contentClassifier struct{}

// NewContentClassifier returns the classifier used for every upload.
func NewContentClassifier() ContentClassifier {
	return &contentClassifier{}
}

func (c *contentClassifier) Classify(assetPath string, content []byte) (models.AssetKind, Verdict) {
	kind, verdict := c.classify(assetPath, content)

	// JSON string values carry neither NUL bytes nor invalid UTF-8
	if kind == models.Text && (bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)) {
		kind = models.Binary
	}

	return kind, verdict
}

func (c *contentClassifier) classify(assetPath string, content []byte) (models.AssetKind, Verdict) {
	if mediaType := mediaTypeByExtension(assetPath); mediaType != "" {
		if isTextual(mediaType) {
			return models.Text, Verdict{MediaType: mediaType}
		}
		return models.Binary, Verdict{MediaType: mediaType}
	}

	detected := mimetype.Detect(content)
	verdict := Verdict{MediaType: detected.String(), UnknownExtension: true}
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return models.Text, verdict
		}
	}

	return models.Binary, verdict
}

func mediaTypeByExtension(assetPath string) string {
	ext := strings.ToLower(path.Ext(assetPath))
	if ext == "" {
		return ""
	}

	if typ, ok := themeTypes[ext]; ok {
		return typ
	}

	typ := mime.TypeByExtension(ext)
	if typ == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(typ)
	if err != nil {
		return ""
	}

	return mediaType
}

func isTextual(mediaType string) bool {
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	_, ok := textualTypes[mediaType]
	return ok
}
