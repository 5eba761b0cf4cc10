// Package classifier decides whether a theme asset is transmitted as text or
// as a base64 encoded attachment.
package classifier

import "github.com/MKhiriev/go-theme-sync/models"

// ContentClassifier decides the payload kind of a local file.
type ContentClassifier interface {
	// Classify returns the kind for the file at path with the given content.
	// The result depends only on the arguments: the same path and bytes
	// always produce the same kind and verdict.
	//
	// Content containing a NUL byte is always Binary. Otherwise the
	// extension decides; when it is unknown the content is sniffed and the
	// verdict reports UnknownExtension so the caller can warn about it.
	Classify(path string, content []byte) (models.AssetKind, Verdict)
}

// Verdict carries the diagnostics of a classification.
type Verdict struct {
	// MediaType is the resolved or sniffed media type, without parameters.
	MediaType string

	// UnknownExtension is set when the extension did not resolve and the
	// kind was inferred from the content.
	UnknownExtension bool
}
