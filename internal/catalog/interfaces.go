// Package catalog decides which files of the working directory are theme
// assets and enumerates them.
package catalog

// AssetCatalog answers membership questions about working-directory
// relative paths. It is immutable after construction and safe for
// concurrent use.
type AssetCatalog interface {
	// IsMember reports whether path matches at least one whitelist pattern
	// and no ignore pattern. It does not touch the filesystem.
	IsMember(path string) bool

	// IsIgnored reports whether path matches an ignore pattern.
	IsIgnored(path string) bool

	// LocalAssets enumerates every regular file below the working directory
	// and keeps the members. The result does not depend on traversal order.
	LocalAssets() (Set, error)

	// Exists reports whether path names a regular file in the working
	// directory.
	Exists(path string) bool

	// Normalize converts an absolute filesystem path into a relative
	// forward-slash path. It returns false for paths outside the working
	// directory and for the working directory itself.
	Normalize(absPath string) (string, bool)
}
