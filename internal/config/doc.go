// Package config provides configuration loading, merging, and validation
// facilities for the themesync CLI and the themestore emulator.
//
// Client configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. The YAML file in the working directory (config.yml)
//  2. Environment variables prefixed with THEMESYNC_
//  3. Command-line overrides
//
// The main entry points are [GetClientConfig] for the CLI and
// [GetServerConfig] for the emulator. Both return values that must be
// treated as read-only after construction.
package config
