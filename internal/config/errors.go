package config

import "errors"

// Configuration errors. Every one of them is fatal for the commands that need
// a configured theme: they abort before any asset operation is attempted.
var (
	// ErrConfigNotFound indicates that config.yml does not exist.
	ErrConfigNotFound = errors.New("config file does not exist")
	// ErrConfigEmpty indicates that no source provided any setting.
	ErrConfigEmpty = errors.New("config.yml does not exist or is empty")
	// ErrInvalidConfigFile indicates that config.yml is not valid YAML.
	ErrInvalidConfigFile = errors.New("config file is malformed")
	// ErrMissingCredentials indicates that api_key or theme_id is missing.
	ErrMissingCredentials = errors.New("config.yml must include api_key and theme_id")
	// ErrInvalidPattern indicates a whitelist or ignore entry that is not a
	// valid regular expression.
	ErrInvalidPattern = errors.New("invalid path pattern")
	// ErrInvalidAPIURL indicates an api_url that cannot be used as a base URL.
	ErrInvalidAPIURL = errors.New("invalid api_url")
	// ErrMissingSite indicates that no site URL is configured.
	ErrMissingSite = errors.New("config.yml must include site to build preview links")
	// ErrConfigExists is returned by [Save] when it would overwrite a file.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidServerConfigs indicates an unusable emulator configuration
	// (missing listen address, database DSN or api key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
