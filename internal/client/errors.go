package client

import "errors"

var (
	// ErrConfiguration wraps every failure to load a usable config.yml.
	ErrConfiguration = errors.New("configuration failed")
	// ErrConfigureFailed is returned when configure cannot reach the theme
	// store with the given api key.
	ErrConfigureFailed = errors.New("configure failed")
	// ErrInvalidThemeIDArg is returned for a THEME_ID argument that is not a
	// positive integer.
	ErrInvalidThemeIDArg = errors.New("theme id must be a positive integer")
)
