package service

import "errors"

// Client side.
var (
	// ErrReplaceNotConfirmed is returned by Replace when the caller did not
	// confirm the destructive operation.
	ErrReplaceNotConfirmed = errors.New("replace was not confirmed")

	// ErrUnknownChangeKind is returned by Watch for an event kind the
	// watcher must never produce. It ends the watch loop.
	ErrUnknownChangeKind = errors.New("unknown change kind")

	// ErrWatcherFailed wraps an error delivered by the change watcher.
	ErrWatcherFailed = errors.New("change watcher failed")

	ErrEmptyThemeName = errors.New("theme name must not be empty")
)

// Theme store emulator.
var (
	// ErrValidation wraps every input rejected by the validation layer.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAPIKey is returned when the presented api key does not match.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrVersionIsNotSpecified is returned when the binary carries no
	// build version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
