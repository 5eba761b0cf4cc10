// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages printed by the themesync
// commands.
//
// Keeping them in one place keeps the wording consistent between commands
// and lets tests assert on the exact text.
package app

const (
	// MsgConfigurationOK is printed by 'check' when the theme store accepted
	// the configured credentials.
	MsgConfigurationOK = "Configuration [OK]"

	// MsgConfigurationFail is printed by 'check' and by every command that
	// could not load a usable configuration.
	MsgConfigurationFail = "Configuration [FAIL]"

	// MsgConfigureFailed is printed by 'configure' when the theme list
	// cannot be fetched with the given api key.
	MsgConfigureFailed = "Configuration Failed – Your API Key is Likely Incorrect"

	// MsgReplaceAborted is printed when the replace confirmation is declined.
	MsgReplaceAborted = "Replace aborted, nothing was changed."

	// MsgWatching is printed once the change watcher is running.
	MsgWatching = "Watching for changes, press Ctrl+C to stop."

	// MsgWatchStopped is printed after the watch loop returned.
	MsgWatchStopped = "Stopped watching."

	// MsgCopiedToClipboard is printed by 'preview --copy'.
	MsgCopiedToClipboard = "Copied to clipboard."

	// MsgConfigExistsHint follows an attempt to overwrite config.yml.
	MsgConfigExistsHint = "config.yml already exists, use --force to overwrite it"
)
