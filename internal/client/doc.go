// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the themesync command line.
//
// It parses commands and flags with cobra, loads the working directory
// configuration, and wires the theme store adapter, the sync engine and the
// terminal printer for the lifetime of a single command.
package client
