// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ChangeKind is the kind of filesystem change reported by the watcher.
type ChangeKind int

const (
	// Created means a new file appeared.
	Created ChangeKind = iota + 1
	// Updated means the content of an existing file changed.
	Updated
	// Deleted means the file is gone.
	Deleted
)

// String returns the lower-case name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// ChangeEvent is a single change of a file below the working directory.
// Path is absolute when produced by the watcher and is normalised to a
// working-directory relative path by the consumer.
type ChangeEvent struct {
	Path string
	Kind ChangeKind
}
