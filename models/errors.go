// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrEmptyAssetContent is returned when an asset body has neither a value
	// nor an attachment.
	ErrEmptyAssetContent = errors.New("asset has neither value nor attachment")

	// ErrAmbiguousAssetContent is returned when an asset body has both a value
	// and an attachment.
	ErrAmbiguousAssetContent = errors.New("asset has both value and attachment")
)
