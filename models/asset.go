// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// AssetKind defines how the bytes of an asset travel to the theme store.
type AssetKind int

const (
	// Text assets are sent verbatim in the "value" field.
	Text AssetKind = iota + 1

	// Binary assets are base64 encoded into the "attachment" field.
	Binary
)

// String returns the lower-case name of the kind.
func (k AssetKind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Payload is the content of a single asset.
//
// It is a tagged variant: a Payload is either Text or Binary and is only
// constructed through [TextPayload] or [BinaryPayload], so a request built
// from it always carries exactly one of value/attachment.
type Payload struct {
	kind AssetKind
	data []byte
}

// TextPayload wraps data as a textual payload.
func TextPayload(data []byte) Payload {
	return Payload{kind: Text, data: data}
}

// BinaryPayload wraps data as an opaque binary payload.
func BinaryPayload(data []byte) Payload {
	return Payload{kind: Binary, data: data}
}

// Kind returns the variant tag of the payload.
func (p Payload) Kind() AssetKind {
	return p.kind
}

// Bytes returns the raw content of the payload.
func (p Payload) Bytes() []byte {
	return p.data
}

// Wire converts the payload into the request body understood by the theme
// store for the asset located at path.
func (p Payload) Wire(path string) AssetRequest {
	req := AssetRequest{Path: path}
	switch p.kind {
	case Text:
		value := string(p.data)
		req.Value = &value
	default:
		attachment := base64.StdEncoding.EncodeToString(p.data)
		req.Attachment = &attachment
	}

	return req
}

// Asset is a single theme file tracked by its working-directory relative
// path. Two assets are the same asset when their paths are equal.
type Asset struct {
	// Path is relative to the working directory and uses forward slashes.
	Path string

	// Payload holds the classified content of the file.
	Payload Payload
}

// AssetRequest is the JSON body of PUT /api/themes/{id}/asset and the
// response of GET /api/themes/{id}/asset.
// Exactly one of Value and Attachment is set.
type AssetRequest struct {
	Path       string  `json:"path"`
	Value      *string `json:"value,omitempty"`
	Attachment *string `json:"attachment,omitempty"`
}

// Payload decodes the wire representation back into a [Payload].
//
// Text values are normalised by removing carriage returns; attachments are
// base64 decoded. An error is returned when neither or both fields are set,
// or when the attachment is not valid base64.
func (r AssetRequest) Payload() (Payload, error) {
	switch {
	case r.Value != nil && r.Attachment != nil:
		return Payload{}, ErrAmbiguousAssetContent
	case r.Value != nil:
		return TextPayload([]byte(strings.ReplaceAll(*r.Value, "\r", ""))), nil
	case r.Attachment != nil:
		data, err := base64.StdEncoding.DecodeString(*r.Attachment)
		if err != nil {
			return Payload{}, fmt.Errorf("decode attachment of %s: %w", r.Path, err)
		}
		return BinaryPayload(data), nil
	default:
		return Payload{}, ErrEmptyAssetContent
	}
}

// RemoteAssetRecord is one entry of the remote asset listing. It is only used
// to compute deletions during a full replace and to drive downloads.
type RemoteAssetRecord struct {
	Path          string `json:"path"`
	HasValue      bool   `json:"has_value"`
	HasAttachment bool   `json:"has_attachment"`
}

// Theme is a theme owned by the account the API key belongs to.
type Theme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateThemeRequest is the JSON body of POST /api/themes.
type CreateThemeRequest struct {
	Name string `json:"name"`
}
