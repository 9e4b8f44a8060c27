// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/actiondoc

package actiondoc

import "errors"

var (
	// ErrReadActionFile is returned when action metadata file loading fails.
	ErrReadActionFile = errors.New("read action file")
	// ErrDecodeAction is returned when action metadata YAML decoding fails.
	ErrDecodeAction = errors.New("decode action")
	// ErrSchemaType is returned when action metadata value has unexpected shape.
	ErrSchemaType = errors.New("unexpected schema type")
	// ErrReadDocument is returned when target document loading fails.
	ErrReadDocument = errors.New("read document")
	// ErrWriteDocument is returned when target document writing fails.
	ErrWriteDocument = errors.New("write document")
	// ErrDocumentOutdated is returned by check mode when generated section differs from document.
	ErrDocumentOutdated = errors.New("document is out of date")
	// ErrMarkersNotFound is returned by check mode together with ErrDocumentOutdated
	// when document lacks start or end marker.
	ErrMarkersNotFound = errors.New("markers not found")
	// ErrUnknownUsageMode is returned when usage snippet mode is not supported.
	ErrUnknownUsageMode = errors.New("unknown usage mode")
	// ErrEncodeUsage is returned when usage snippet YAML encoding fails.
	ErrEncodeUsage = errors.New("encode usage yaml")
)
