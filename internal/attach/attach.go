// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package attach handles image attachments: encoding file content into the
// transport-safe base64 form and managing the transient pending attachment
// selected in the composer.
package attach

import (
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// =============================================================================
// ERROR TYPE
// =============================================================================

// EncodingError indicates the attachment could not be read. The caller must
// abandon the send rather than transmit a partial payload.
type EncodingError struct {
	Path  string
	Cause error
}

func (e *EncodingError) Error() string {
	return "failed to encode attachment " + e.Path + ": " + e.Cause.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// =============================================================================
// ENCODING
// =============================================================================

// Encode reads the file's full binary content and returns it as plain
// base64, with no data-URL header, ready to embed as a string field.
func Encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &EncodingError{Path: path, Cause: err}
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// StripDataURL removes a data-URL header (e.g. "data:image/png;base64,")
// from an encoded payload, leaving the bare base64 string. Payloads without
// a header pass through unchanged.
func StripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, "base64,"); i >= 0 {
		return s[i+len("base64,"):]
	}
	return s
}

// =============================================================================
// PENDING ATTACHMENT
// =============================================================================

// Pending is the attachment currently selected in the composer. It owns a
// preview copy in a temp file whose backing store must be released exactly
// once: on explicit removal or on submission. Double release is a no-op.
type Pending struct {
	Path string

	mu       sync.Mutex
	preview  string
	released bool
}

// NewPending selects a file as the pending attachment and materializes its
// preview copy.
func NewPending(path string) (*Pending, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, &EncodingError{Path: path, Cause: err}
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "hookchat-preview-*"+filepath.Ext(path))
	if err != nil {
		return nil, &EncodingError{Path: path, Cause: err}
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, &EncodingError{Path: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, &EncodingError{Path: path, Cause: err}
	}

	return &Pending{Path: path, preview: tmp.Name()}, nil
}

// Preview returns the path of the preview copy, or "" after release.
func (p *Pending) Preview() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return ""
	}
	return p.preview
}

// Release frees the preview's backing store. Safe to call more than once.
func (p *Pending) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return
	}
	p.released = true
	os.Remove(p.preview)
	p.preview = ""
}
