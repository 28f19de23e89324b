// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package part defines the typed message parts exchanged with the webhook
// and the codec that validates raw transport payloads into them.
package part

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// =============================================================================
// PART KINDS
// =============================================================================

// Kind identifies the variant of a message part.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindLink  Kind = "link"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// =============================================================================
// PART TYPE
// =============================================================================

// Part is one renderable unit of a message. Exactly one recognized kind per
// part; the codec never constructs a part with an unrecognized kind.
type Part struct {
	Type    Kind   `json:"type"`
	Content string `json:"content"`

	// Text is the display label. Only set for link parts.
	Text string `json:"text,omitempty"`
}

// Text creates a text part.
func Text(content string) Part {
	return Part{Type: KindText, Content: content}
}

// Image creates an image part. Content is a URL or data-URL-encoded image.
func Image(content string) Part {
	return Part{Type: KindImage, Content: content}
}

// Link creates a link part with a target URL and display label.
func Link(url, label string) Part {
	return Part{Type: KindLink, Content: url, Text: label}
}

// =============================================================================
// CODEC
// =============================================================================

// ErrNotArray indicates the payload is not a JSON array of parts.
var ErrNotArray = errors.New("payload is not an array")

// wirePart mirrors the transport schema. Pointer fields distinguish a
// missing field from an empty string.
type wirePart struct {
	Type    *string `json:"type"`
	Content *string `json:"content"`
	Text    *string `json:"text"`
}

// Decode validates a raw transport payload claiming to be a sequence of
// message parts. Any element failing validation invalidates the entire
// batch; a partially valid payload is never returned.
func Decode(raw json.RawMessage) ([]Part, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var wires []wirePart
	if err := json.Unmarshal(trimmed, &wires); err != nil {
		return nil, fmt.Errorf("invalid part array: %w", err)
	}

	parts := make([]Part, 0, len(wires))
	for i, w := range wires {
		p, err := w.validate()
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		parts = append(parts, p)
	}

	return parts, nil
}

// validate converts a wire element into a typed Part.
func (w wirePart) validate() (Part, error) {
	if w.Type == nil {
		return Part{}, errors.New("missing type field")
	}

	switch Kind(*w.Type) {
	case KindText:
		if w.Content == nil {
			return Part{}, errors.New("text part missing content")
		}
		return Text(*w.Content), nil

	case KindImage:
		if w.Content == nil {
			return Part{}, errors.New("image part missing content")
		}
		return Image(*w.Content), nil

	case KindLink:
		if w.Content == nil {
			return Part{}, errors.New("link part missing content")
		}
		if w.Text == nil {
			return Part{}, errors.New("link part missing text")
		}
		return Link(*w.Content, *w.Text), nil

	default:
		return Part{}, fmt.Errorf("unrecognized part type %q", *w.Type)
	}
}
