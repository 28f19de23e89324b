// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/hookchat-tui/internal/part"
	"github.com/jeranaias/hookchat-tui/internal/util"
	"github.com/jeranaias/hookchat-tui/internal/webhook"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender represents the originator of a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "you"
	case SenderAssistant:
		return "assistant"
	default:
		return string(s)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in the conversation. Messages are
// immutable once created; the conversation only ever appends them.
type Message struct {
	ID        string      `json:"id"`
	Sender    Sender      `json:"sender"`
	Parts     []part.Part `json:"parts"`
	Timestamp time.Time   `json:"timestamp"`

	// IsError marks an assistant message carrying a failure notice
	// instead of webhook reply parts.
	IsError bool `json:"is_error,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(sender Sender, parts []part.Part) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Parts:     parts,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message from its parts.
func NewUserMessage(parts ...part.Part) *Message {
	return NewMessage(SenderUser, parts)
}

// NewAssistantMessage creates a new assistant message from validated parts.
func NewAssistantMessage(parts []part.Part) *Message {
	return NewMessage(SenderAssistant, parts)
}

// NewErrorMessage creates the assistant message shown when a submission
// fails: a single text part carrying the fixed user-facing sentence for the
// error kind.
func NewErrorMessage(err error) *Message {
	m := NewMessage(SenderAssistant, []part.Part{part.Text(webhook.UserMessage(err))})
	m.IsError = true
	return m
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// PlainText returns the concatenated text content of the message's text
// parts, for previews and logging.
func (m *Message) PlainText() string {
	var out string
	for _, p := range m.Parts {
		if p.Type != part.KindText {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p.Content
	}
	return out
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.PlainText(), maxLen)
}

// IsEmpty returns true if the message has no parts.
func (m *Message) IsEmpty() bool {
	return len(m.Parts) == 0
}
