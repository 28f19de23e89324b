// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation.
package model

import (
	"sync"

	"github.com/jeranaias/hookchat-tui/internal/part"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the session's chat history and the in-flight flag.
//
// The history is append-only: messages are never mutated or removed for the
// lifetime of the session. Insertion order is display order.
//
// The store does not enforce mutual exclusion of submissions; the pending
// flag is advisory and the submit affordance is disabled at the call site
// while it is set. Concurrent appends are legal and ordered by arrival.
// A mutex guards the slice and flag because transport results resolve on
// other goroutines.
type Conversation struct {
	mu       sync.RWMutex
	messages []*Message
	pending  bool
}

// NewConversation creates an empty conversation in the idle state.
func NewConversation() *Conversation {
	return &Conversation{
		messages: make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// append adds a message to the history.
func (c *Conversation) append(msg *Message) *Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return msg
}

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(parts ...part.Part) *Message {
	return c.append(NewUserMessage(parts...))
}

// AddAssistantMessage creates and appends an assistant message from
// validated parts.
func (c *Conversation) AddAssistantMessage(parts []part.Part) *Message {
	return c.append(NewAssistantMessage(parts))
}

// AddErrorMessage creates and appends the assistant message for a failed
// submission.
func (c *Conversation) AddErrorMessage(err error) *Message {
	return c.append(NewErrorMessage(err))
}

// History returns a snapshot of the message history in display order.
func (c *Conversation) History() []*Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return c.Len() == 0
}

// =============================================================================
// PENDING STATE
// =============================================================================

// Begin marks a request as outstanding.
func (c *Conversation) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = true
}

// Finish clears the outstanding-request flag. Called on success and on
// failure alike; the conversation never stays pending after a resolution.
func (c *Conversation) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
}

// Pending reports whether a request is outstanding.
func (c *Conversation) Pending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pending
}
