// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Webhook: request resolution
//   - Attachments: staging and clearing
//   - UI State: status line updates
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/jeranaias/hookchat-tui/internal/part"
)

// =============================================================================
// WEBHOOK MESSAGES
// =============================================================================

// SendResultMsg resolves an outstanding webhook request. Exactly one of
// Parts or Err is meaningful: a nil Err carries the validated reply parts,
// a non-nil Err carries the failure to be shown as an assistant message.
type SendResultMsg struct {
	Parts []part.Part
	Err   error
}

// =============================================================================
// ATTACHMENT MESSAGES
// =============================================================================

// AttachmentStagedMsg signals that an image was staged for the next
// submission.
type AttachmentStagedMsg struct {
	Path string
}

// AttachmentClearedMsg signals that the staged image was discarded.
type AttachmentClearedMsg struct{}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// StatusMsg sets a transient status line message.
type StatusMsg struct {
	Text string
}
