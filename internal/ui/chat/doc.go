// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The chat view is a Bubble Tea model that owns the conversation transcript,
// the input line, and the webhook round trip. A submission appends the user
// message, posts it to the configured webhook, and resolves to either the
// assistant's reply parts or a fixed user-facing error sentence. While a
// request is outstanding the input is gated and a spinner is shown.
//
// Attachments are staged with the /attach command and travel with the next
// submission as a base64 image field. A staged attachment is consumed by the
// submit attempt whether or not the request succeeds.
package chat
