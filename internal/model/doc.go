// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation.
//
// This package defines the core domain types used throughout the application
// for representing the chat transcript and the in-flight request state.
//
// # Key Types
//
//   - Conversation: Append-only message log plus the pending flag
//   - Message: Immutable message with sender, parts, and timestamp
//   - Sender: Message sender enumeration (user, assistant)
//
// # Usage
//
// Create a conversation and append messages:
//
//	conv := model.NewConversation()
//	conv.AddUserMessage(part.Text("Hello!"))
//	conv.Begin()
//	// ... transport call resolves ...
//	conv.AddAssistantMessage(parts)
//	conv.Finish()
package model
