// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hookchat-tui/internal/webhook"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// SendCmd creates a command that posts the submission to the webhook and
// resolves it as a SendResultMsg. The command runs on its own goroutine;
// the result re-enters the update loop in arrival order.
func SendCmd(client *webhook.Client, text, image string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return SendResultMsg{Err: &webhook.ClientError{
				Type:    webhook.ErrTypeNetwork,
				Message: "no webhook client configured",
			}}
		}

		// The client's HTTP timeout bounds the request.
		parts, err := client.Send(context.Background(), text, image)
		if err != nil {
			return SendResultMsg{Err: err}
		}
		return SendResultMsg{Parts: parts}
	}
}
