// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains all rendering logic for the chat interface: the main
// view, the header, the input area with its attachment badge, and the
// status bar.
package chat

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat renders the complete chat view.
// Layout: header (1 line) + messages (viewport) + input (3 lines) + status (1 line)
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	input := m.renderInput()
	status := m.renderStatusBar()

	headerHeight := lipgloss.Height(header)
	inputHeight := lipgloss.Height(input)
	statusHeight := lipgloss.Height(status)

	availableHeight := m.height - headerHeight - inputHeight - statusHeight
	if availableHeight < 1 {
		availableHeight = 1
	}

	messages := m.viewport.View()

	// Force the viewport region to the computed height so the fixed rows
	// never get pushed off screen.
	if lipgloss.Height(messages) != availableHeight {
		messages = lipgloss.NewStyle().
			Height(availableHeight).
			MaxHeight(availableHeight).
			Width(m.width).
			Render(messages)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		messages,
		input,
		status,
	)
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Purple).
		Render("hookchat")

	endpoint := ""
	if m.client != nil {
		endpoint = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(" | " + m.client.Endpoint())
	}

	headerStyle := lipgloss.NewStyle().
		Width(width).
		Background(styles.SurfaceDim).
		Padding(0, 1)

	return headerStyle.Render(title + endpoint)
}

// =============================================================================
// INPUT AREA
// =============================================================================

func (m Model) renderInput() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	borderColor := styles.Cyan
	if m.state == StateAwaiting {
		borderColor = styles.Overlay
	}

	separator := lipgloss.NewStyle().
		Foreground(borderColor).
		Render(strings.Repeat("─", width))

	var inputView string
	if m.state == StateAwaiting {
		inputView = m.spinner.View() + " " + m.theme.ThinkingText.Render(m.renderThinking())
	} else {
		inputView = m.input.View()
	}

	inputLine := lipgloss.NewStyle().
		Width(width - 4).
		Padding(0, 1).
		Render(inputView)

	hintLine := m.renderInputHint(width)

	return lipgloss.JoinVertical(lipgloss.Left, separator, inputLine, hintLine)
}

// renderThinking renders the waiting indicator with elapsed seconds.
func (m Model) renderThinking() string {
	elapsed := time.Since(m.awaitingStart).Round(time.Second)
	return "waiting for reply... " + elapsed.String()
}

// renderInputHint renders the attachment badge or the key hint line.
func (m Model) renderInputHint(width int) string {
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Padding(0, 1)

	if m.attachment != nil {
		badge := m.theme.AttachmentBadge.Render(
			"[attached] " + filepath.Base(m.attachment.Path))
		detachHint := hintStyle.Render("/detach to remove")
		return badge + " " + detachHint
	}

	return hintStyle.Render("Enter to send | /attach <path> | C-q to quit")
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var left string
	switch {
	case m.statusMsg != "":
		left = m.statusMsg
	case m.state == StateAwaiting:
		left = "sending"
	default:
		left = "ready"
	}

	barStyle := lipgloss.NewStyle().
		Width(width).
		Foreground(styles.TextSecondary).
		Background(styles.SurfaceDim).
		Padding(0, 1)

	return barStyle.Render(left)
}
