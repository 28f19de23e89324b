// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains input submission logic: gating, slash commands,
// attachment staging, and the handoff to the webhook command.
package chat

import (
	"errors"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hookchat-tui/internal/attach"
	"github.com/jeranaias/hookchat-tui/internal/export"
	"github.com/jeranaias/hookchat-tui/internal/part"
)

// =============================================================================
// SUBMISSION GATE
// =============================================================================

// Gate reports whether a submission with the given trimmed text and staged
// attachment may proceed. A submission needs at least one of the two; a
// whitespace-only message with nothing attached is a no-op.
func Gate(text string, att *attach.Pending) bool {
	return text != "" || att != nil
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput is the main entry point for input submission.
// It coordinates the pipeline: gate -> command check -> attachment encode ->
// conversation append -> webhook send.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())

	// Check for commands first
	if strings.HasPrefix(content, "/") {
		return m.handleCommand(content)
	}

	// One request at a time
	if m.state == StateAwaiting {
		return m, nil
	}

	if !Gate(content, m.attachment) {
		return m, nil
	}

	// The staged attachment is consumed by this attempt regardless of the
	// outcome. Take it off the model before anything can fail.
	att := m.attachment
	m.attachment = nil

	var image, previewURI string
	if att != nil {
		defer att.Release()

		encoded, err := attach.Encode(att.Path)
		if err != nil {
			// The submission is abandoned: nothing is appended and
			// nothing is sent.
			log.Printf("attachment encode failed: %v", err)
			m.input.Reset()
			m.statusMsg = "could not read attachment"
			return m, nil
		}
		image = attach.StripDataURL(encoded)
		previewURI = att.Preview()
	}

	m.input.Reset()
	m.statusMsg = ""

	m.conversation.AddUserMessage(userParts(content, previewURI)...)
	m.conversation.Begin()
	m.state = StateAwaiting
	m.awaitingStart = time.Now()

	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(SendCmd(m.client, content, image), m.spinner.Tick)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleCommand dispatches a slash command.
func (m Model) handleCommand(content string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(content)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "/attach":
		return m.cmdAttach(args)
	case "/detach":
		return m.cmdDetach()
	case "/export":
		return m.cmdExport(args)
	case "/quit":
		m.releaseAttachment()
		return m, tea.Quit
	default:
		m.statusMsg = "unknown command: " + cmd
		return m, nil
	}
}

// cmdAttach stages an image file for the next submission. Staging a new
// file replaces and releases the previous one.
func (m Model) cmdAttach(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.statusMsg = "usage: /attach <path>"
		return m, nil
	}
	path := strings.Join(args, " ")

	pending, err := attach.NewPending(path)
	if err != nil {
		var encErr *attach.EncodingError
		if errors.As(err, &encErr) {
			m.statusMsg = "cannot attach " + encErr.Path
		} else {
			m.statusMsg = "cannot attach " + path
		}
		return m, nil
	}

	m.releaseAttachment()
	m.attachment = pending
	m.input.Reset()

	return m, func() tea.Msg {
		return AttachmentStagedMsg{Path: path}
	}
}

// cmdExport writes the transcript to disk as Markdown, or JSON when asked.
func (m Model) cmdExport(args []string) (tea.Model, tea.Cmd) {
	if m.conversation.IsEmpty() {
		m.statusMsg = "nothing to export"
		return m, nil
	}

	format := "markdown"
	if len(args) > 0 {
		format = args[0]
	}

	var path string
	var err error
	switch format {
	case "markdown", "md":
		path, err = export.ExportMarkdown(m.conversation, nil)
	case "json":
		path, err = export.ExportJSON(m.conversation, nil)
	default:
		m.statusMsg = "usage: /export [markdown|json]"
		return m, nil
	}

	if err != nil {
		log.Printf("export failed: %v", err)
		m.statusMsg = "export failed"
		return m, nil
	}

	m.input.Reset()
	m.statusMsg = "exported to " + path
	return m, nil
}

// cmdDetach discards the staged attachment.
func (m Model) cmdDetach() (tea.Model, tea.Cmd) {
	if m.attachment == nil {
		m.statusMsg = "nothing attached"
		return m, nil
	}

	m.releaseAttachment()
	m.input.Reset()

	return m, func() tea.Msg {
		return AttachmentClearedMsg{}
	}
}

// userParts builds the transcript parts for a submission: the text, then
// the attachment preview when one travels with it.
func userParts(text string, previewURI string) []part.Part {
	var parts []part.Part
	if text != "" {
		parts = append(parts, part.Text(text))
	}
	if previewURI != "" {
		parts = append(parts, part.Image(previewURI))
	}
	return parts
}
