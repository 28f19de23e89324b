// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hookchat-tui/internal/attach"
	"github.com/jeranaias/hookchat-tui/internal/config"
	"github.com/jeranaias/hookchat-tui/internal/model"
	"github.com/jeranaias/hookchat-tui/internal/ui/components"
	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
	"github.com/jeranaias/hookchat-tui/internal/webhook"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady    State = iota // Ready for input
	StateAwaiting              // Waiting on the webhook reply
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	conversation *model.Conversation

	// Webhook client
	client *webhook.Client

	// Staged attachment for the next submission, nil when none
	attachment *attach.Pending

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Display options
	showTimestamps bool

	// Transient status line text
	statusMsg string

	// When the outstanding request started, for the thinking indicator
	awaitingStart time.Time
}

// New creates a new chat model.
func New(theme *styles.Theme) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	// ASCII-compatible spinner animation
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	showTimestamps := true
	if cfg := config.Global(); cfg != nil {
		showTimestamps = cfg.UI.ShowTimestamps
	}

	return Model{
		state:          StateReady,
		theme:          theme,
		conversation:   model.NewConversation(),
		viewport:       vp,
		input:          ti,
		spinner:        sp,
		keyMap:         DefaultKeyMap(),
		showTimestamps: showTimestamps,
	}
}

// NewWithClient creates a new chat model with a webhook client.
func NewWithClient(theme *styles.Theme, client *webhook.Client) Model {
	m := New(theme)
	m.client = client
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SendResultMsg:
		return m.handleSendResult(msg)

	case AttachmentStagedMsg:
		m.statusMsg = "attached " + msg.Path
		return m, nil

	case AttachmentClearedMsg:
		m.statusMsg = "attachment removed"
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Text
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Forward everything else to the input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat interface.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// EVENT HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Layout: header + viewport (dynamic) + input area + status bar.
	// Conservative estimates (slightly larger than actual) prevent overflow.
	const (
		headerHeight    = 2
		inputAreaHeight = 4
		statusBarHeight = 2
	)

	viewportHeight := m.height - headerHeight - inputAreaHeight - statusBarHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := m.width
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight

	const promptLen = 2 // "> "
	inputWidth := m.width - 6 - promptLen
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	if m.theme != nil {
		m.theme.SetSize(m.width, m.height)
	}

	m.updateViewport()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.releaseAttachment()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSendResult resolves an outstanding webhook request. Success appends
// the reply parts as an assistant message; failure appends the fixed
// user-facing sentence for the error kind. Either way the conversation
// leaves the pending state and input is accepted again.
func (m Model) handleSendResult(msg SendResultMsg) (tea.Model, tea.Cmd) {
	m.conversation.Finish()
	m.state = StateReady

	if msg.Err != nil {
		// Detail goes to the log; the transcript gets the fixed sentence.
		log.Printf("webhook request failed: %v", msg.Err)
		m.conversation.AddErrorMessage(msg.Err)
	} else {
		m.conversation.AddAssistantMessage(msg.Parts)
	}

	m.updateViewport()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// VIEWPORT
// =============================================================================

func (m *Model) updateViewport() {
	list := components.NewMessageList(m.theme)
	list.SetWidth(m.viewport.Width)
	list.ShowTimestamps = m.showTimestamps
	list.SetMessages(m.conversation.History())
	m.viewport.SetContent(list.View())
}

// releaseAttachment discards the staged attachment, if any.
func (m *Model) releaseAttachment() {
	if m.attachment != nil {
		m.attachment.Release()
		m.attachment = nil
	}
}

// =============================================================================
// GETTERS AND SETTERS
// =============================================================================

// SetClient sets the webhook client.
func (m *Model) SetClient(client *webhook.Client) {
	m.client = client
}

// GetConversation returns the current conversation.
func (m *Model) GetConversation() *model.Conversation {
	return m.conversation
}

// GetState returns the current state.
func (m *Model) GetState() State {
	return m.state
}

// Attachment returns the staged attachment, or nil when none is staged.
func (m *Model) Attachment() *attach.Pending {
	return m.attachment
}
