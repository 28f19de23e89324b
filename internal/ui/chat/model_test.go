// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hookchat-tui/internal/model"
	"github.com/jeranaias/hookchat-tui/internal/part"
	"github.com/jeranaias/hookchat-tui/internal/webhook"
)

func awaitingModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m.input.SetValue("question")
	updated, _ := m.submitInput()
	return updated.(Model)
}

func TestHandleSendResult_Success(t *testing.T) {
	m := awaitingModel(t)

	updated, _ := m.Update(SendResultMsg{
		Parts: []part.Part{part.Text("the answer")},
	})
	nm := updated.(Model)

	if nm.GetState() != StateReady {
		t.Error("state should return to ready")
	}
	if nm.GetConversation().Pending() {
		t.Error("conversation should no longer be pending")
	}

	last := nm.GetConversation().LastMessage()
	if last == nil || last.Sender != model.SenderAssistant {
		t.Fatal("assistant message should be appended")
	}
	if last.PlainText() != "the answer" {
		t.Errorf("assistant text = %q", last.PlainText())
	}
}

func TestHandleSendResult_ErrorAppendsFixedSentence(t *testing.T) {
	m := awaitingModel(t)

	updated, _ := m.Update(SendResultMsg{
		Err: &webhook.ClientError{Type: webhook.ErrTypeEmptyResponse},
	})
	nm := updated.(Model)

	if nm.GetState() != StateReady {
		t.Error("state should return to ready after a failure")
	}
	if nm.GetConversation().Pending() {
		t.Error("conversation should no longer be pending after a failure")
	}

	last := nm.GetConversation().LastMessage()
	if last == nil || last.Sender != model.SenderAssistant {
		t.Fatal("error should be appended as an assistant message")
	}
	if !strings.Contains(last.PlainText(), "empty response") {
		t.Errorf("error text = %q, want empty-response sentence", last.PlainText())
	}
	// User message from the submission is still in the transcript
	if nm.GetConversation().Len() != 2 {
		t.Errorf("conversation length = %d, want 2", nm.GetConversation().Len())
	}
}

func TestHandleSendResult_ErrorDetailLoggedNotShown(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	m := awaitingModel(t)
	updated, _ := m.Update(SendResultMsg{
		Err: &webhook.ClientError{
			Type:    webhook.ErrTypeMalformedJSON,
			Message: "parsing response body",
			Cause:   errors.New("invalid character 'n' looking for beginning of value"),
		},
	})
	nm := updated.(Model)

	// The transcript carries only the fixed sentence
	shown := nm.GetConversation().LastMessage().PlainText()
	if strings.Contains(shown, "invalid character") {
		t.Errorf("transcript text = %q, detail must not be shown", shown)
	}

	logged := buf.String()
	if !strings.Contains(logged, "webhook request failed") {
		t.Errorf("log = %q, want the failure recorded", logged)
	}
	if !strings.Contains(logged, "invalid character") {
		t.Errorf("log = %q, want the underlying detail", logged)
	}
}

func TestHandleResize_SizesViewportAndInput(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	nm := updated.(Model)

	if nm.viewport.Width != 120 {
		t.Errorf("viewport width = %d, want 120", nm.viewport.Width)
	}
	if nm.viewport.Height >= 40 || nm.viewport.Height < 1 {
		t.Errorf("viewport height = %d, want fixed rows reserved", nm.viewport.Height)
	}
	if nm.input.Width != 120-8 {
		t.Errorf("input width = %d, want %d", nm.input.Width, 120-8)
	}
}

func TestView_ShowsTranscriptAndStatus(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	m.input.SetValue("hello webhook")
	updated, _ = m.submitInput()
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "hookchat") {
		t.Error("view should include the header title")
	}
	if !strings.Contains(out, "hello webhook") {
		t.Error("view should include the submitted message")
	}
	if !strings.Contains(out, "sending") {
		t.Error("view should show the sending status while awaiting")
	}
}

func TestView_BeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	if out := m.View(); out != "Loading..." {
		t.Errorf("zero-size view = %q", out)
	}
}
