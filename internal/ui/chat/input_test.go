// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/hookchat-tui/internal/attach"
	"github.com/jeranaias/hookchat-tui/internal/config"
	"github.com/jeranaias/hookchat-tui/internal/model"
	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	config.SetGlobal(config.Default())
	return New(styles.NewTheme())
}

func stageFile(t *testing.T, m Model, content string) (Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	updated, _ := m.cmdAttach([]string{path})
	return updated.(Model), path
}

func TestGate(t *testing.T) {
	att := &attach.Pending{Path: "x.png"}

	tests := []struct {
		name string
		text string
		att  *attach.Pending
		want bool
	}{
		{"text only", "hello", nil, true},
		{"attachment only", "", att, true},
		{"both", "hello", att, true},
		{"neither", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gate(tt.text, tt.att); got != tt.want {
				t.Errorf("Gate(%q, %v) = %v, want %v", tt.text, tt.att, got, tt.want)
			}
		})
	}
}

func TestSubmitInput_EmptyIsNoOp(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	updated, cmd := m.submitInput()
	nm := updated.(Model)

	if cmd != nil {
		t.Error("whitespace-only submission should produce no command")
	}
	if nm.GetState() != StateReady {
		t.Error("state should remain ready")
	}
	if !nm.GetConversation().IsEmpty() {
		t.Error("nothing should be appended")
	}
}

func TestSubmitInput_TextAppendsAndSends(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello there")

	updated, cmd := m.submitInput()
	nm := updated.(Model)

	if cmd == nil {
		t.Fatal("submission should produce a send command")
	}
	if nm.GetState() != StateAwaiting {
		t.Error("state should be awaiting after submit")
	}
	if !nm.GetConversation().Pending() {
		t.Error("conversation should be pending after submit")
	}

	last := nm.GetConversation().LastMessage()
	if last == nil || last.Sender != model.SenderUser {
		t.Fatal("user message should be appended before the send resolves")
	}
	if last.PlainText() != "hello there" {
		t.Errorf("appended text = %q", last.PlainText())
	}
	if nm.input.Value() != "" {
		t.Error("input should be cleared on submit")
	}
}

func TestSubmitInput_GatedWhileAwaiting(t *testing.T) {
	m := newTestModel(t)
	m.state = StateAwaiting
	m.input.SetValue("second message")

	updated, cmd := m.submitInput()
	nm := updated.(Model)

	if cmd != nil {
		t.Error("submission while awaiting should produce no command")
	}
	if !nm.GetConversation().IsEmpty() {
		t.Error("nothing should be appended while awaiting")
	}
}

func TestCmdAttach_StagesFile(t *testing.T) {
	m := newTestModel(t)
	m, path := stageFile(t, m, "image-bytes")

	att := m.Attachment()
	if att == nil {
		t.Fatal("attachment should be staged")
	}
	if att.Path != path {
		t.Errorf("staged path = %q, want %q", att.Path, path)
	}
	if _, err := os.Stat(att.Preview()); err != nil {
		t.Errorf("preview file should exist while staged: %v", err)
	}
}

func TestCmdAttach_MissingFile(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.cmdAttach([]string{"/no/such/file.png"})
	nm := updated.(Model)

	if nm.Attachment() != nil {
		t.Error("missing file should not be staged")
	}
	if nm.statusMsg == "" {
		t.Error("failure should surface in the status line")
	}
}

func TestCmdAttach_ReplacesPrevious(t *testing.T) {
	m := newTestModel(t)
	m, _ = stageFile(t, m, "first")
	firstPreview := m.Attachment().Preview()

	m, _ = stageFile(t, m, "second")

	if _, err := os.Stat(firstPreview); !os.IsNotExist(err) {
		t.Error("replaced attachment's preview should be released")
	}
	if m.Attachment() == nil {
		t.Fatal("second attachment should be staged")
	}
}

func TestCmdDetach_ReleasesPreview(t *testing.T) {
	m := newTestModel(t)
	m, _ = stageFile(t, m, "image-bytes")
	preview := m.Attachment().Preview()

	updated, _ := m.cmdDetach()
	nm := updated.(Model)

	if nm.Attachment() != nil {
		t.Error("detach should clear the staged attachment")
	}
	if _, err := os.Stat(preview); !os.IsNotExist(err) {
		t.Error("detach should remove the preview file")
	}
}

func TestSubmitInput_AttachmentConsumed(t *testing.T) {
	m := newTestModel(t)
	m, _ = stageFile(t, m, "image-bytes")
	preview := m.Attachment().Preview()

	m.input.SetValue("look at this")
	updated, cmd := m.submitInput()
	nm := updated.(Model)

	if cmd == nil {
		t.Fatal("submission should produce a send command")
	}
	if nm.Attachment() != nil {
		t.Error("attachment should be consumed by the submit attempt")
	}
	if _, err := os.Stat(preview); !os.IsNotExist(err) {
		t.Error("preview should be released on submit")
	}

	last := nm.GetConversation().LastMessage()
	if last == nil || len(last.Parts) != 2 {
		t.Fatal("user message should carry text and image parts")
	}
}

func TestSubmitInput_EncodeFailureAbortsSilently(t *testing.T) {
	m := newTestModel(t)
	m, path := stageFile(t, m, "image-bytes")

	// The source vanishes between staging and submit.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove source: %v", err)
	}

	m.input.SetValue("look at this")
	updated, cmd := m.submitInput()
	nm := updated.(Model)

	if cmd != nil {
		t.Error("failed encode should not produce a send command")
	}
	if !nm.GetConversation().IsEmpty() {
		t.Error("failed encode should append nothing")
	}
	if nm.GetState() != StateReady {
		t.Error("failed encode should leave the model ready")
	}
	if nm.Attachment() != nil {
		t.Error("attachment should still be consumed by the attempt")
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleCommand("/frobnicate")
	nm := updated.(Model)

	if nm.statusMsg == "" {
		t.Error("unknown command should surface in the status line")
	}
	if !nm.GetConversation().IsEmpty() {
		t.Error("unknown command should append nothing")
	}
}

func TestCmdExport_EmptyConversation(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleCommand("/export")
	nm := updated.(Model)

	if nm.statusMsg != "nothing to export" {
		t.Errorf("statusMsg = %q", nm.statusMsg)
	}
}

func TestCmdExport_UnknownFormat(t *testing.T) {
	m := newTestModel(t)
	m.conversation.AddUserMessage()
	updated, _ := m.handleCommand("/export pdf")
	nm := updated.(Model)

	if !strings.Contains(nm.statusMsg, "usage") {
		t.Errorf("statusMsg = %q, want usage hint", nm.statusMsg)
	}
}

func TestUserParts(t *testing.T) {
	if got := userParts("hi", ""); len(got) != 1 {
		t.Errorf("text only = %d parts, want 1", len(got))
	}
	if got := userParts("", "/tmp/p.png"); len(got) != 1 {
		t.Errorf("image only = %d parts, want 1", len(got))
	}
	if got := userParts("hi", "/tmp/p.png"); len(got) != 2 {
		t.Errorf("both = %d parts, want 2", len(got))
	}
	if got := userParts("", ""); len(got) != 0 {
		t.Errorf("neither = %d parts, want 0", len(got))
	}
}
