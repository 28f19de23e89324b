// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/jeranaias/hookchat-tui/internal/model"
	"github.com/jeranaias/hookchat-tui/internal/part"
)

func sampleConversation() *model.Conversation {
	conv := model.NewConversation()
	conv.AddUserMessage(part.Text("what's the weather"))
	conv.AddAssistantMessage([]part.Part{
		part.Text("Sunny, 22 degrees."),
		part.Link("https://example.com/forecast", "full forecast"),
		part.Image("https://example.com/radar.png"),
	})
	return conv
}

func TestMarkdownExporter(t *testing.T) {
	data, err := NewMarkdownExporter(nil).Export(sampleConversation())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"## you",
		"## assistant",
		"what's the weather",
		"Sunny, 22 degrees.",
		"[full forecast](https://example.com/forecast)",
		"![image](https://example.com/radar.png)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownExporter_UnknownPartSkipped(t *testing.T) {
	conv := model.NewConversation()
	conv.AddAssistantMessage([]part.Part{
		part.Text("shown"),
		{Type: "widget", Content: "hidden"},
	})

	data, err := NewMarkdownExporter(nil).Export(conv)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("unknown part should be skipped")
	}
}

func TestMarkdownExporter_EmptyConversation(t *testing.T) {
	if _, err := NewMarkdownExporter(nil).Export(model.NewConversation()); err == nil {
		t.Error("empty conversation should not export")
	}
}

func TestJSONExporter(t *testing.T) {
	data, err := NewJSONExporter(nil).Export(sampleConversation())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var doc jsonTranscript
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc.Messages) != 2 {
		t.Errorf("messages = %d, want 2", len(doc.Messages))
	}
	if doc.Messages[1].Parts[1].Type != part.KindLink {
		t.Error("part kinds should survive the round trip")
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir, IncludeTimestamps: true}

	path, err := ExportMarkdown(sampleConversation(), opts)
	if err != nil {
		t.Fatalf("ExportMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("path = %q, want .md suffix", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	got := sanitizeFilename("a/b\\c:d.md")
	if strings.ContainsAny(got, "/\\:") {
		t.Errorf("sanitizeFilename = %q, want unsafe characters stripped", got)
	}
}
