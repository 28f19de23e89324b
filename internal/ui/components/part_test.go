// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/hookchat-tui/internal/part"
	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
)

func TestRenderPart_Text(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderPart(part.Text("hello world"), theme, 80)
	if !strings.Contains(out, "hello world") {
		t.Errorf("text part output %q missing content", out)
	}
}

func TestRenderPart_Image(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderPart(part.Image("https://example.com/cat.png"), theme, 80)
	if !strings.Contains(out, "[image]") {
		t.Errorf("image part output %q missing badge", out)
	}
	if !strings.Contains(out, "https://example.com/cat.png") {
		t.Errorf("image part output %q missing URI", out)
	}
}

func TestRenderPart_ImageURITruncated(t *testing.T) {
	theme := styles.NewTheme()
	long := "https://example.com/" + strings.Repeat("a", 200)
	out := RenderPart(part.Image(long), theme, 80)
	if strings.Contains(out, long) {
		t.Error("long image URI should be truncated")
	}
}

func TestRenderPart_Link(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderPart(part.Link("https://example.com/docs", "the docs"), theme, 80)
	if !strings.Contains(out, "the docs") {
		t.Errorf("link part output %q missing label", out)
	}
	// OSC 8 hyperlink carries the target URL
	if !strings.Contains(out, "https://example.com/docs") {
		t.Errorf("link part output %q missing URL", out)
	}
}

func TestRenderPart_LinkWithoutLabelFallsBackToURL(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderPart(part.Part{Type: part.KindLink, Content: "https://example.com"}, theme, 80)
	if !strings.Contains(out, "https://example.com") {
		t.Errorf("link part output %q missing fallback label", out)
	}
}

func TestRenderPart_UnknownKindRendersNothing(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderPart(part.Part{Type: "video", Content: "x"}, theme, 80)
	if out != "" {
		t.Errorf("unknown kind rendered %q, want empty", out)
	}
}

func TestRenderPart_Deterministic(t *testing.T) {
	theme := styles.NewTheme()
	p := part.Link("https://example.com", "example")
	first := RenderPart(p, theme, 80)
	second := RenderPart(p, theme, 80)
	if first != second {
		t.Error("rendering the same part twice produced different output")
	}
}
