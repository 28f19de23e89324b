// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}
}

func TestTheme_SetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) = %dx%d", theme.Width, theme.Height)
	}
}

func TestTheme_BubbleWidth(t *testing.T) {
	theme := NewTheme()

	// Unknown terminal size falls back to a fixed width
	if got := theme.BubbleWidth(); got != 76 {
		t.Errorf("BubbleWidth() with no size = %d, want 76", got)
	}

	theme.SetSize(100, 40)
	if got := theme.BubbleWidth(); got != 88 {
		t.Errorf("BubbleWidth() at width 100 = %d, want 88", got)
	}

	// Never collapses below a readable minimum
	theme.SetSize(10, 40)
	if got := theme.BubbleWidth(); got != 20 {
		t.Errorf("BubbleWidth() at width 10 = %d, want 20", got)
	}
}

func TestRenderError_IncludesIndicator(t *testing.T) {
	out := RenderError("something broke")
	if !strings.Contains(out, "[X]") {
		t.Errorf("RenderError() = %q, want shape indicator", out)
	}
	if !strings.Contains(out, "something broke") {
		t.Errorf("RenderError() = %q, want message text", out)
	}
}
