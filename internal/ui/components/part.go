// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/muesli/termenv"

	"github.com/jeranaias/hookchat-tui/internal/part"
	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
	"github.com/jeranaias/hookchat-tui/internal/util"
)

// =============================================================================
// PART RENDERING - One renderable unit per part kind
// =============================================================================

// maxImageURIWidth bounds how much of an image URI is shown in the badge.
const maxImageURIWidth = 60

// RenderPart renders a single message part for terminal display. The output
// depends only on the part value, the theme, and the width; rendering the
// same part twice yields the same string. Unrecognized kinds render to an
// empty string so a forward-compatible payload degrades to showing the
// parts the client does understand.
func RenderPart(p part.Part, theme *styles.Theme, width int) string {
	switch p.Type {
	case part.KindText:
		return renderTextPart(p, width)
	case part.KindImage:
		return renderImagePart(p, theme)
	case part.KindLink:
		return renderLinkPart(p, theme)
	default:
		return ""
	}
}

// renderTextPart renders markdown text, falling back to word-wrapped plain
// text when the renderer is unavailable.
func renderTextPart(p part.Part, width int) string {
	if markdownRenderer == nil {
		return wordWrap(p.Content, width)
	}
	return RenderMarkdown(p.Content)
}

// renderImagePart renders an inline image reference as a badge. Terminal
// cells cannot show the image itself, so the URI stands in for it.
func renderImagePart(p part.Part, theme *styles.Theme) string {
	uri := util.TruncateWidth(p.Content, maxImageURIWidth)
	return theme.ImageBadge.Render("[image] " + uri)
}

// renderLinkPart renders a navigable link. The label is styled and wrapped
// in an OSC 8 hyperlink so terminals that support it open the URL directly;
// terminals that don't still show the underlined label.
func renderLinkPart(p part.Part, theme *styles.Theme) string {
	label := p.Text
	if label == "" {
		label = p.Content
	}
	return termenv.Hyperlink(p.Content, theme.Link.Render(label))
}
