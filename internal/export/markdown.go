// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/hookchat-tui/internal/model"
	"github.com/jeranaias/hookchat-tui/internal/part"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown format.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a conversation to Markdown format.
func (e *MarkdownExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	messages := conv.History()
	if len(messages) == 0 {
		return nil, fmt.Errorf("conversation has no messages")
	}

	var sb strings.Builder
	sb.WriteString("# hookchat transcript\n\n")
	sb.WriteString(fmt.Sprintf("exported: %s\n\n", time.Now().Format(time.RFC3339)))

	for _, msg := range messages {
		sb.WriteString("## " + msg.Sender.DisplayName())
		if e.options.IncludeTimestamps && !msg.Timestamp.IsZero() {
			sb.WriteString(" (" + msg.Timestamp.Format("2006-01-02 15:04:05") + ")")
		}
		sb.WriteString("\n\n")

		for _, p := range msg.Parts {
			sb.WriteString(formatPart(p))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the Markdown file extension.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// formatPart writes one part as Markdown. Unknown kinds are skipped the
// same way the transcript view skips them.
func formatPart(p part.Part) string {
	switch p.Type {
	case part.KindText:
		return p.Content + "\n\n"
	case part.KindImage:
		return "![image](" + p.Content + ")\n\n"
	case part.KindLink:
		label := p.Text
		if label == "" {
			label = p.Content
		}
		return "[" + label + "](" + p.Content + ")\n\n"
	default:
		return ""
	}
}
