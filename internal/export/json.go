// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/hookchat-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports transcripts to JSON format.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// jsonTranscript is the serialized document shape.
type jsonTranscript struct {
	Exported time.Time        `json:"exported"`
	Messages []*model.Message `json:"messages"`
}

// Export converts a conversation to indented JSON.
func (e *JSONExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	messages := conv.History()
	if len(messages) == 0 {
		return nil, fmt.Errorf("conversation has no messages")
	}

	doc := jsonTranscript{
		Exported: time.Now(),
		Messages: messages,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FileExtension returns the JSON file extension.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
