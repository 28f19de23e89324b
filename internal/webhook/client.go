// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package webhook provides the HTTP client for communicating with the
// remote assistant endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jeranaias/hookchat-tui/internal/part"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeNetwork
	ErrTypeHTTP
	ErrTypeEmptyResponse
	ErrTypeMalformedJSON
	ErrTypeUnexpectedShape
)

// ClientError represents a classified error from the webhook client.
type ClientError struct {
	Type       ErrorType
	Status     int    // HTTP status code, set for ErrTypeHTTP
	StatusText string // HTTP status text, set for ErrTypeHTTP
	Message    string
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	return errorType(err) == ErrTypeNetwork
}

// IsHTTPError reports whether err is a non-success HTTP status.
func IsHTTPError(err error) bool {
	return errorType(err) == ErrTypeHTTP
}

func errorType(err error) ErrorType {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type
	}
	return ErrTypeUnknown
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// MaxResponseSize is the maximum allowed response body size.
const MaxResponseSize = 10 * 1024 * 1024 // 10MB

// ClientConfig holds configuration options for the webhook client.
type ClientConfig struct {
	// Endpoint is the webhook URL the client posts to.
	Endpoint string

	// Timeout for requests (default: 60s).
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Endpoint: "http://127.0.0.1:5678/webhook/chat",
		Timeout:  60 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the webhook endpoint.
// A single attempt is made per submission; no retries.
//
// The Client is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new webhook client for the given endpoint.
func NewClient(endpoint string) *Client {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a new webhook client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Endpoint == "" {
		config.Endpoint = DefaultConfig().Endpoint
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Endpoint returns the configured webhook URL.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// =============================================================================
// SEND
// =============================================================================

// sendRequest is the outbound payload. The image field is omitted entirely
// when no attachment exists; it is never sent as null or empty.
type sendRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Send posts the user's text and optional base64-encoded image to the
// webhook and returns the validated parts of the reply. image must be a
// plain base64 payload without a data-URL prefix; pass "" for no attachment.
//
// Failures are classified in order: transport failure, non-2xx status,
// empty body, non-JSON body, unexpected shape. First match wins.
func (c *Client) Send(ctx context.Context, text, image string) ([]part.Part, error) {
	body, err := json.Marshal(sendRequest{Text: text, Image: image})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &ClientError{
			Type:       ErrTypeHTTP,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    "webhook returned " + resp.Status,
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "failed to read response", Cause: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ClientError{Type: ErrTypeEmptyResponse, Message: "empty response body"}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		if !json.Valid(data) {
			return nil, &ClientError{Type: ErrTypeMalformedJSON, Message: "response is not valid JSON", Cause: err}
		}
		return nil, &ClientError{Type: ErrTypeUnexpectedShape, Message: "response is not a JSON object", Cause: err}
	}

	raw, ok := envelope["response"]
	if !ok {
		return nil, &ClientError{Type: ErrTypeUnexpectedShape, Message: "response field missing"}
	}

	parts, err := part.Decode(raw)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnexpectedShape, Message: "invalid response parts", Cause: err}
	}

	return parts, nil
}
