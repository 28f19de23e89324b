// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package webhook

import (
	"errors"
	"strconv"
)

// Fixed user-facing sentences per error kind. Technical detail is logged,
// never shown verbatim; the HTTP status code and text are the one exception.
const (
	msgGeneric         = "Sorry, I encountered an error. Please try again."
	msgEmptyResponse   = "Sorry, the server returned an empty response. Please try again."
	msgMalformedJSON   = "Sorry, I couldn't understand the server's response. Please try again."
	msgUnexpectedShape = "Sorry, the server's response had an unexpected format. Please try again."
)

// UserMessage maps a classified client error to the fixed sentence shown in
// the conversation. Unknown errors get the generic sentence.
func UserMessage(err error) string {
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		return msgGeneric
	}

	switch clientErr.Type {
	case ErrTypeHTTP:
		msg := "Sorry, the server responded with status " + strconv.Itoa(clientErr.Status)
		if clientErr.StatusText != "" {
			msg += " (" + clientErr.StatusText + ")"
		}
		return msg + ". Please try again."
	case ErrTypeEmptyResponse:
		return msgEmptyResponse
	case ErrTypeMalformedJSON:
		return msgMalformedJSON
	case ErrTypeUnexpectedShape:
		return msgUnexpectedShape
	default:
		return msgGeneric
	}
}
