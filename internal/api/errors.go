package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Category buckets a failed request by what the caller can do about it.
type Category int

const (
	// CategoryValidation covers 400/401/404: the backend message is meant for
	// the user and is surfaced verbatim.
	CategoryValidation Category = iota
	// CategoryForbidden covers 403. The router guard should have prevented the
	// request in the first place; this is the defense-in-depth path.
	CategoryForbidden
	// CategoryServer covers 5xx responses, treated as transient.
	CategoryServer
	// CategoryNetwork covers transport failures where no response arrived.
	CategoryNetwork
)

// Generic messages for the categories where the backend body is not shown.
const (
	msgForbidden = "Forbidden from accessing the data"
	msgServer    = "Internal server error"
	msgNetwork   = "An error has occurred while sending the request"
)

// RemoteError is the failure of one backend request. Message is what should be
// shown to the user; Status is zero when no response was received.
type RemoteError struct {
	Status   int
	Category Category
	Message  string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	re, ok := err.(*RemoteError)
	return ok && re.Status == http.StatusUnauthorized
}

// newNetworkError wraps a transport-level failure (request never got a response).
func newNetworkError() *RemoteError {
	return &RemoteError{Category: CategoryNetwork, Message: msgNetwork}
}

// newStatusError maps a non-2xx response to the error taxonomy. The body is
// consulted only for the validation statuses where it is shown verbatim.
func newStatusError(status int, body []byte) *RemoteError {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
		return &RemoteError{Status: status, Category: CategoryValidation, Message: extractMessage(body)}
	case http.StatusForbidden:
		return &RemoteError{Status: status, Category: CategoryForbidden, Message: msgForbidden}
	default:
		return &RemoteError{Status: status, Category: CategoryServer, Message: msgServer}
	}
}

// extractMessage pulls a human-readable message out of an error body. The
// backend answers either with {"error": "..."} / {"message": "..."} or with a
// bare string.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "An error occurred"
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"error", "message"} {
			var s string
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil {
				return s
			}
		}
	}
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	return trimmed
}
