package upbit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const maxErrorBodyBytes = 512

// APIError is returned for every response with a status of 400 or above.
// Name and Message are filled when the body carries the API's error object;
// otherwise Body holds a trimmed snippet of what came back.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Name != "":
		return fmt.Sprintf("upbit api responded with status %d: %s (%s)", e.StatusCode, e.Message, e.Name)
	case e.Message != "":
		return fmt.Sprintf("upbit api responded with status %d: %s", e.StatusCode, e.Message)
	case e.Body != "":
		return fmt.Sprintf("upbit api responded with status %d body: %s", e.StatusCode, e.Body)
	}
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "request failed"
	}
	return fmt.Sprintf("upbit api responded with status %d: %s", e.StatusCode, text)
}

// errorEnvelope matches {"error":{"name":..,"message":..}}. The API sends name
// both as a string and as a number.
type errorEnvelope struct {
	Error *struct {
		Name    json.RawMessage `json:"name"`
		Message string          `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Name = rawName(env.Error.Name)
		apiErr.Message = strings.TrimSpace(env.Error.Message)
	}
	if apiErr.Message == "" {
		apiErr.Body = bodySnippet(body)
	}
	return apiErr
}

func rawName(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(raw)
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes] + "..."
	}
	return s
}
