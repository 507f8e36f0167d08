package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Error kinds produced locally when the server did not supply an error body.
const (
	ErrorKindTransport = "transport"
	ErrorKindDecode    = "decode"
	ErrorKindHTTP      = "http"
)

// Envelope is the uniform result of every API call. Status is the HTTP
// status code, or 0 when no response was received.
type Envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  json.RawMessage `json:"error"`
}

// LocalError is the error object attached to envelopes built client-side.
type LocalError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func errorEnvelope(status int, kind, message string) Envelope {
	b, _ := json.Marshal(LocalError{Kind: kind, Message: message})
	return Envelope{Status: status, Error: b}
}

// Succeeded reports a 2xx status.
func (e Envelope) Succeeded() bool {
	return e.Status >= 200 && e.Status < 300
}

// HasData reports whether data is present and not JSON null.
func (e Envelope) HasData() bool {
	return isPresent(e.Data)
}

// HasError reports whether error is present and not JSON null.
func (e Envelope) HasError() bool {
	return isPresent(e.Error)
}

// DecodeData unmarshals data into v.
func (e Envelope) DecodeData(v any) error {
	if !e.HasData() {
		return fmt.Errorf("envelope has no data")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// ErrorMessage returns a human-readable message from the error object.
// It understands {"message"}, {"detail"} and {"error"} shapes and falls
// back to the raw JSON.
func (e Envelope) ErrorMessage() string {
	if !e.HasError() {
		return ""
	}
	var obj map[string]any
	if err := json.Unmarshal(e.Error, &obj); err == nil {
		for _, k := range []string{"message", "detail", "error"} {
			if s, ok := obj[k].(string); ok && s != "" {
				return s
			}
		}
	}
	var s string
	if err := json.Unmarshal(e.Error, &s); err == nil {
		return s
	}
	return string(e.Error)
}

// Err maps the envelope onto a Go error, or nil for a 2xx status.
func (e Envelope) Err() error {
	switch {
	case e.Succeeded():
		return nil
	case e.Status == 0:
		return fmt.Errorf("%w: %s", ErrUnavailable, e.ErrorMessage())
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return ErrUnauthorized
	default:
		msg := e.ErrorMessage()
		if msg == "" {
			msg = http.StatusText(e.Status)
		}
		return fmt.Errorf("%w (status %d): %s", ErrRejected, e.Status, msg)
	}
}

func isPresent(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && !bytes.Equal(t, []byte("null"))
}
