package types

import (
	"encoding/json"
	"strings"
)

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope covers the failure shapes seen across backend revisions:
// `{error:{code,message}}` and the flat `{success:false, message}`.
type ErrorEnvelope struct {
	Error   *APIError `json:"error,omitempty"`
	Success *bool     `json:"success,omitempty"`
	Message string    `json:"message,omitempty"`
}

// BestMessage returns the most specific human-readable message the envelope
// carries, or empty when there is none.
func (e ErrorEnvelope) BestMessage() string {
	if e.Error != nil && strings.TrimSpace(e.Error.Message) != "" {
		return strings.TrimSpace(e.Error.Message)
	}
	return strings.TrimSpace(e.Message)
}

// DecodeEnveloped unmarshals a payload that some backend revisions wrap in
// `{data: …}` and others send bare, preferring the envelope when present.
func DecodeEnveloped(raw []byte, dest any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return json.Unmarshal(envelope.Data, dest)
	}
	return json.Unmarshal(raw, dest)
}
