package dextrade

import (
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"
)

// envelope is the wire wrapper the exchange puts around every payload.
type envelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// errorMessage extracts a human-readable error from a response body, when
// the body carries one. Returns "" for bodies that are not the standard
// envelope; the raw body still travels on the APIError either way.
func errorMessage(body []byte) string {
	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return ""
	}
	if len(env.Error) == 0 {
		return ""
	}
	var msg string
	if err := sonic.Unmarshal(env.Error, &msg); err == nil {
		return msg
	}
	return string(env.Error)
}

// unwrap decodes a successful response body into v. Payloads nested under
// the envelope's data field are unwrapped first; bare payloads decode
// as-is.
func unwrap(body []byte, v any) error {
	var env envelope
	if err := sonic.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		body = env.Data
	}
	if err := sonic.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
