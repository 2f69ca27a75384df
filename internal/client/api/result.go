package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Fixed messages for locally synthesized failures.
const (
	TimeoutMessage = "Request timeout. Please try again."
	NetworkMessage = "Network error. Please check your connection."
)

// Result is the normalized outcome of a successful call (HTTP status in
// [200,300)). Data holds the raw JSON payload when the response declared a
// JSON content type; otherwise Text holds the body verbatim.
type Result struct {
	Status int
	IsJSON bool
	Data   json.RawMessage
	Text   string
}

// Decode unmarshals the JSON payload into v.
func (r *Result) Decode(v any) error {
	if !r.IsJSON {
		return errors.New("response is not JSON")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Error is the normalized failure of a call.
//
// Status 0 means the transport failed before any response arrived; 408
// means the local deadline elapsed; anything else is the server's own
// status. Details carries the raw JSON error body when the server sent one.
type Error struct {
	Status  int
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsTimeout reports whether err is a locally synthesized deadline failure.
func IsTimeout(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusRequestTimeout
}

// IsNetwork reports whether err is a transport-level failure (no response).
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 0
}

// StatusOf returns the status carried by an *Error, or -1 when err is not
// one.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return -1
}
