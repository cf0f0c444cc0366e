package api

import "fmt"

// Error is the single failure shape every call returns: a human message, a
// machine code, and whatever detail the backend attached.
type Error struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
	Status  int            `json:"-"` // HTTP status, 0 for transport failures
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Error codes for failures that never reached the backend.
const (
	CodeNetworkError = "network_error"
	CodeDecodeError  = "decode_error"
	CodeUnauthorized = "unauthorized"
)

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == 401
}
