package creditapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// RemoteError is a non-2xx response from the credit service. Body holds the
// structured JSON error payload when the server sent one (field-level
// validation messages and the like); otherwise Message holds the status text.
// Transport-level failures are never RemoteErrors.
type RemoteError struct {
	StatusCode int
	Body       json.RawMessage
	Message    string
}

func (e *RemoteError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("credit service returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("credit service returned %d: %s", e.StatusCode, e.Message)
}

// Detail returns the human-facing error payload: the structured body when
// present, the status text otherwise.
func (e *RemoteError) Detail() string {
	if len(e.Body) > 0 {
		return string(e.Body)
	}
	return e.Message
}

// AsRemote unwraps err into a RemoteError, distinguishing server-reported
// failures from transport failures.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
