package lafaom

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("record not found")

// HTTPError is a non-2xx API response. Message carries the server-supplied
// text when the body had one; Error falls back to a generic status line.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// NetworkError is a transport-level failure: connection refused, timeout,
// cancelled context. The request never produced a status code.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type errorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
	Detail    string `json:"detail"`
}

func newHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{Status: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		httpErr.Code = parsed.ErrorCode
		if parsed.Message != "" {
			httpErr.Message = parsed.Message
		} else if parsed.Detail != "" {
			httpErr.Message = parsed.Detail
		}
	}

	return httpErr
}
