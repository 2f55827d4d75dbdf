package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrEmptyLogin      = errors.New("login must not be empty")
	ErrInvalidResponse = errors.New("invalid response")
)

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 << 10

// Error is returned by every Client operation. Transport, status and
// decode failures all use this type; the cause tells them apart.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("github: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusError is the cause of an Error for a non-2xx response
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	text := fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
	if e.Message == "" {
		return text
	}
	return text + ": " + e.Message
}

// newStatusError reads GitHub's {"message": ...} error body if present
func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{Code: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return se
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		se.Message = payload.Message
	}
	return se
}

// StatusCode returns the HTTP status carried in err's chain, or 0
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsNotFound reports whether err was caused by a 404 response
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
