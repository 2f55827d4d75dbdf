// Package apperr defines the closed set of errors that end the program.
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates application errors
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy
	KindUnknown Kind = iota
	// KindCredential - a required startup variable is missing
	KindCredential
	// KindInput - a prompt failed or was interrupted
	KindInput
	// KindAPI - a GitHub API call failed
	KindAPI
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindCredential:
		return "credential"
	case KindInput:
		return "input"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is an application error with an attached cause
type Error struct {
	Kind Kind
	// Name is the missing variable for KindCredential
	Name string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCredential:
		return fmt.Sprintf("missing %s environment variable", e.Name)
	case KindInput:
		return fmt.Sprintf("failed to get user input: %v", e.Err)
	case KindAPI:
		return fmt.Sprintf("GitHub error: %v", e.Err)
	default:
		return fmt.Sprintf("error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Credential returns a missing-credential error naming the variable
func Credential(name string) *Error {
	return &Error{Kind: KindCredential, Name: name}
}

// Input wraps a prompt failure
func Input(err error) *Error {
	return &Error{Kind: KindInput, Err: err}
}

// API wraps a GitHub API failure
func API(err error) *Error {
	return &Error{Kind: KindAPI, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
