package clauscan

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EEXTRACTION   = "extraction"   // every backend for the format failed
	EINTERNAL     = "internal"     // unexpected internal error
	EINVALID      = "invalid"      // invalid input or request
	ENOTFOUND     = "not_found"    // entity does not exist
	ESCHEMA       = "schema"       // model response does not match schema
	EUNAUTHORIZED = "unauthorized" // credentials rejected; not retryable
	EUNAVAILABLE  = "unavailable"  // transient transport failure; retryable
	EUNSUPPORTED  = "unsupported"  // document format not supported
)

// Error represents an application error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Raw holds the raw model output for ESCHEMA errors so callers can
	// surface it for diagnostics. Empty for all other codes.
	Raw string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("clauscan error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorRaw unwraps an application error and returns the raw model output
// attached to it, if any.
func ErrorRaw(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Raw
	}
	return ""
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
