package skeptic

import (
	"errors"
	"fmt"
)

// Application error codes. These map errors to behavior at the process
// boundary rather than to specific implementations.
const (
	EFETCH    = "fetch"       // article could not be retrieved over HTTP
	EEXTRACT  = "extract"     // no extractable content by any method
	ETOOSHORT = "too_short"   // extracted content below the quality floor
	EINVALID  = "invalid"     // validation failed on caller input
	ENOTFOUND = "not_found"   // entity does not exist
	EINTERNAL = "internal"    // unexpected internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("skeptic error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an *Error.
// Returns EINTERNAL for non-application errors and "" for a nil error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an *Error.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
