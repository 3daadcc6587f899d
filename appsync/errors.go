package appsync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// Error is the error envelope AppSync understands for Direct Lambda
// resolvers: a short error type plus a human-readable message. It
// implements the error interface so resolvers can return it directly.
type Error struct {
	Type    string `json:"errorType"`
	Message string `json:"errorMessage"`
}

// NewError builds an Error from a type and a formatted message.
func NewError(errType, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Or combines two errors into one: types joined with "|", messages
// joined with a newline. Either side may be nil, in which case the
// other is returned unchanged.
func (e *Error) Or(other *Error) *Error {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}
	return &Error{
		Type:    e.Type + "|" + other.Type,
		Message: e.Message + "\n" + other.Message,
	}
}

// ErrorFrom converts any error into an *Error.
//
// An *Error passes through unchanged. AWS SDK errors are converted by
// copying the service-provided error code and message; a missing code
// defaults to "Unknown" and a missing message to the empty string.
// Everything else becomes an "Unknown" error carrying err.Error().
func ErrorFrom(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if code == "" {
			code = "Unknown"
		}
		return &Error{Type: code, Message: apiErr.ErrorMessage()}
	}
	return &Error{Type: "Unknown", Message: err.Error()}
}

// invalidArg builds the InvalidArgs error the argument decoder returns
// when a resolver argument is absent or has the wrong shape.
func invalidArg(name string, cause error) *Error {
	msg := strings.TrimSpace(cause.Error())
	return NewError("InvalidArgs", "Argument %q is not the expected format (%s)", name, msg)
}
