package graph

import (
	"errors"
	"fmt"
)

// Error codes for request encoding failures.
const (
	CodeInvalidArgument  = "E_INVALID_ARGUMENT"
	CodeMissingAppID     = "E_MISSING_APP_ID"
	CodeUnsupportedValue = "E_UNSUPPORTED_VALUE"
	CodeEncodingFailure  = "E_ENCODING_FAILURE"
)

// RequestError represents a failure while validating or encoding a
// request list. Every failure is synchronous and atomic: an encode
// either produces a complete transport request or fails before any
// body byte is written.
type RequestError struct {
	Code    string                 `json:"code"`
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %s)", e.Code, e.Message, e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is a RequestError carrying code.
func IsCode(err error, code string) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Code == code
}

// ErrInvalidArgument creates an error for malformed encoder input such
// as an empty request list, a nil entry, or a binary value on GET.
func ErrInvalidArgument(message string, details map[string]interface{}) *RequestError {
	return &RequestError{
		Code:    CodeInvalidArgument,
		Type:    "ARGUMENT_ERROR",
		Message: message,
		Details: details,
	}
}

// ErrMissingAppID creates the error for a sessionless batch with no
// default application id configured.
func ErrMissingAppID() *RequestError {
	return &RequestError{
		Code:    CodeMissingAppID,
		Type:    "AUTH_ERROR",
		Message: "at least one request in a batch must have an open session, or a default application id must be configured",
	}
}

// ErrUnsupportedValueType creates the error for a parameter value
// outside the text/image/blob variants.
func ErrUnsupportedValueType(key string, value interface{}) *RequestError {
	return &RequestError{
		Code:    CodeUnsupportedValue,
		Type:    "ARGUMENT_ERROR",
		Message: fmt.Sprintf("parameter %q is not a supported type: string, image.Image, []byte", key),
		Details: map[string]interface{}{
			"parameter": key,
			"goType":    fmt.Sprintf("%T", value),
		},
	}
}

// ErrEncodingFailure wraps an I/O or JSON failure raised while building
// the envelope or writing the body.
func ErrEncodingFailure(message string, cause error) *RequestError {
	return &RequestError{
		Code:    CodeEncodingFailure,
		Type:    "ENCODING_ERROR",
		Message: message,
		Cause:   cause,
	}
}
