package graph

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRequestErrorFormat(t *testing.T) {
	err := ErrInvalidArgument("request list must not be empty", nil)
	if got := err.Error(); got != "E_INVALID_ARGUMENT: request list must not be empty" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := ErrEncodingFailure("could not write body", fmt.Errorf("pipe closed"))
	if !strings.Contains(wrapped.Error(), "caused by: pipe closed") {
		t.Errorf("Error() = %q, want cause included", wrapped.Error())
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := ErrEncodingFailure("could not write body", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() failed to find the cause")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{name: "matching code", err: ErrMissingAppID(), code: CodeMissingAppID, want: true},
		{name: "different code", err: ErrMissingAppID(), code: CodeInvalidArgument, want: false},
		{name: "wrapped", err: fmt.Errorf("encode: %w", ErrMissingAppID()), code: CodeMissingAppID, want: true},
		{name: "foreign error", err: fmt.Errorf("plain"), code: CodeMissingAppID, want: false},
		{name: "nil", err: nil, code: CodeMissingAppID, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
