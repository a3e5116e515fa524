package transport

import (
	"fmt"
	"io"
	"testing"
)

func TestRequestBodyBytes(t *testing.T) {
	bodyless := &Request{URL: "https://graph.test/me", Method: "GET"}
	if bodyless.HasBody() {
		t.Errorf("HasBody() = true for bodyless request")
	}
	b, err := bodyless.BodyBytes()
	if err != nil || b != nil {
		t.Errorf("BodyBytes() = %v, %v, want nil, nil", b, err)
	}

	req := &Request{
		URL:    "https://graph.test",
		Method: "POST",
		Body: func(w io.Writer) error {
			_, err := io.WriteString(w, "payload")
			return err
		},
	}
	if !req.HasBody() {
		t.Errorf("HasBody() = false for request with body")
	}
	b, err = req.BodyBytes()
	if err != nil {
		t.Fatalf("BodyBytes() error = %v", err)
	}
	if string(b) != "payload" {
		t.Errorf("BodyBytes() = %q, want %q", b, "payload")
	}
}

func TestRequestBodyBytesError(t *testing.T) {
	req := &Request{
		Method: "POST",
		Body: func(w io.Writer) error {
			return fmt.Errorf("sink failed")
		},
	}
	if _, err := req.BodyBytes(); err == nil {
		t.Errorf("BodyBytes() expected error from body func")
	}
}
