// Package transport defines the seam between the request encoder and
// the network. The encoder produces a transport-ready Request; sending
// it, including timeouts, cancellation, and retries, belongs to the
// Transport implementation and its caller.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// BodyFunc streams a request body into w. It is invoked at most once,
// at send time; field order inside the body is preserved exactly as the
// encoder produced it.
type BodyFunc func(w io.Writer) error

// Request is a transport-ready description of one outbound HTTP call.
type Request struct {
	URL     string
	Method  string
	Headers map[string]string

	// Body is nil for bodyless requests (single GET/DELETE).
	Body BodyFunc
}

// HasBody reports whether the request carries a body.
func (r *Request) HasBody() bool {
	return r.Body != nil
}

// BodyBytes materializes the body into memory. Intended for tests and
// small payloads; large attachment bodies should be streamed via Body.
func (r *Request) BodyBytes() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := r.Body(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RawResponse is the unparsed result of one outbound call. Decoding it
// into per-request results is the response parser's concern, not the
// transport's.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport sends a transport-ready request and returns the raw
// response.
type Transport interface {
	Do(ctx context.Context, req *Request) (*RawResponse, error)
}
