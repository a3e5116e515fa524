// Package httptransport sends encoded requests over net/http.
package httptransport

import (
	"context"
	"io"
	"net/http"

	"github.com/socialgrid/socialgrid-go/transport"
)

// Transport implements transport.Transport on top of an *http.Client.
type Transport struct {
	client *http.Client
}

// New creates a transport using client, or http.DefaultClient when
// client is nil. Timeouts and retries are the client's configuration,
// not the encoder's.
func New(client *http.Client) *Transport {
	if client == nil {
		client = http.DefaultClient
	}
	return &Transport{client: client}
}

// Do sends the request, streaming the body through a pipe so the
// multipart payload is never buffered in full.
func (t *Transport) Do(ctx context.Context, req *transport.Request) (*transport.RawResponse, error) {
	var body io.Reader
	if req.Body != nil {
		pr, pw := io.Pipe()
		go func() {
			pw.CloseWithError(req.Body(pw))
		}()
		body = pr
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &transport.RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}
