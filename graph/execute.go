package graph

import (
	"context"

	"github.com/socialgrid/socialgrid-go/transport"
)

// Execute encodes a single request and sends it over tr, returning the
// raw response for a separate parser.
func (e *Encoder) Execute(ctx context.Context, tr transport.Transport, r *Request) (*transport.RawResponse, error) {
	resp, _, err := e.ExecuteBatch(ctx, tr, r)
	return resp, err
}

// ExecuteBatch encodes the given requests into one outbound call and
// sends it over tr. The returned request slice preserves input order
// so the caller can align per-entry responses positionally.
func (e *Encoder) ExecuteBatch(ctx context.Context, tr transport.Transport, requests ...*Request) (*transport.RawResponse, []*Request, error) {
	prepared, err := e.Build(requests...)
	if err != nil {
		return nil, nil, err
	}
	resp, err := tr.Do(ctx, prepared.Request)
	if err != nil {
		return nil, prepared.Requests, err
	}
	return resp, prepared.Requests, nil
}
