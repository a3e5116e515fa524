// Package socialgrid is the Go client SDK core for the SocialGrid
// graph API. It converts logical graph operations into one outbound
// HTTP request: a plain URL for a single GET, or a multipart/form-data
// batch with a JSON envelope and binary attachments for everything
// else.
//
// The core is encoding only. Session storage, the network transport,
// and response parsing are collaborators behind small interfaces; see
// the graph, protocol, transport, and config packages.
package socialgrid

import (
	"context"

	"github.com/socialgrid/socialgrid-go/config"
	"github.com/socialgrid/socialgrid-go/graph"
	"github.com/socialgrid/socialgrid-go/transport"
)

// Do encodes the given requests into one outbound call using the
// process-wide default configuration and sends it over tr. The
// returned request slice preserves input order for positional response
// alignment.
func Do(ctx context.Context, tr transport.Transport, requests ...*graph.Request) (*transport.RawResponse, []*graph.Request, error) {
	return graph.NewEncoder(config.Default()).ExecuteBatch(ctx, tr, requests...)
}
