package socialgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialgrid/socialgrid-go/graph"
	"github.com/socialgrid/socialgrid-go/protocol"
	"github.com/socialgrid/socialgrid-go/testutil"
	"github.com/socialgrid/socialgrid-go/transport"
	"github.com/socialgrid/socialgrid-go/transport/mock"
)

func TestDoSingleRequest(t *testing.T) {
	tr := mock.New().WithResponse(&transport.RawResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"id":"me"}`),
	})

	session := testutil.NewSession("tok", "app123")
	resp, requests, err := Do(context.Background(), tr, graph.NewMeRequest(session))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"me"}`, string(resp.Body))
	require.Len(t, requests, 1)

	rec := tr.Last()
	require.NotNil(t, rec)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "https://graph.socialgrid.io/me?format=json&sdk=go&access_token=tok", rec.URL)
	assert.Empty(t, rec.Body)
}

func TestDoBatchEndToEnd(t *testing.T) {
	tr := mock.New()

	sessionA := testutil.NewSession("tokA", "appA")
	sessionB := testutil.NewSession("tokB", "appB")

	first := graph.NewMeRequest(sessionA).WithBatchEntryName("me-call")
	second := graph.NewUploadPhotoRequest(sessionB, testutil.TestImage(2, 2))

	_, requests, err := Do(context.Background(), tr, first, second)
	require.NoError(t, err)

	// Input order is preserved so responses can be aligned by position.
	require.Len(t, requests, 2)
	assert.Same(t, first, requests[0])
	assert.Same(t, second, requests[1])

	rec := tr.Last()
	require.NotNil(t, rec)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "https://graph.socialgrid.io", rec.URL)
	assert.Equal(t, protocol.MIMEContentType(), rec.Headers["Content-Type"])

	parts, err := testutil.ParseMultipartBody(rec.Body, protocol.MIMEBoundary)
	require.NoError(t, err)

	batch, ok := testutil.PartByName(parts, "batch")
	require.True(t, ok)

	var entries []protocol.BatchEntry
	require.NoError(t, json.Unmarshal([]byte(batch.Text()), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "me-call", entries[0].Name)
	assert.Equal(t, "file0", entries[1].AttachedFiles)

	_, ok = testutil.PartByName(parts, "file0")
	assert.True(t, ok, "attachment field missing from body")
}
