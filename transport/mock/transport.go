// Package mock provides an in-memory transport.Transport for tests.
package mock

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/socialgrid/socialgrid-go/transport"
)

// Recorded is one request captured by the mock, with its body
// materialized so tests can inspect the exact bytes that would have
// gone on the wire.
type Recorded struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    []byte
}

// Transport implements transport.Transport with configurable canned
// behavior and full request history.
type Transport struct {
	mu       sync.Mutex
	response *transport.RawResponse
	err      error
	delay    time.Duration
	history  []*Recorded

	doCalls atomic.Int32
}

// New creates a mock transport returning an empty 200 response.
func New() *Transport {
	return &Transport{
		response: &transport.RawResponse{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
		},
	}
}

// WithResponse configures the canned response returned by Do.
func (m *Transport) WithResponse(resp *transport.RawResponse) *Transport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = resp
	return m
}

// WithError configures Do to fail with err.
func (m *Transport) WithError(err error) *Transport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithDelay configures an artificial latency before Do returns,
// interruptible by context cancellation.
func (m *Transport) WithDelay(d time.Duration) *Transport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// Do records the request, materializes its body, and returns the
// configured response or error.
func (m *Transport) Do(ctx context.Context, req *transport.Request) (*transport.RawResponse, error) {
	m.doCalls.Add(1)

	m.mu.Lock()
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	body, err := req.BodyBytes()
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		headers[k] = v
	}

	m.mu.Lock()
	m.history = append(m.history, &Recorded{
		URL:     req.URL,
		Method:  req.Method,
		Headers: headers,
		Body:    body,
	})
	resp, cannedErr := m.response, m.err
	m.mu.Unlock()

	if cannedErr != nil {
		return nil, cannedErr
	}
	return resp, nil
}

// DoCalls returns how many times Do has been invoked.
func (m *Transport) DoCalls() int {
	return int(m.doCalls.Load())
}

// Requests returns the recorded requests in send order.
func (m *Transport) Requests() []*Recorded {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Recorded, len(m.history))
	copy(out, m.history)
	return out
}

// Last returns the most recently recorded request, or nil.
func (m *Transport) Last() *Recorded {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return nil
	}
	return m.history[len(m.history)-1]
}

// Reset clears the recorded history and call counters.
func (m *Transport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
	m.doCalls.Store(0)
}
