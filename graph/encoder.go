package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/socialgrid/socialgrid-go/config"
	"github.com/socialgrid/socialgrid-go/protocol"
	"github.com/socialgrid/socialgrid-go/transport"
)

const (
	userAgentHeader   = "User-Agent"
	contentTypeHeader = "Content-Type"
)

// Encoder converts an ordered list of requests into one transport-ready
// outbound call. A single request becomes a plain URL (plus a multipart
// body for POST); two or more requests are multiplexed through the
// batch protocol: outer POST to the fixed API root, per-request batch
// entries, and a shared attachment table.
//
// An Encoder is immutable after construction and safe for concurrent
// use; each Build call owns its own serializer and attachment
// accumulator.
type Encoder struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewEncoder creates an encoder bound to cfg. A nil cfg uses the
// process-wide default configuration.
func NewEncoder(cfg *config.Config) *Encoder {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Encoder{cfg: cfg, log: zerolog.Nop()}
}

// WithLogger returns a copy of the encoder emitting debug events to
// log.
func (e *Encoder) WithLogger(log zerolog.Logger) *Encoder {
	return &Encoder{cfg: e.cfg, log: log}
}

// Prepared couples a transport-ready request with the original ordered
// descriptor list so callers can align responses to requests by
// position.
type Prepared struct {
	Request  *transport.Request
	Requests []*Request
}

// Build encodes the given requests into one outbound call. It fails
// fast on an empty list or a nil entry, before constructing any URL.
func (e *Encoder) Build(requests ...*Request) (*Prepared, error) {
	if len(requests) == 0 {
		return nil, ErrInvalidArgument("request list must not be empty", nil)
	}
	for i, r := range requests {
		if r == nil {
			return nil, ErrInvalidArgument("request list must not contain nil entries", map[string]interface{}{
				"index": i,
			})
		}
	}

	traceID := uuid.New().String()

	var (
		req *transport.Request
		err error
	)
	if len(requests) == 1 {
		req, err = e.buildSingle(requests[0], traceID)
	} else {
		req, err = e.buildBatch(requests, traceID)
	}
	if err != nil {
		return nil, err
	}

	return &Prepared{Request: req, Requests: requests}, nil
}

// buildSingle shapes one request as its own outbound call. Bodyless
// methods carry every string parameter in the query; POST keeps the
// URL bare and moves parameters, attachments, and the graph-object
// payload into a multipart body.
func (e *Encoder) buildSingle(r *Request, traceID string) (*transport.Request, error) {
	eff, err := e.effectiveParams(r)
	if err != nil {
		return nil, err
	}

	base := e.cfg.GraphURLBase + r.graphPath
	if r.restMethod != "" {
		base = e.cfg.RESTURLBase + r.restMethod
	}

	if r.method != http.MethodPost {
		u := base
		if q := queryString(eff); q != "" {
			u = base + "?" + q
		}
		e.log.Debug().
			Str("trace_id", traceID).
			Str("method", r.method).
			Str("url", u).
			Msg("encoded single request")
		return &transport.Request{
			URL:     u,
			Method:  r.method,
			Headers: map[string]string{userAgentHeader: e.cfg.UserAgent},
		}, nil
	}

	var objectJSON []byte
	if r.graphObject != nil {
		objectJSON, err = json.Marshal(r.graphObject)
		if err != nil {
			return nil, ErrEncodingFailure("could not serialize graph object", err)
		}
	}

	body := func(w io.Writer) error {
		s := protocol.NewSerializer(w)
		for _, key := range eff.Keys() {
			v, _ := eff.Get(key)
			if v.Kind() != TextKind {
				continue
			}
			if err := s.WriteString(key, v.Text()); err != nil {
				return ErrEncodingFailure(fmt.Sprintf("could not write parameter %q", key), err)
			}
		}
		if err := writeAttachmentParams(s, eff); err != nil {
			return err
		}
		if objectJSON != nil {
			if err := s.WriteString(protocol.ObjectParam, string(objectJSON)); err != nil {
				return ErrEncodingFailure("could not write graph object field", err)
			}
		}
		return nil
	}

	e.log.Debug().
		Str("trace_id", traceID).
		Str("method", r.method).
		Str("url", base).
		Msg("encoded single request")

	return &transport.Request{
		URL:    base,
		Method: http.MethodPost,
		Headers: map[string]string{
			userAgentHeader:   e.cfg.UserAgent,
			contentTypeHeader: protocol.MIMEContentType(),
		},
		Body: body,
	}, nil
}

// buildBatch multiplexes two or more requests through one POST to the
// API root. All validation, envelope construction, and application-id
// resolution happen here, before a single body byte can be produced.
func (e *Encoder) buildBatch(requests []*Request, traceID string) (*transport.Request, error) {
	appID := e.resolveAppID(requests)
	if appID == "" {
		return nil, ErrMissingAppID()
	}

	atts := protocol.NewAttachments()
	entries := make([]protocol.BatchEntry, 0, len(requests))
	for _, r := range requests {
		entry, err := e.batchEntry(r, atts)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	envelope, err := json.Marshal(entries)
	if err != nil {
		return nil, ErrEncodingFailure("could not serialize batch envelope", err)
	}

	e.log.Debug().
		Str("trace_id", traceID).
		Int("requests", len(requests)).
		Int("attachments", atts.Len()).
		Uint64("envelope_digest", xxhash.Sum64(envelope)).
		Msg("encoded batch request")

	body := func(w io.Writer) error {
		s := protocol.NewSerializer(w)
		if err := s.WriteString(protocol.BatchAppIDParam, appID); err != nil {
			return ErrEncodingFailure("could not write batch application id", err)
		}
		if err := s.WriteString(protocol.BatchParam, string(envelope)); err != nil {
			return ErrEncodingFailure("could not write batch envelope", err)
		}
		if err := atts.WriteTo(s); err != nil {
			return ErrEncodingFailure("could not write batch attachments", err)
		}
		return nil
	}

	return &transport.Request{
		URL:    e.cfg.GraphURL,
		Method: http.MethodPost,
		Headers: map[string]string{
			userAgentHeader:   e.cfg.UserAgent,
			contentTypeHeader: protocol.MIMEContentType(),
		},
		Body: body,
	}, nil
}

// batchEntry encodes one request as a batch entry, registering its
// binary parameters in the shared attachment accumulator.
func (e *Encoder) batchEntry(r *Request, atts *protocol.Attachments) (protocol.BatchEntry, error) {
	eff, err := e.effectiveParams(r)
	if err != nil {
		return protocol.BatchEntry{}, err
	}

	rel := r.graphPath
	if r.restMethod != "" {
		rel = protocol.BatchedRESTMethodURLBase + r.restMethod
	}
	if q := queryString(eff); q != "" {
		rel += "?" + q
	}

	entry := protocol.BatchEntry{
		Name:        r.batchEntryName,
		RelativeURL: rel,
		Method:      r.method,
	}
	if r.session != nil {
		entry.AccessToken = r.session.AccessToken()
	}

	var names []string
	for _, key := range eff.Keys() {
		v, _ := eff.Get(key)
		switch v.Kind() {
		case ImageKind:
			names = append(names, atts.AddImage(v.Image()))
		case BlobKind:
			names = append(names, atts.AddBlob(v.Blob()))
		}
	}
	if len(names) > 0 {
		entry.AttachedFiles = strings.Join(names, ",")
	}

	if r.graphObject != nil {
		b, err := json.Marshal(r.graphObject)
		if err != nil {
			return protocol.BatchEntry{}, ErrEncodingFailure("could not serialize graph object", err)
		}
		entry.Body = string(b)
	}

	return entry, nil
}

// effectiveParams validates the request's parameter values and returns
// a copy extended with the common parameters. The request itself is
// never mutated.
func (e *Encoder) effectiveParams(r *Request) (*Params, error) {
	eff := r.params.Clone()

	for _, key := range eff.Keys() {
		v, _ := eff.Get(key)
		switch v.Kind() {
		case TextKind, ImageKind, BlobKind:
		default:
			return nil, ErrUnsupportedValueType(key, v)
		}
		if v.IsAttachment() && r.method == http.MethodGet {
			return nil, ErrInvalidArgument("cannot use GET to upload a file", map[string]interface{}{
				"parameter": key,
			})
		}
	}

	eff.SetText(protocol.FormatParam, protocol.FormatJSON)
	eff.SetText(protocol.SDKParam, protocol.SDKGo)
	if r.session != nil && !eff.Has(protocol.AccessTokenParam) {
		eff.SetText(protocol.AccessTokenParam, r.session.AccessToken())
	}
	return eff, nil
}

// resolveAppID returns the application id of the first request with a
// session, falling back to the configured default.
func (e *Encoder) resolveAppID(requests []*Request) string {
	for _, r := range requests {
		if r.session != nil {
			return r.session.ApplicationID()
		}
	}
	return e.cfg.DefaultApplicationID
}

// writeAttachmentParams serializes the binary-valued parameters of a
// single request under their own parameter names, in insertion order.
func writeAttachmentParams(s *protocol.Serializer, p *Params) error {
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		var err error
		switch v.Kind() {
		case ImageKind:
			err = s.WriteImage(key, v.Image())
		case BlobKind:
			err = s.WriteBytes(key, v.Blob())
		default:
			continue
		}
		if err != nil {
			return ErrEncodingFailure(fmt.Sprintf("could not write attachment %q", key), err)
		}
	}
	return nil
}

// queryString renders the text parameters as an
// application/x-www-form-urlencoded query in insertion order.
func queryString(p *Params) string {
	var b strings.Builder
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		if v.Kind() != TextKind {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.Text()))
	}
	return b.String()
}
