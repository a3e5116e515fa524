package graph

import (
	"fmt"
	"image"
	"net/http"
	"strconv"
	"strings"
)

// Well-known graph paths.
const (
	Me        = "me"
	MyFriends = "me/friends"
	MyPhotos  = "me/photos"
	Search    = "search"
)

// PictureParam is the parameter name photo uploads are carried under.
const PictureParam = "picture"

// Request describes one logical graph call: a path (or REST method
// name), an HTTP method, ordered parameters, and optionally a session,
// a graph-object payload, and a batch entry name. It is a one-shot
// input to the encoder and is never mutated after construction.
//
// Any HTTP method string is accepted; GET, POST, and DELETE carry
// special encoding semantics, everything else passes through to the
// server unvalidated. Batch entry names, when used, must be unique
// within one batch; uniqueness is the caller's responsibility.
type Request struct {
	session        Session
	method         string
	graphPath      string
	restMethod     string
	graphObject    interface{}
	batchEntryName string
	params         *Params
}

// NewRequest creates a request for graphPath. The method defaults to
// GET when empty and is normalized to uppercase. params may be nil; it
// is copied, so later changes to the caller's Params do not leak in.
func NewRequest(session Session, graphPath string, params *Params, method string) *Request {
	r := &Request{
		session:   session,
		graphPath: graphPath,
		params:    NewParams(),
	}
	if params != nil {
		r.params = params.Clone()
	}
	if method == "" {
		method = http.MethodGet
	}
	r.method = strings.ToUpper(method)
	return r
}

// NewPostRequest creates a POST request carrying graphObject as its
// JSON payload.
func NewPostRequest(session Session, graphPath string, graphObject interface{}) *Request {
	r := NewRequest(session, graphPath, nil, http.MethodPost)
	r.graphObject = graphObject
	return r
}

// NewRESTRequest creates a request against the legacy REST protocol.
// The REST method name takes precedence over any graph path.
func NewRESTRequest(session Session, restMethod string, params *Params, method string) *Request {
	r := NewRequest(session, "", params, method)
	r.restMethod = restMethod
	return r
}

// NewMeRequest creates a GET request for the current user.
func NewMeRequest(session Session) *Request {
	return NewRequest(session, Me, nil, http.MethodGet)
}

// NewMyFriendsRequest creates a GET request for the current user's
// friend list.
func NewMyFriendsRequest(session Session) *Request {
	return NewRequest(session, MyFriends, nil, http.MethodGet)
}

// NewUploadPhotoRequest creates a POST request uploading img to the
// current user's photos. The image is re-encoded to PNG on the wire.
func NewUploadPhotoRequest(session Session, img image.Image) *Request {
	params := NewParams()
	params.SetImage(PictureParam, img)
	return NewRequest(session, MyPhotos, params, http.MethodPost)
}

// NewPlacesSearchRequest creates a GET request searching for places
// around a coordinate. searchText is optional.
func NewPlacesSearchRequest(session Session, latitude, longitude float64, radiusMeters, resultsLimit int, searchText string) *Request {
	params := NewParams()
	params.SetText("type", "place")
	params.SetText("limit", strconv.Itoa(resultsLimit))
	params.SetText("distance", strconv.Itoa(radiusMeters))
	params.SetText("center", formatCenter(latitude, longitude))
	if searchText != "" {
		params.SetText("q", searchText)
	}
	return NewRequest(session, Search, params, http.MethodGet)
}

// formatCenter renders a coordinate pair with fixed six-digit
// precision. strconv never localizes, so the decimal separator is '.'
// on every host.
func formatCenter(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', 6, 64) + "," + strconv.FormatFloat(longitude, 'f', 6, 64)
}

// WithBatchEntryName returns a copy of the request carrying name,
// which later entries in the same batch can reference through the
// server's result-substitution syntax. This layer only passes the name
// through.
func (r *Request) WithBatchEntryName(name string) *Request {
	c := *r
	c.batchEntryName = name
	return &c
}

// Session returns the request's session reference, or nil.
func (r *Request) Session() Session { return r.session }

// Method returns the normalized uppercase HTTP method.
func (r *Request) Method() string { return r.method }

// GraphPath returns the graph resource path.
func (r *Request) GraphPath() string { return r.graphPath }

// RESTMethod returns the legacy REST method name, or "".
func (r *Request) RESTMethod() string { return r.restMethod }

// GraphObject returns the opaque JSON payload, or nil.
func (r *Request) GraphObject() interface{} { return r.graphObject }

// BatchEntryName returns the batch entry name, or "".
func (r *Request) BatchEntryName() string { return r.batchEntryName }

// Params returns a copy of the request's ordered parameters.
func (r *Request) Params() *Params {
	return r.params.Clone()
}

// String returns a debug representation.
func (r *Request) String() string {
	return fmt.Sprintf("{Request: session: %v, graphPath: %s, restMethod: %s, httpMethod: %s, params: %d}",
		r.session, r.graphPath, r.restMethod, r.method, r.params.Len())
}
