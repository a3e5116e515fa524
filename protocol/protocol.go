// Package protocol implements the SocialGrid wire protocol: endpoint
// bases, multipart/form-data framing, and the batch envelope format.
package protocol

// Server endpoints. The graph base hosts resource paths ("me/photos");
// the REST base hosts legacy method names. Batched calls always go to
// GraphURL and carry per-entry relative URLs.
const (
	GraphURL     = "https://graph.socialgrid.io"
	GraphURLBase = "https://graph.socialgrid.io/"
	RESTURLBase  = "https://api.socialgrid.io/method/"

	// BatchedRESTMethodURLBase prefixes REST method names inside a
	// batch entry's relative_url.
	BatchedRESTMethodURLBase = "method/"
)

// Well-known parameter names and values.
const (
	FormatParam      = "format"
	FormatJSON       = "json"
	SDKParam         = "sdk"
	SDKGo            = "go"
	AccessTokenParam = "access_token"

	BatchParam      = "batch"
	BatchAppIDParam = "batch_app_id"
	ObjectParam     = "object"

	AttachedFilesParam   = "attached_files"
	AttachmentNamePrefix = "file"
)

// MIMEBoundary is the fixed boundary token shared by every request this
// client emits. A per-request random token would be more robust against
// payloads containing the token; the protocol pins it instead so that
// request bodies stay byte-deterministic.
const MIMEBoundary = "5gQ2hk3vRfam9BouNdArYtoKeNsGriDw7Xp0c1z"

// Content types declared for binary fields.
const (
	ContentTypePNG     = "image/png"
	ContentTypeUnknown = "content/unknown"
)

// MIMEContentType returns the Content-Type header value for multipart
// request bodies.
func MIMEContentType() string {
	return "multipart/form-data; boundary=" + MIMEBoundary
}
