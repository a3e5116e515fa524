package graph

// Session is the authentication collaborator attached to a request.
// Token acquisition, refresh, and storage are outside this core; the
// encoder only reads the two identity values it needs. Requests hold a
// session by reference and never own its lifecycle.
type Session interface {
	// AccessToken returns the bearer token sent as the access_token
	// parameter.
	AccessToken() string

	// ApplicationID identifies the application the session belongs to,
	// used to resolve the batch_app_id of a mixed-identity batch.
	ApplicationID() string
}
