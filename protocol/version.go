package protocol

// Version is the SDK release version reported in the User-Agent header
// and the sdk marker parameter.
const Version = "0.3.0"

// UserAgent returns the User-Agent header value for outbound requests.
func UserAgent() string {
	return "SocialGridGoSDK/" + Version
}
