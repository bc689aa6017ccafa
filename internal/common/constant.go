package common

const (
	// AuthTokenHeaderName is the HTTP header used to carry the session token
	// on outbound requests.
	AuthTokenHeaderName = "X-Auth-Token"

	// RequestIDHeaderName carries a client-generated id for request tracing.
	RequestIDHeaderName = "X-Request-Id"

	// MinPasswordLength is the minimum accepted password length, checked
	// locally before any network call.
	MinPasswordLength = 6

	// PublicationFee is the fixed charge (in rubles) an organizer pays to
	// make a created event visible to other users.
	PublicationFee = 150
)
