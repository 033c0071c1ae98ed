package middleware

// ContextKey is a private key type so context values set here cannot collide
// with other packages.
type ContextKey string

const (
	// TokenEmailCtxKey holds the email claim of the verified bearer token.
	TokenEmailCtxKey = ContextKey("token_email")

	// RequestIDCtxKey holds the id assigned to the request by the logging
	// middleware.
	RequestIDCtxKey = ContextKey("request_id")
)
