package constants

type ContextKey string

const (
	RequestIDKey   ContextKey = "request_id"
	AuthContextKey ContextKey = "auth_context"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "bearer"
)
