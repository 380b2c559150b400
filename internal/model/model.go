package model

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// ContextKeyRequestID is the gin context key the request-id
// middleware stores its value under.
const ContextKeyRequestID = "request_id"

// Scope carries request-level metadata through the use cases.
type Scope struct {
	RequestID string
	Channel   string // "http", "chat"
}
