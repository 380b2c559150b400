package ollama

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the local Ollama daemon endpoint.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultTimeout bounds a single chat call. Local models can be
	// slow on first load, so this is generous.
	DefaultTimeout = 180 * time.Second
)

// DefaultHTTPClient is used when Config.HTTPClient is nil.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
