package ollama

import "context"

// IOllama is the Ollama client interface.
type IOllama interface {
	// Chat sends a non-streaming chat completion request.
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates an Ollama client.
func New(cfg Config) IOllama {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = DefaultHTTPClient()
	}
	return newOllamaImpl(cfg)
}
