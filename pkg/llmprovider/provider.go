package llmprovider

import "context"

// Provider defines the interface for LLM chat backends
type Provider interface {
	// Chat sends a chat request and returns the completion
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "ollama", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message represents a conversation message
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request represents a normalized chat request
type Request struct {
	Messages []Message

	// Temperature is nil for the model default. An explicit pointer to
	// 0.0 requests fully deterministic decoding.
	Temperature *float64
	MaxTokens   int

	// Component tags the call site for observability
	// (e.g., "intent_classifier", "sql_generator", "analyst_response").
	Component string
}

// Response represents a normalized chat response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Temperature is a convenience for building Request.Temperature.
func Temperature(t float64) *float64 { return &t }
