package ollama

import "net/http"

// Config holds client configuration.
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Options are per-request decoding options. Temperature is a pointer
// so an explicit 0.0 (deterministic decoding) is distinguishable from
// "use the model default".
type Options struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

// Request is a chat completion request.
type Request struct {
	Messages []Message
	Options  Options
}

// Response is a chat completion response with token accounting.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// chatRequest is the wire form of /api/chat.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Options  *Options  `json:"options,omitempty"`
}

// chatResponse is the non-streaming wire response of /api/chat.
type chatResponse struct {
	Model           string  `json:"model"`
	Message         Message `json:"message"`
	Done            bool    `json:"done"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}
