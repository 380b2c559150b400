package llmprovider

import (
	"context"

	"clientatech-analyst/pkg/ollama"
	"clientatech-analyst/pkg/openai"
)

// OllamaAdapter adapts pkg/ollama to the Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// Chat implements Provider
func (a *OllamaAdapter) Chat(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]ollama.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, ollama.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.Chat(ctx, &ollama.Request{
		Messages: messages,
		Options:  ollama.Options{Temperature: req.Temperature},
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptTokens,
			OutputTokens: resp.CompletionTokens,
			TotalTokens:  resp.PromptTokens + resp.CompletionTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the Provider interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Chat implements Provider
func (a *OpenAIAdapter) Chat(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.Chat(ctx, &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptTokens,
			OutputTokens: resp.CompletionTokens,
			TotalTokens:  resp.PromptTokens + resp.CompletionTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
