package router

import (
	"context"

	"clientatech-analyst/pkg/llmprovider"
	"clientatech-analyst/pkg/log"
)

// Router is the interface for intent classification.
type Router interface {
	// Classify maps free text to exactly one taxonomy label.
	// It is total: every failure mode degrades to FallbackIntent.
	Classify(ctx context.Context, question string) Intent
}

// ChatClient is the slice of the LLM manager the classifier needs.
type ChatClient interface {
	Chat(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// IntentRouter classifies user questions with a model call.
type IntentRouter struct {
	llm ChatClient
	l   log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter
func New(llm ChatClient, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm: llm,
		l:   l,
	}
}
