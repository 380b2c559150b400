package sqlgen

import (
	"context"

	"clientatech-analyst/internal/router"
	"clientatech-analyst/pkg/llmprovider"
)

// Generator produces one SQL query for one intent strategy. It never
// returns an error: failures come back as a tagged Result.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) Result
}

// Dispatcher is the cache-then-generate pipeline entry point.
type Dispatcher interface {
	// Route resolves a question to SQL: cache lookup first, then
	// classification and strategy generation. Conversational questions
	// come back with empty SQL and the conversational intent.
	Route(ctx context.Context, question string) Output
}

// ChatClient is the slice of the LLM manager the generators need.
type ChatClient interface {
	Chat(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Classifier is the slice of the intent router the dispatcher needs.
type Classifier interface {
	Classify(ctx context.Context, question string) router.Intent
}
