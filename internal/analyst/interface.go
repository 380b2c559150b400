package analyst

import (
	"context"

	"clientatech-analyst/internal/model"
)

// UseCase defines the business logic interface for the analyst domain.
type UseCase interface {
	// Ask runs the full pipeline for one question: SQL resolution
	// (cache or generation), warehouse execution, and natural-language
	// synthesis of the result set.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)
}
