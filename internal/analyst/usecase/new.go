package usecase

import (
	"context"
	"time"

	"clientatech-analyst/internal/analyst"
	"clientatech-analyst/internal/sqlgen"
	"clientatech-analyst/internal/warehouse"
	"clientatech-analyst/pkg/datemath"
	"clientatech-analyst/pkg/llmprovider"
	pkgLog "clientatech-analyst/pkg/log"
)

// ChatClient is the slice of the LLM manager the synthesizer needs.
type ChatClient interface {
	Chat(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	dispatcher sqlgen.Dispatcher
	store      warehouse.Store
	llm        ChatClient
	dateMath   *datemath.Parser

	// now is swappable for tests
	now func() time.Time
}

// Ensure implUseCase implements the analyst boundary
var _ analyst.UseCase = (*implUseCase)(nil)

// New creates a new analyst UseCase instance.
func New(
	l pkgLog.Logger,
	dispatcher sqlgen.Dispatcher,
	store warehouse.Store,
	llm ChatClient,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:          l,
		dispatcher: dispatcher,
		store:      store,
		llm:        llm,
		dateMath:   dateMath,
		now:        time.Now,
	}
}
