package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clientatech-analyst/internal/analyst"
	"clientatech-analyst/internal/model"
	"clientatech-analyst/internal/router"
)

// Ask runs one question through the pipeline: SQL resolution, then
// execution, then synthesis. Conversational questions skip execution
// entirely.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input analyst.AskInput) (analyst.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return analyst.AskOutput{}, analyst.ErrEmptyQuestion
	}

	start := time.Now()

	routed := uc.dispatcher.Route(ctx, question)
	if routed.Intent == router.IntentGreeting {
		answer := uc.synthesize(ctx, question, conversationalSQLPlaceholder, nil, routed.Intent)
		uc.logRequest(ctx, sc, routed.Intent, 0, routed.CacheHit, start)
		return analyst.AskOutput{
			Answer: answer,
			Intent: string(routed.Intent),
		}, nil
	}
	if routed.Err != nil {
		uc.l.Errorf(ctx, "uc.Ask: sql generation failed: %v", routed.Err)
		return analyst.AskOutput{}, fmt.Errorf("%w: %v", analyst.ErrSQLGeneration, routed.Err)
	}

	execStart := time.Now()
	rows, err := uc.store.Execute(ctx, routed.SQL)
	uc.logExecution(ctx, len(rows), err, execStart)
	if err != nil {
		// The generated SQL travels with the error so callers can see
		// what the warehouse actually rejected.
		uc.l.Errorf(ctx, "uc.Ask: execute %q: %v", routed.SQL, err)
		return analyst.AskOutput{
			Intent:   string(routed.Intent),
			SQL:      routed.SQL,
			CacheHit: routed.CacheHit,
		}, fmt.Errorf("%w: %v", analyst.ErrQueryExecution, err)
	}

	answer := uc.synthesize(ctx, question, routed.SQL, rows, routed.Intent)
	uc.logRequest(ctx, sc, routed.Intent, len(rows), routed.CacheHit, start)

	return analyst.AskOutput{
		Answer:   answer,
		Intent:   string(routed.Intent),
		SQL:      routed.SQL,
		RowCount: len(rows),
		CacheHit: routed.CacheHit,
	}, nil
}

func (uc *implUseCase) logExecution(ctx context.Context, rows int, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	uc.l.Info(ctx, "sql_execution",
		"duration_ms", time.Since(start).Milliseconds(),
		"rows", rows,
		"status", status,
	)
}

func (uc *implUseCase) logRequest(ctx context.Context, sc model.Scope, intent router.Intent, rows int, cacheHit bool, start time.Time) {
	uc.l.Info(ctx, "analyst_request",
		"request_id", sc.RequestID,
		"intent", string(intent),
		"rows", rows,
		"cache_hit", cacheHit,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
