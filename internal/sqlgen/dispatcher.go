package sqlgen

import (
	"context"

	"clientatech-analyst/internal/router"
	"clientatech-analyst/internal/sqlgen/repository"
	"clientatech-analyst/pkg/log"
)

// PipelineDispatcher implements the cache-first routing pipeline:
// cache lookup, then classification, then strategy generation, then
// persistence of successful generations.
type PipelineDispatcher struct {
	cache      repository.Repository
	classifier Classifier
	strategies *strategyTable
	schema     string
	l          log.Logger
}

// Ensure PipelineDispatcher implements Dispatcher interface
var _ Dispatcher = (*PipelineDispatcher)(nil)

// NewDispatcher wires the pipeline. schema is the warehouse schema
// text rendered once at startup; every generation prompt embeds it.
func NewDispatcher(cache repository.Repository, classifier Classifier, llm ChatClient, schema string, l log.Logger) *PipelineDispatcher {
	return &PipelineDispatcher{
		cache:      cache,
		classifier: classifier,
		strategies: newStrategyTable(llm, l),
		schema:     schema,
		l:          l,
	}
}

// Route resolves a question to SQL. A cache hit short-circuits the
// whole pipeline: no classification, no generation. Conversational
// questions exit after classification with empty SQL and are never
// cached.
func (d *PipelineDispatcher) Route(ctx context.Context, question string) Output {
	if entry, found, err := d.cache.Lookup(ctx, question); err != nil {
		// A broken cache must not break the pipeline; fall through to
		// generation.
		d.l.Warnf(ctx, "dispatcher: cache lookup failed: %v", err)
	} else if found {
		return Output{
			SQL:      entry.SQL,
			Intent:   router.Intent(entry.Intent),
			CacheHit: true,
		}
	}

	intent := d.classifier.Classify(ctx, question)
	if intent == router.IntentGreeting {
		return Output{Intent: intent}
	}

	result := d.strategies.forIntent(intent).Generate(ctx, GenerationRequest{
		Question: question,
		Schema:   d.schema,
	})
	d.logGeneration(ctx, intent, result)
	if result.Failed() {
		return Output{SQL: result.SQL, Intent: intent, Err: result.Err}
	}

	// Save is best effort: losing a cache write costs one future
	// regeneration, not correctness.
	if err := d.cache.Save(ctx, question, result.SQL, string(intent)); err != nil {
		d.l.Warnf(ctx, "dispatcher: cache save failed: %v", err)
	}

	return Output{SQL: result.SQL, Intent: intent}
}

func (d *PipelineDispatcher) logGeneration(ctx context.Context, intent router.Intent, result Result) {
	outcome := "generated"
	if result.Failed() {
		outcome = "failed"
	}
	d.l.Info(ctx, "sql_generation",
		"component", ComponentName,
		"intent", string(intent),
		"outcome", outcome,
	)
}
