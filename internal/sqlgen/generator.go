package sqlgen

import (
	"context"
	"fmt"
	"strings"

	"clientatech-analyst/pkg/llmprovider"
	"clientatech-analyst/pkg/log"
)

// llmGenerator is the shared generation pipeline. Each intent strategy
// is one instance with its own system prompt; everything else (model
// call, extraction, validation, sentinel serialization) is identical.
type llmGenerator struct {
	name         string
	promptFormat string
	llm          ChatClient
	l            log.Logger
}

// Ensure llmGenerator implements Generator interface
var _ Generator = (*llmGenerator)(nil)

func newGenerator(name, promptFormat string, llm ChatClient, l log.Logger) *llmGenerator {
	return &llmGenerator{
		name:         name,
		promptFormat: promptFormat,
		llm:          llm,
		l:            l,
	}
}

// Generate runs one model call and gates the output through the
// read-only validator. Failures never raise: they come back tagged,
// with the textual sentinel in SQL for plain-string boundaries.
func (g *llmGenerator) Generate(ctx context.Context, req GenerationRequest) Result {
	resp, err := g.llm.Chat(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "system", Content: fmt.Sprintf(g.promptFormat, req.Schema)},
			{Role: "user", Content: req.Question},
		},
		Temperature: llmprovider.Temperature(GenerateTemperature),
		Component:   ComponentName,
	})
	if err != nil {
		g.l.Warnf(ctx, "sqlgen.%s: LLM call failed: %v", g.name, err)
		return Result{
			SQL: SentinelMarker + " " + err.Error(),
			Err: fmt.Errorf("%w: %v", ErrModelCall, err),
		}
	}

	sql := extractSQL(resp.Content)
	if !isReadOnlyQuery(sql) {
		g.l.Warnf(ctx, "sqlgen.%s: discarded non-query output: %q", g.name, truncate(resp.Content, 200))
		return Result{SQL: SentinelInvalidSQL, Err: ErrNotReadOnly}
	}

	return Result{SQL: sql}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
