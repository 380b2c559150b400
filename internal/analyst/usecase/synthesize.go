package usecase

import (
	"context"
	"fmt"

	"clientatech-analyst/internal/model"
	"clientatech-analyst/internal/router"
	"clientatech-analyst/pkg/llmprovider"
)

// synthesize turns a result set into a natural-language answer in the
// intent's style. Empty data sets short-circuit to a fixed message so
// the model never gets to narrate records it did not receive. A failed
// synthesis call degrades to a raw rendering of the data instead of
// failing the request: at that point the data work already succeeded.
func (uc *implUseCase) synthesize(ctx context.Context, question, sql string, rows []model.Row, intent router.Intent) string {
	if len(rows) == 0 && intent != router.IntentGreeting {
		uc.logSynthesis(ctx, intent, "empty_result")
		return EmptyResultMessage
	}

	dataJSON := renderRows(rows)
	resp, err := uc.llm.Chat(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:    "system",
				Content: fmt.Sprintf(promptSynthesisFormat, string(intent), uc.dateMath.Today(uc.now())),
			},
			{
				Role:    "user",
				Content: fmt.Sprintf(promptSynthesisUserFormat, question, sql, dataJSON, string(intent)),
			},
		},
		Component: ComponentName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.synthesize: LLM call failed: %v", err)
		uc.logSynthesis(ctx, intent, "degraded")
		return fmt.Sprintf("Encontrei %d registro(s), mas não consegui formatar a resposta. Dados brutos: %s", len(rows), dataJSON)
	}

	uc.logSynthesis(ctx, intent, "synthesized")
	return resp.Content
}

func (uc *implUseCase) logSynthesis(ctx context.Context, intent router.Intent, outcome string) {
	uc.l.Info(ctx, "synthesis",
		"component", ComponentName,
		"intent", string(intent),
		"outcome", outcome,
	)
}
