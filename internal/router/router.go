package router

import (
	"context"
	"encoding/json"
	"strings"

	"clientatech-analyst/pkg/llmprovider"
)

// Classify determines the user's intent. It never returns an error:
// a broken model call, malformed JSON, or an unknown label all
// degrade to FallbackIntent so the request keeps flowing.
func (r *IntentRouter) Classify(ctx context.Context, question string) Intent {
	resp, err := r.llm.Chat(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "system", Content: PromptClassifySystem},
			{Role: "user", Content: question},
		},
		Temperature: llmprovider.Temperature(ClassifyTemperature),
		Component:   ComponentName,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixClassify, err)
		r.logOutcome(ctx, FallbackIntent, "llm_error")
		return FallbackIntent
	}

	content := stripCodeFence(strings.TrimSpace(resp.Content))

	var out classifierOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		// No retry: a second call costs another model roundtrip and
		// the fallback label is always a safe answer.
		r.l.Warnf(ctx, "%s: JSON parse failed, content=%q: %v", LogPrefixClassify, content, err)
		r.logOutcome(ctx, FallbackIntent, "parse_error")
		return FallbackIntent
	}

	intent := normalizeLabel(out.Category)
	r.l.Debugf(ctx, "%s: reasoning=%q", LogPrefixClassify, out.Reasoning)
	r.logOutcome(ctx, intent, "classified")
	return intent
}

// normalizeLabel maps raw model output onto the taxonomy. Exact match
// first, then the substring heuristic over Taxonomy in its fixed
// preference order — this recovers labels the model wrapped in prose.
func normalizeLabel(raw string) Intent {
	clean := Intent(strings.ToUpper(strings.TrimSpace(raw)))
	if Valid(clean) {
		return clean
	}

	for _, candidate := range Taxonomy {
		if strings.Contains(string(clean), string(candidate)) {
			return candidate
		}
	}

	return FallbackIntent
}

// stripCodeFence removes a markdown fence if the model wrapped the
// JSON in one (```json ... ``` or ``` ... ```).
func stripCodeFence(content string) string {
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	} else {
		return content
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func (r *IntentRouter) logOutcome(ctx context.Context, intent Intent, outcome string) {
	r.l.Info(ctx, "intent_classification",
		"component", ComponentName,
		"intent", string(intent),
		"outcome", outcome,
	)
}
