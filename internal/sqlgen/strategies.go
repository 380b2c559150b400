package sqlgen

import (
	"clientatech-analyst/internal/router"
	"clientatech-analyst/pkg/log"
)

// strategyTable is the fixed intent-to-generator dispatch table.
// GREETING has no entry: conversational questions never generate SQL.
// Unknown intents fall back to the general generator.
type strategyTable struct {
	generators map[router.Intent]Generator
	general    Generator
}

func newStrategyTable(llm ChatClient, l log.Logger) *strategyTable {
	general := newGenerator("general", promptGeneral, llm, l)
	return &strategyTable{
		generators: map[router.Intent]Generator{
			router.IntentProfile: newGenerator("profile", promptProfile, llm, l),
			router.IntentHistory: newGenerator("history", promptHistory, llm, l),
			router.IntentRisk:    newGenerator("risk", promptRisk, llm, l),
			router.IntentAbsence: newGenerator("absence", promptAbsence, llm, l),
			router.IntentGeneral: general,
		},
		general: general,
	}
}

// forIntent resolves the generator for a data intent. Callers must
// filter the conversational intent before calling.
func (t *strategyTable) forIntent(intent router.Intent) Generator {
	if g, ok := t.generators[intent]; ok {
		return g
	}
	return t.general
}
