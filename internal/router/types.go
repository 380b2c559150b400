package router

// Intent is a label from the fixed classification taxonomy.
type Intent string

const (
	IntentProfile  Intent = "PROFILE"
	IntentHistory  Intent = "HISTORY"
	IntentRisk     Intent = "RISK"
	IntentAbsence  Intent = "ABSENCE"
	IntentGeneral  Intent = "GENERAL"
	IntentGreeting Intent = "GREETING"
)

// Taxonomy is the closed label set, in the fixed preference order used
// by the substring-recovery heuristic (first match wins). Keep this a
// slice, not a map: the scan order is part of the contract.
var Taxonomy = []Intent{
	IntentProfile,
	IntentHistory,
	IntentRisk,
	IntentAbsence,
	IntentGeneral,
	IntentGreeting,
}

// Valid reports whether the label is a taxonomy member.
func Valid(in Intent) bool {
	for _, v := range Taxonomy {
		if in == v {
			return true
		}
	}
	return false
}

// classifierOutput is the strict-JSON shape requested from the model.
type classifierOutput struct {
	Category  string `json:"category"`
	Reasoning string `json:"reasoning"`
}
