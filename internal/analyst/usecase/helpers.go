package usecase

import (
	"encoding/json"

	"clientatech-analyst/internal/model"
)

// renderRows serializes the result set as a JSON array of objects,
// preserving the warehouse column order. nil rows render as [].
func renderRows(rows []model.Row) string {
	if len(rows) == 0 {
		return "[]"
	}
	data, err := json.Marshal(rows)
	if err != nil {
		// Row values come from database/sql scans, which are always
		// marshalable; this path is unreachable in practice.
		return "[]"
	}
	return string(data)
}
