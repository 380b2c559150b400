package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRowMarshalJSON(t *testing.T) {
	t.Run("Preserves Column Order", func(t *testing.T) {
		row := Row{
			Columns: []string{"zeta", "alpha", "mid"},
			Values:  map[string]any{"zeta": 1, "alpha": "x", "mid": nil},
		}
		data, err := json.Marshal(row)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s := string(data)
		if !(strings.Index(s, `"zeta"`) < strings.Index(s, `"alpha"`) && strings.Index(s, `"alpha"`) < strings.Index(s, `"mid"`)) {
			t.Errorf("column order not preserved: %s", s)
		}
	})

	t.Run("Round Trips As Object", func(t *testing.T) {
		row := Row{
			Columns: []string{"nome", "valor_mensal"},
			Values:  map[string]any{"nome": "TechSolutions", "valor_mensal": 3500.0},
		}
		data, err := json.Marshal(row)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("output is not a JSON object: %v", err)
		}
		if decoded["nome"] != "TechSolutions" || decoded["valor_mensal"] != 3500.0 {
			t.Errorf("unexpected decoded values: %v", decoded)
		}
	})
}

func TestRowGet(t *testing.T) {
	row := Row{
		Columns: []string{"nome"},
		Values:  map[string]any{"nome": "EpsilonFood"},
	}
	if v := row.Get("nome"); v != "EpsilonFood" {
		t.Errorf("Get(nome) = %v", v)
	}
	if v := row.Get("missing"); v != nil {
		t.Errorf("expected nil for unknown column, got %v", v)
	}
}
