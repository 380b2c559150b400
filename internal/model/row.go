package model

import (
	"bytes"
	"encoding/json"
)

// Row is a single result row. Columns preserves the store's column
// order; Values maps column name to scalar value. The order matters
// because rows are serialized into synthesis prompts and profile
// cards, where a stable field order keeps output reproducible.
type Row struct {
	Columns []string
	Values  map[string]any
}

// Get returns the value for a column, nil when absent.
func (r Row) Get(column string) any {
	return r.Values[column]
}

// MarshalJSON renders the row as a JSON object in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
