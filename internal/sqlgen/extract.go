package sqlgen

import "strings"

// extractSQL pulls the SQL statement out of a raw model completion.
// Preference order: a ```sql fenced block, then any ``` fenced block,
// then the raw text. The result is trimmed; no validation happens
// here.
func extractSQL(content string) string {
	content = strings.TrimSpace(content)

	if sql, ok := fencedBlock(content, "```sql"); ok {
		return sql
	}
	if sql, ok := fencedBlock(content, "```"); ok {
		return sql
	}
	return content
}

// fencedBlock returns the body of the first markdown fence opened by
// marker, if present anywhere in the text.
func fencedBlock(content, marker string) (string, bool) {
	start := strings.Index(content, marker)
	if start < 0 {
		return "", false
	}
	body := content[start+len(marker):]
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body), true
}

// isReadOnlyQuery is the validation gate: only statements starting
// with SELECT or WITH (case-insensitive) may reach the executor.
func isReadOnlyQuery(sql string) bool {
	upper := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH")
}
