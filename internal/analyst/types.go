package analyst

// AskInput is the user question to analyze.
type AskInput struct {
	Question string
}

// AskOutput is the synthesized answer plus the pipeline trace the
// delivery layer exposes for transparency.
type AskOutput struct {
	Answer   string
	Intent   string
	SQL      string
	RowCount int
	CacheHit bool
}
