package sqlgen

import "clientatech-analyst/internal/router"

// GenerationRequest is the ephemeral input to a strategy generator.
type GenerationRequest struct {
	Question string
	Schema   string
}

// Result is the tagged outcome of one generation attempt. Err is nil
// on success. On failure SQL carries the textual sentinel
// serialization ("Error: ..."), which is what crosses plain-string
// boundaries like the cache guard; everything in-process should
// branch on Err, not on the string.
type Result struct {
	SQL string
	Err error
}

// Failed reports whether the generation produced no usable query.
func (r Result) Failed() bool { return r.Err != nil }

// Output is the dispatcher's routing decision.
// Invariant: SQL is empty if and only if Intent is the conversational
// label; every other intent carries a query string (possibly the
// error sentinel, in which case Err is set and the query must never
// reach the executor).
type Output struct {
	SQL      string
	Intent   router.Intent
	CacheHit bool
	Err      error
}
