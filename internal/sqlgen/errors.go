package sqlgen

import "errors"

// Generation failure modes. Both are absorbed into Result — callers
// see a tagged failure, never a raised error.
var (
	// ErrModelCall means the backend call itself failed.
	ErrModelCall = errors.New("model call failed")

	// ErrNotReadOnly means the extracted text did not start with a
	// read-only query keyword and was discarded.
	ErrNotReadOnly = errors.New("model output is not a read-only query")
)
