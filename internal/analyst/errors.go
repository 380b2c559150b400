package analyst

import "errors"

var (
	// ErrEmptyQuestion means the input had no usable text.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrSQLGeneration means the pipeline could not produce a valid
	// query for the question.
	ErrSQLGeneration = errors.New("sql generation failed")

	// ErrQueryExecution means the warehouse rejected the generated
	// query.
	ErrQueryExecution = errors.New("query execution failed")
)
