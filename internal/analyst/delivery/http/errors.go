package http

import (
	"errors"

	"clientatech-analyst/internal/analyst"
	pkgErrors "clientatech-analyst/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analyst.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(400, "question is required")
	case errors.Is(err, analyst.ErrSQLGeneration):
		return pkgErrors.NewHTTPError(422, "could not generate a query for this question")
	case errors.Is(err, analyst.ErrQueryExecution):
		return pkgErrors.NewHTTPError(422, "generated query was rejected by the database")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
