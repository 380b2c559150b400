package http

import (
	"github.com/gin-gonic/gin"

	"clientatech-analyst/internal/analyst"
	"clientatech-analyst/pkg/log"
)

// Handler is the public interface for the analyst HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analyst.UseCase
}

// New creates a new HTTP handler for the analyst domain.
func New(l log.Logger, uc analyst.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
