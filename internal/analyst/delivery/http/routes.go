package http

import (
	"github.com/gin-gonic/gin"

	"clientatech-analyst/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/ask", mw.RateLimit(), h.Ask)
}
