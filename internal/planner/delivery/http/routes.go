package http

import (
	"github.com/gin-gonic/gin"

	"agentic-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/prompt", mw.RateLimit(), h.ProcessPrompt)
}
