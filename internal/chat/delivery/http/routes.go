package http

import (
	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.Identity(), h.SendMessage)
	}
}
