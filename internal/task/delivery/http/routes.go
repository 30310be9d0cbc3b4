package http

import (
	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Identity(), h.Create)
		tasks.GET("", mw.Identity(), h.List)
		tasks.GET("/:id", mw.Identity(), h.Detail)
		tasks.PUT("/:id", mw.Identity(), h.Update)
		tasks.POST("/:id/complete", mw.Identity(), h.Complete)
		tasks.DELETE("/:id", mw.Identity(), h.Delete)
	}
}
