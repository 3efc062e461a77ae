package http

import (
	"catalog-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Mutating routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)
		items.POST("/:id/order", mw.RateLimit(), h.AdjustOrderCount)
	}

	rg.GET("/view", h.GetView)
	rg.PUT("/view", h.PutView)
	rg.DELETE("/view", h.ResetView)
	rg.GET("/images", h.Images)
}
