package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/resources")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Staff Routes ===
	staffGroup := group.Group("")
	staffGroup.Use(authMiddleware, staffMiddleware)
	{
		staffGroup.POST("", h.Create)
		staffGroup.PATCH("/:id", h.Update)
		staffGroup.DELETE("/:id", h.Delete)
	}
}
