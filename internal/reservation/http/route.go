package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/availability", h.Availability)

	group := g.Group("/reservations")

	// === Authenticated Routes ===
	authGroup := group.Group("")
	authGroup.Use(authMiddleware)
	{
		authGroup.POST("", h.Create)
		authGroup.GET("", h.List)
		authGroup.GET("/:id", h.Get)
	}

	// === Staff Routes ===
	staffGroup := group.Group("")
	staffGroup.Use(authMiddleware, staffMiddleware)
	{
		staffGroup.PATCH("/:id", h.Update)
		staffGroup.DELETE("/:id", h.Delete)
	}
}
