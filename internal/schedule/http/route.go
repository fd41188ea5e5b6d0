package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware gin.HandlerFunc) {
	// === Public Routes ===
	g.GET("/business-hours", h.ListHours)
	g.GET("/disabled-dates", h.DisabledDates)
	g.GET("/holidays", h.ListHolidays)

	// === Authenticated Routes ===
	authGroup := g.Group("")
	authGroup.Use(authMiddleware)
	{
		authGroup.POST("/holidays", h.CreateHoliday)
		authGroup.DELETE("/holidays/:id", h.DeleteHoliday)
	}

	// === Staff Routes ===
	staffGroup := g.Group("")
	staffGroup.Use(authMiddleware, staffMiddleware)
	{
		staffGroup.POST("/business-hours", h.CreateHours)
		staffGroup.DELETE("/business-hours/:id", h.DeleteHours)
	}
}
