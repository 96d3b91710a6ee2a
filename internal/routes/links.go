package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/handlers"
	"github.com/surawits/vibeLink/internal/middleware"
)

// RegisterLinkRoutes wires the management API. Every route requires an
// authenticated principal; admin-only routes are gated per route.
func RegisterLinkRoutes(rg *gin.RouterGroup) {
	links := rg.Group("/links")
	links.Use(middleware.AuthMiddleware())
	{
		links.GET("", handlers.ListLinks)
		links.POST("", handlers.CreateLink)

		links.GET("/admin/all", middleware.AdminOnly(), handlers.AdminListAllLinks)
		links.GET("/config/delay", middleware.AdminOnly(), handlers.GetRedirectDelay)
		links.POST("/config/delay", middleware.AdminOnly(), handlers.SetRedirectDelay)

		links.PUT("/:id", handlers.UpdateLink)
		links.DELETE("/:id", handlers.DeleteLink)
		links.GET("/:id/stats", handlers.GetLinkStats)
		links.GET("/:id/stats/aggregated", handlers.GetAggregatedStats)
		links.DELETE("/:id/reset", handlers.ResetLinkStats)
		links.GET("/:id/export", handlers.ExportLinkStats)
	}

	rg.GET("/system-logs", middleware.AuthMiddleware(), middleware.AdminOnly(), handlers.GetSystemLogs)
}
