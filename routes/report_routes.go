package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterReportRoutes registers aggregate reporting endpoints.
func RegisterReportRoutes(router *gin.Engine) {
	group := router.Group("/api/reports")
	group.Use(middleware.AuthMiddleware())

	group.GET("/followup-summary", middleware.PermissionMiddleware("reports", "read"), controllers.FollowupSummary)
}
