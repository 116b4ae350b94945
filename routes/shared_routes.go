package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterSharedRoutes registers the bulk operations shared across record
// families.
func RegisterSharedRoutes(router *gin.Engine) {
	group := router.Group("/api/shared")
	group.Use(middleware.AuthMiddleware())

	group.POST("/delete-multiple", middleware.PermissionMiddleware("records", "delete"), controllers.DeleteMultiple)
	group.POST("/update-status", middleware.PermissionMiddleware("records", "update"), controllers.UpdateStatus)
	group.POST("/delete-multiple-users", middleware.PermissionMiddleware("salesPersons", "delete"), controllers.DeleteMultipleUsers)
}
