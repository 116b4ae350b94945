package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterClientRoutes registers client CRUD, import and export.
func RegisterClientRoutes(router *gin.Engine) {
	group := router.Group("/api/client")
	group.Use(middleware.AuthMiddleware())

	group.GET("", middleware.PermissionMiddleware("clients", "read"), controllers.ListClients)
	group.GET("/export", middleware.PermissionMiddleware("clients", "read"), controllers.ExportClients)
	group.GET("/:id", middleware.PermissionMiddleware("clients", "read"), controllers.GetClient)
	group.POST("", middleware.PermissionMiddleware("clients", "create"), controllers.CreateClient)
	group.PUT("/:id", middleware.PermissionMiddleware("clients", "update"), controllers.UpdateClient)
	group.DELETE("/:id", middleware.PermissionMiddleware("clients", "delete"), controllers.DeleteClient)
	group.POST("/import", middleware.PermissionMiddleware("clients", "create"), controllers.ImportClients)
}
