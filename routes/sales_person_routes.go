package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterSalesPersonRoutes registers account management routes.
func RegisterSalesPersonRoutes(router *gin.Engine) {
	group := router.Group("/api/salesPerson")
	group.Use(middleware.AuthMiddleware())

	group.GET("", middleware.PermissionMiddleware("salesPersons", "read"), controllers.ListSalesPersons)
	group.GET("/:id", middleware.PermissionMiddleware("salesPersons", "read"), controllers.GetSalesPerson)
	group.POST("", middleware.PermissionMiddleware("salesPersons", "create"), controllers.CreateSalesPerson)
	group.PUT("/:id", middleware.PermissionMiddleware("salesPersons", "update"), controllers.UpdateSalesPerson)
	group.DELETE("/:id", middleware.PermissionMiddleware("salesPersons", "delete"), controllers.DeleteSalesPerson)
	group.POST("/import", middleware.PermissionMiddleware("salesPersons", "create"), controllers.ImportSalesPersons)
}
