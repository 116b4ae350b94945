package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterRemarkRoutes registers remark listing, creation and bulk creation.
func RegisterRemarkRoutes(router *gin.Engine) {
	group := router.Group("/api/remarks")
	group.Use(middleware.AuthMiddleware())

	group.GET("", middleware.PermissionMiddleware("remarks", "read"), controllers.ListRemarks)
	group.POST("", middleware.PermissionMiddleware("remarks", "create"), controllers.CreateRemark)
	group.POST("/bulk", middleware.PermissionMiddleware("remarks", "create"), controllers.CreateRemarksBulk)
	group.DELETE("/:id", middleware.PermissionMiddleware("remarks", "delete"), controllers.DeleteRemark)
}
