package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// RegisterAuthRoutes registers login and password management.
func RegisterAuthRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")

	authGroup.POST("/login", controllers.Login)

	// password reset is admin-only
	authGroup.PUT("/set-password",
		middleware.AuthMiddleware(),
		middleware.PermissionMiddleware("salesPersons", "update"),
		controllers.SetPassword)
}
