package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every feature's routes onto the engine.
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)
	RegisterSalesPersonRoutes(router)
	RegisterClientRoutes(router)
	RegisterRecordRoutes(router)
	RegisterRemarkRoutes(router)
	RegisterSharedRoutes(router)
	RegisterReportRoutes(router)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
