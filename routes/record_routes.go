package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvika404/jewel-ai-sub000/controllers"
	"github.com/dhruvika404/jewel-ai-sub000/middleware"
)

// recordHandlers bundles the per-entity handler set so all four record
// families register the same route shape.
type recordHandlers struct {
	list          gin.HandlerFunc
	get           gin.HandlerFunc
	create        gin.HandlerFunc
	update        gin.HandlerFunc
	delete        gin.HandlerFunc
	importRows    gin.HandlerFunc
	export        gin.HandlerFunc
	listFollowups gin.HandlerFunc
	addFollowup   gin.HandlerFunc
}

func registerRecordGroup(router *gin.Engine, path string, h recordHandlers) {
	group := router.Group(path)
	group.Use(middleware.AuthMiddleware())

	group.GET("", middleware.PermissionMiddleware("records", "read"), h.list)
	group.GET("/export", middleware.PermissionMiddleware("records", "read"), h.export)
	group.GET("/followups", middleware.PermissionMiddleware("records", "read"), h.listFollowups)
	group.POST("/followups", middleware.PermissionMiddleware("records", "followup"), h.addFollowup)
	group.GET("/:id", middleware.PermissionMiddleware("records", "read"), h.get)
	group.POST("", middleware.PermissionMiddleware("records", "create"), h.create)
	group.PUT("/:id", middleware.PermissionMiddleware("records", "update"), h.update)
	group.DELETE("/:id", middleware.PermissionMiddleware("records", "delete"), h.delete)
	group.POST("/import", middleware.PermissionMiddleware("records", "create"), h.importRows)
}

// RegisterRecordRoutes registers the four follow-up record families.
func RegisterRecordRoutes(router *gin.Engine) {
	registerRecordGroup(router, "/api/newOrder", recordHandlers{
		list:          controllers.ListNewOrders,
		get:           controllers.GetNewOrder,
		create:        controllers.CreateNewOrder,
		update:        controllers.UpdateNewOrder,
		delete:        controllers.DeleteNewOrder,
		importRows:    controllers.ImportNewOrders,
		export:        controllers.ExportNewOrders,
		listFollowups: controllers.ListNewOrderFollowups,
		addFollowup:   controllers.AddNewOrderFollowup,
	})

	registerRecordGroup(router, "/api/pendingOrder", recordHandlers{
		list:          controllers.ListPendingOrders,
		get:           controllers.GetPendingOrder,
		create:        controllers.CreatePendingOrder,
		update:        controllers.UpdatePendingOrder,
		delete:        controllers.DeletePendingOrder,
		importRows:    controllers.ImportPendingOrders,
		export:        controllers.ExportPendingOrders,
		listFollowups: controllers.ListPendingOrderFollowups,
		addFollowup:   controllers.AddPendingOrderFollowup,
	})

	registerRecordGroup(router, "/api/pendingMaterial", recordHandlers{
		list:          controllers.ListPendingMaterials,
		get:           controllers.GetPendingMaterial,
		create:        controllers.CreatePendingMaterial,
		update:        controllers.UpdatePendingMaterial,
		delete:        controllers.DeletePendingMaterial,
		importRows:    controllers.ImportPendingMaterials,
		export:        controllers.ExportPendingMaterials,
		listFollowups: controllers.ListPendingMaterialFollowups,
		addFollowup:   controllers.AddPendingMaterialFollowup,
	})

	registerRecordGroup(router, "/api/cadOrder", recordHandlers{
		list:          controllers.ListCadOrders,
		get:           controllers.GetCadOrder,
		create:        controllers.CreateCadOrder,
		update:        controllers.UpdateCadOrder,
		delete:        controllers.DeleteCadOrder,
		importRows:    controllers.ImportCadOrders,
		export:        controllers.ExportCadOrders,
		listFollowups: controllers.ListCadOrderFollowups,
		addFollowup:   controllers.AddCadOrderFollowup,
	})
}
