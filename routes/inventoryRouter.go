package routes

import (
	controller "github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func InventoryRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/inventory", middleware.RequireCapability(permissions.CapManageInventory), controller.GetInventoryItems())
	incomingRoutes.POST("/inventory", middleware.RequireCapability(permissions.CapManageInventory), controller.CreateInventoryItem())
	incomingRoutes.PATCH("/inventory/:item_id", middleware.RequireCapability(permissions.CapManageInventory), controller.UpdateInventoryItem())
	incomingRoutes.DELETE("/inventory/:item_id", middleware.RequireCapability(permissions.CapManageInventory), controller.DeleteInventoryItem())

	incomingRoutes.GET("/providers", middleware.RequireCapability(permissions.CapManageInventory), controller.GetProviders())
	incomingRoutes.POST("/providers", middleware.RequireCapability(permissions.CapManageInventory), controller.CreateProvider())
	incomingRoutes.PATCH("/providers/:provider_id", middleware.RequireCapability(permissions.CapManageInventory), controller.UpdateProvider())
	incomingRoutes.DELETE("/providers/:provider_id", middleware.RequireCapability(permissions.CapManageInventory), controller.DeleteProvider())
}
