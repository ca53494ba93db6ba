package routes

import (
	controller "github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/tables", controller.GetTables())
	incomingRoutes.GET("/tables/:table_id", controller.GetTable())
	incomingRoutes.GET("/tables/:table_id/qr", controller.GetTableQR())
	incomingRoutes.POST("/tables", middleware.RequireCapability(permissions.CapManageTables), controller.CreateTable())
	incomingRoutes.PATCH("/tables/:table_id", middleware.RequireCapability(permissions.CapManageTables), controller.UpdateTable())
	incomingRoutes.DELETE("/tables/:table_id", middleware.RequireCapability(permissions.CapManageTables), controller.DeleteTable())

	incomingRoutes.POST("/tables/join", middleware.RequireCapability(permissions.CapTakeOrders), controller.JoinTables())
	incomingRoutes.POST("/tables/:table_id/unjoin", middleware.RequireCapability(permissions.CapTakeOrders), controller.UnjoinTable())

	incomingRoutes.GET("/areas", controller.GetAreas())
	incomingRoutes.POST("/areas", middleware.RequireCapability(permissions.CapManageAreas), controller.CreateArea())
	incomingRoutes.PATCH("/areas/:area_id", middleware.RequireCapability(permissions.CapManageAreas), controller.UpdateArea())
	incomingRoutes.DELETE("/areas/:area_id", middleware.RequireCapability(permissions.CapManageAreas), controller.DeleteArea())
}
