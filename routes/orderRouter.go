package routes

import (
	"github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", middleware.RequireCapability(permissions.CapViewOrders), controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", middleware.RequireCapability(permissions.CapViewOrders), controllers.GetOrder())
	incomingRoutes.GET("/tables/:table_id/order", middleware.RequireCapability(permissions.CapViewOrders), controllers.GetActiveOrderByTable())

	incomingRoutes.GET("/carts/:table_id", middleware.RequireCapability(permissions.CapTakeOrders), controllers.GetCart())
	incomingRoutes.POST("/carts/:table_id/lines", middleware.RequireCapability(permissions.CapTakeOrders), controllers.AddToCart())
	incomingRoutes.POST("/carts/:table_id/lines/:line_key/decrement", middleware.RequireCapability(permissions.CapTakeOrders), controllers.DecrementCartLine())
	incomingRoutes.DELETE("/carts/:table_id/lines/:line_key", middleware.RequireCapability(permissions.CapTakeOrders), controllers.RemoveCartLine())
	incomingRoutes.DELETE("/carts/:table_id", middleware.RequireCapability(permissions.CapTakeOrders), controllers.ClearCart())

	incomingRoutes.POST("/tables/:table_id/submit", middleware.RequireCapability(permissions.CapTakeOrders), controllers.SubmitCart())
	incomingRoutes.POST("/tables/:table_id/cancel", middleware.RequireCapability(permissions.CapCancelOrders), controllers.CancelOrder())
}
