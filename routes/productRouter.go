package routes

import (
	controller "github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func ProductRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/products", controller.GetProducts())
	incomingRoutes.GET("/products/:product_id", controller.GetProduct())
	incomingRoutes.GET("/productsbysection/:section_id", controller.GetProductsBySection())
	incomingRoutes.POST("/products", middleware.RequireCapability(permissions.CapManageMenu), controller.CreateProduct())
	incomingRoutes.PATCH("/products/:product_id", middleware.RequireCapability(permissions.CapManageMenu), controller.UpdateProduct())
	incomingRoutes.DELETE("/products/:product_id", middleware.RequireCapability(permissions.CapManageMenu), controller.DeleteProduct())
	incomingRoutes.POST("/products/:product_id/image", middleware.RequireCapability(permissions.CapManageMenu), controller.UploadProductImage())
}
