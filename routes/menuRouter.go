package routes

import (
	controller "github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/sections", controller.GetMenuSections())
	incomingRoutes.GET("/sections/open", controller.GetOpenMenuSections())
	incomingRoutes.GET("/sections/:section_id", controller.GetMenuSection())
	incomingRoutes.POST("/sections", middleware.RequireCapability(permissions.CapManageMenu), controller.CreateMenuSection())
	incomingRoutes.PATCH("/sections/:section_id", middleware.RequireCapability(permissions.CapManageMenu), controller.UpdateMenuSection())
	incomingRoutes.DELETE("/sections/:section_id", middleware.RequireCapability(permissions.CapManageMenu), controller.DeleteMenuSection())
}
