package routes

import (
	controller "github.com/sebitservices/SaborHub-sub000/controllers"
	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}

func ProtectedUserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/users", middleware.RequireCapability(permissions.CapManageUsers), controller.GetUsers())
	incomingRoutes.GET("/users/:user_id", controller.GetUser())
	incomingRoutes.PATCH("/users/:user_id", middleware.RequireCapability(permissions.CapManageUsers), controller.UpdateUser())
}
