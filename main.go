package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sebitservices/SaborHub-sub000/middleware"
	"github.com/sebitservices/SaborHub-sub000/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	allowedOrigin := os.Getenv("CORS_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:9000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	router.Static("/uploads", uploadDir)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	routes.UserRoutes(router)
	router.Use(middleware.Authentication())
	routes.ProtectedUserRoutes(router)
	routes.TableRoutes(router)
	routes.MenuRoutes(router)
	routes.ProductRoutes(router)
	routes.OrderRoutes(router)
	routes.InventoryRoutes(router)

	router.Run(":" + port)
}
