package middleware

import (
	"net/http"

	"github.com/sebitservices/SaborHub-sub000/helpers"
	"github.com/sebitservices/SaborHub-sub000/permissions"

	"github.com/gin-gonic/gin"
)

func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("uid", claims.Uid)
		c.Set("user_role", claims.User_role)
		c.Next()
	}
}

// RequireCapability gates a route on the caller's role capability set.
// Must run after Authentication.
func RequireCapability(cap permissions.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if !permissions.Allows(role, cap) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
