package middleware

import (
	"net/http"
	"strings"

	"fotoagenda/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware accepts bearer tokens signed with JWT_SECRET that
// carry the admin role.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if role, _ := claims["role"].(string); role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		subject, _ := claims["sub"].(string)
		c.Set("adminID", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
