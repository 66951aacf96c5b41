package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"fotopanel/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	UserIDKey     = "user_id"
	RoleKey       = "Role"
	CustomerIDKey = "customer_id"
)

func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		if claims.CustomerID != "" {
			c.Set(CustomerIDKey, claims.CustomerID)
		}
		c.Next()
	}
}

// RoleMiddleware lets the request through when the caller has any of roles.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}
