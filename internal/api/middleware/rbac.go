package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin returns middleware that allows only admin actors through.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "not_authenticated",
				"message": "no authenticated user in context",
			})
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "not_authorized",
				"message": "admin role required",
			})
			return
		}
		c.Next()
	}
}
