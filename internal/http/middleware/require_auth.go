package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comercialsoares.com/app/internal/http/session"
)

// RequireAuth gates the API on the signed "logged in" cookie.
func RequireAuth(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if codec.IsLoggedIn(c) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":      "Faça login para continuar.",
			"request_id": GetRequestID(c),
		})
	}
}
