package middleware

import (
	"net/http"

	"github.com/2001Hector/api-movil/internal/envelope"

	"github.com/gin-gonic/gin"
)

// CORS sets the permissive headers the Expo client needs and answers
// preflight requests before routing — an OPTIONS to any path, valid or
// not, gets an empty success at 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatusJSON(http.StatusOK, envelope.Success(nil))
			return
		}
		c.Next()
	}
}
