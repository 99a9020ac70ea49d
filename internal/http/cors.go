package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// apiPrefix scopes the CORS contract: every response under it carries
// the permissive headers, and preflight requests get an empty 204.
const apiPrefix = "/api/"

// CORSMiddleware applies the API's cross-origin policy. It runs as
// global middleware so unregistered /api/ paths (served by NoRoute)
// and preflight requests for any method are covered too.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
