package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each HTTP request with its status and duration after
// the handler chain completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		log.Printf("%s %s -> %d (%dms)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration.Milliseconds())
	}
}
