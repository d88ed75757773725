package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotelcart/services/logger"
)

// RequestLogger ghi log mỗi request qua logger của ứng dụng
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		if status >= 500 {
			log.Error("%s %s %d %s session=%s", c.Request.Method, c.Request.URL.Path, status, latency, GetSessionID(c))
			return
		}
		log.Debug("%s %s %d %s session=%s", c.Request.Method, c.Request.URL.Path, status, latency, GetSessionID(c))
	}
}
