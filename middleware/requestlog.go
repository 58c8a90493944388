package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RequestLog appends one timestamped line per request to a rolling local
// log file. The file is diagnostic only, never machine-consumed. Each
// request also gets an id echoed back in X-Request-Id.
func RequestLog(path string) gin.HandlerFunc {
	logger := log.New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}, "", 0)

	return func(c *gin.Context) {
		rid := uuid.NewString()
		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-Id", rid)

		logger.Printf("[%s] [REQ] %s %s", time.Now().UTC().Format(time.RFC3339), c.Request.Method, c.Request.URL.Path)

		start := time.Now()
		c.Next()

		logger.Printf("[%s] [RES] %s %s status=%d latency=%s id=%s",
			time.Now().UTC().Format(time.RFC3339),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			rid,
		)
	}
}
