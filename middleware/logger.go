package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"HospitalHub/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's request id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		evt := logger.Info()
		if len(c.Errors) > 0 {
			evt = logger.Error().Str("errors", c.Errors.String())
		} else if c.Writer.Status() >= http.StatusInternalServerError {
			evt = logger.Error()
		}
		evt.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("remote_ip", c.ClientIP()).
			Msg("request")
	}
}

func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var stack [4096]byte
				n := runtime.Stack(stack[:], false)
				logger.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("panic", r).
					Str("stack", string(stack[:n])).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					util.FailedResponse(fmt.Errorf("panic: %v", r)))
			}
		}()
		c.Next()
	}
}
