package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

// quietRoutes are polled by orchestrators and scrapers; successful hits are
// logged at debug.
var quietRoutes = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/metrics": true,
}

// Logger writes one access line per request. Tool invocations carry the tool
// name, and the last handler error is attached when there is one.
func Logger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		case quietRoutes[route]:
			event = logger.Debug()
		default:
			event = logger.Info()
		}

		event = event.
			Int("status", status).
			Str("method", c.Request.Method).
			Str("route", route).
			Str("path", path).
			Str("query", query).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Str("request_id", requestid.FromContext(c.Request.Context()))

		if tool := c.Param("name"); tool != "" {
			event = event.Str("tool", tool)
		}
		if last := c.Errors.Last(); last != nil {
			event = event.AnErr("error", last.Err)
		}
		event.Msg("request")
	}
}
