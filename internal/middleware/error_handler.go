package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/card-rewards-gateway/internal/apperr"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// Upstream 4xx statuses pass through; everything else is mapped by apperr.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		if apperr.Kind(err) == apperr.KindInternal {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		}
		c.JSON(status, apperr.Response(err))
	}
}
