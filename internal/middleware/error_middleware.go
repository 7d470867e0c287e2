package middleware

import (
	"errors"
	"net/http"

	"social-media/internal/transport/httpdto"
	social_errors "social-media/pkg/errors"
	"social-media/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler logs errors attached with c.Error and, when the handler has
// not written a body yet, answers with a generic internal error.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			fields := []zap.Field{zap.Error(err), zap.String("path", c.Request.URL.Path)}
			if errors.Is(err, social_errors.ErrRateLimited) {
				l.WarnCtx(c.Request.Context(), "request rejected", fields...)
			} else {
				l.ErrorCtx(c.Request.Context(), "request error", fields...)
			}
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("internal error", "INTERNAL_ERROR"))
	}
}
