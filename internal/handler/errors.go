package handler

import (
	"errors"
	"net/http"

	"social-media/internal/transport/httpdto"
	social_errors "social-media/pkg/errors"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors to status codes. A missing update
// target is a bad request, not a 404. Unknown errors are handed to the
// ErrorHandler middleware, which logs them and answers 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, social_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(social_errors.Reason(err), "INVALID_INPUT"))
	case errors.Is(err, social_errors.ErrConflict):
		c.JSON(http.StatusConflict, httpdto.NewErrorResponse(social_errors.Reason(err), "CONFLICT"))
	case errors.Is(err, social_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("invalid credentials", "UNAUTHORIZED"))
	case errors.Is(err, social_errors.ErrNotFound):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(social_errors.Reason(err), "NOT_FOUND"))
	default:
		_ = c.Error(err)
	}
}

func writeBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(msg, "INVALID_REQUEST"))
}
