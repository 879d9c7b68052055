package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidID     = errors.New("invalid ID")
)

// respondError maps service errors to status codes. Unknown errors are
// answered with a sanitized message so no internals leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, apperror.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, "internal server error"))
	}
}
