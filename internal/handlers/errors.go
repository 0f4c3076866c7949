package handlers

import (
	"errors"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service-layer error onto the HTTP response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrAuthenticationFailed):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		utils.Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrInvalidOperation):
		utils.BadRequest(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
