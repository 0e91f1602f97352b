package controllers

import (
	"ems/errors"
	"ems/response"

	"github.com/gin-gonic/gin"
)

// handleError ánh xạ AppError sang mã HTTP tương ứng
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c, "", err)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeEmployeeNotFound,
		errors.ErrCodeAttendanceNotFound,
		errors.ErrCodeUserNotFound,
		errors.ErrCodeDBNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeDBError:
		response.ServerError(c, appErr.Message, appErr.Err)
	case errors.ErrCodeUnauthorized,
		errors.ErrCodeInvalidToken,
		errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}
