package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "estate-hub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response following the
// {success: false, message, error} contract
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	// Echo the message unless the error carries a concrete cause; bare
	// taxonomy sentinels add nothing the message does not already say.
	errText := appErr.Message
	if appErr.Err != nil && !domainerrors.IsSentinel(appErr.Err) {
		errText = appErr.Err.Error()
	}

	c.JSON(appErr.Code, gin.H{
		"success": false,
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   errText,
	})
}
