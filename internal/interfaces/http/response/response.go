package response

import (
	"github.com/gin-gonic/gin"

	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/pkg/logger"

	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Errors that are not AppErrors are treated
// as server faults: logged, never swallowed, and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	appErr, ok := err.(*domainerrors.AppError)
	if !ok {
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= 500 {
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
