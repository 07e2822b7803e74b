package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "saas-admin.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps err onto its AppError status and code. Sentinels from the import
// pipeline are translated; anything unknown becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithCode sends an error response with a specific status and code
func ErrorWithCode(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
