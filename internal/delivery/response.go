package delivery

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the failure in the API's wire shape: a single "detail"
// field carrying the raw message.
func ErrorResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}
