package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/soulverse/profile-server/internal/apierror"
)

// ErrorHandler drains errors pushed onto the context by handlers and renders
// the first one as the JSON error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors[0]
			apierror.ToResponse(c, err.Err)
		}
	}
}
