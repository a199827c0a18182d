package middleware

import (
	"net/http"

	"github.com/Lejoon/mortage-repayment/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and answers with the API's standard
// error envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
