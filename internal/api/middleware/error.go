package middleware

import (
	"fmt"
	"net/http"

	"draft-value/internal/api/models"
	"draft-value/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		message := "An unexpected error occurred"
		if msg, ok := recovered.(string); ok {
			message = msg
		}
		logger.WithHTTPContext(log, c.Request.Method, c.Request.URL.Path, c.Request.UserAgent()).
			WithField("panic", fmt.Sprint(recovered)).
			Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: message},
		})
	})
}

// ErrorLogger logs errors attached to the context by handlers.
func ErrorLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, err := range c.Errors {
			logger.WithHTTPContext(log, c.Request.Method, c.Request.URL.Path, c.Request.UserAgent()).
				WithError(err.Err).
				Error("Request error")
		}
	}
}
