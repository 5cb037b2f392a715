package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"articles_api/services"
)

const internalErrorMessage = "Internal server error"

// APIError carries the HTTP status a failure should be answered with.
// Message is sent to the client; Err is only logged.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func Unprocessable(message string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: message}
}

// ErrorHandler answers the last error a handler attached with c.Error. The
// body is always {message, code}; errors without a known status become a
// 500 whose details only go to the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "request failed",
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err))
		}
		c.JSON(status, gin.H{"message": message, "code": status})
	}
}

func statusFor(err error) (int, string) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status, apiErr.Message
	case errors.Is(err, services.ErrEmptyText), errors.Is(err, services.ErrNoTags):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// Recovery turns a panic into the same JSON 500 body as any other failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic while handling request",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": internalErrorMessage,
			"code":    http.StatusInternalServerError,
		})
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Route does not exist!", "code": http.StatusNotFound})
}
