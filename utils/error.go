package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is an error with a fixed HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Messages match what existing web clients already display.
var (
	ErrMissingToken = &APIError{Status: http.StatusPaymentRequired, Message: "unauthorized your token"}
	ErrInvalidToken = &APIError{Status: http.StatusForbidden, Message: "unAthorized access"}
	ErrForbidden    = &APIError{Status: http.StatusForbidden, Message: "forbidden verify"}
	ErrInvalidID    = &APIError{Status: http.StatusBadRequest, Message: "invalid identifier"}
)

func NewBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps err to its response status and client-facing message.
// Anything that is not an APIError is an internal error.
func StatusFor(err error) (int, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}
	return http.StatusInternalServerError, "internal server error"
}

// ErrorHandler recovers panics and renders the last error attached with
// c.Error when the handler wrote no response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				RequestLogger(c).Error("Unhandled panic", zap.Any("error", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   true,
					Message: "internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, message := StatusFor(err)
		logger := RequestLogger(c)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		} else {
			logger.Warn(message, zap.Int("status", status), zap.Error(err))
		}
		c.JSON(status, ErrorResponse{Error: true, Message: message})
	}
}
