package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in and out of the service
const RequestIDHeader = "X-Request-ID"

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware turns panics into a 500 error response
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	h.logger.WithContext(c.Request.Context()).Error("Panic recovered",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.ByteString("stack", debug.Stack()))

	AbortWithError(c, domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered)))
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. A handler that gave up on the
// deadline without writing a response gets a 408.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			h.logger.WithContext(ctx).Warn("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			AbortWithError(c, domain.NewAppError(domain.ErrCodeTimeout, "Request timeout", http.StatusRequestTimeout, ctx.Err()))
		}
	}
}

// AbortWithError writes err as the standard error envelope and stops the chain.
// Errors that are not an AppError are reported as a generic 500.
func AbortWithError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("", err)
	}

	appErr.RequestID = c.GetString(ContextKeyRequestID)
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method
	if userID, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := userID.(int64); ok {
			appErr.UserID = strconv.FormatInt(id, 10)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
}
