package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/rbac"
	"go.uber.org/zap"
)

// RBACMiddleware rejects callers whose role is not granted the route. Must run after JWTMiddleware.
func RBACMiddleware(enforcer rbac.Enforcer, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)

		allowed, err := enforcer.Allowed(role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			log.WithContext(c.Request.Context()).Error("Authorization check failed", zap.Error(err))
			AbortWithError(c, domain.NewInternalError("Authorization check failed", err))
			return
		}
		if !allowed {
			log.WithContext(c.Request.Context()).Warn("Access denied",
				zap.String("role", role),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path))
			AbortWithError(c, domain.NewForbiddenError("Insufficient permissions"))
			return
		}

		c.Next()
	}
}
