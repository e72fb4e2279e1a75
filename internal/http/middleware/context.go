package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/domain"
)

// Keys set on the gin context by the middleware chain
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyRole      = "role"
)

// ActorFromContext describes the authenticated caller and where the request came from
func ActorFromContext(c *gin.Context) domain.Actor {
	actor := domain.Actor{
		Username:  c.GetString(ContextKeyUsername),
		Role:      c.GetString(ContextKeyRole),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if id, ok := c.Get(ContextKeyUserID); ok {
		actor.UserID, _ = id.(int64)
	}
	return actor
}
