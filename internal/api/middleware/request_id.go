package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oaflow.io/oaflow/internal/workflow"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeyActor     contextKey = "actor"

	ginKeyActor = "actor"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SetActor stores the authenticated actor on the gin context.
func SetActor(c *gin.Context, actor workflow.Actor) {
	c.Set(ginKeyActor, actor)
}

// GetActor extracts the authenticated actor from the gin context.
func GetActor(c *gin.Context) (workflow.Actor, bool) {
	v, ok := c.Get(ginKeyActor)
	if !ok {
		return workflow.Actor{}, false
	}
	actor, ok := v.(workflow.Actor)
	return actor, ok
}

// SetUserContext stores authenticated user info in a plain context for
// code running below the gin layer.
func SetUserContext(ctx context.Context, actor workflow.Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext extracts the authenticated actor from a plain context.
func ActorFromContext(ctx context.Context) (workflow.Actor, bool) {
	actor, ok := ctx.Value(ctxKeyActor).(workflow.Actor)
	return actor, ok
}
