// Package handlers implements the HTTP API. Handlers bind and validate
// input, call the domain services, and serialize responses; business rules
// live in the service packages. Errors are pushed onto the gin error stack
// and rendered by the ErrorHandler middleware.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/api/middleware"
	"oaflow.io/oaflow/internal/attachments"
	"oaflow.io/oaflow/internal/catalog"
	"oaflow.io/oaflow/internal/notification"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/workflow"
)

// Server holds the handler dependencies.
type Server struct {
	client        *ent.Client
	pool          *pgxpool.Pool
	jwtCfg        middleware.JWTConfig
	workflows     *workflow.Service
	catalog       *catalog.Service
	notifications *notification.Service
	attachments   *attachments.Store
}

// ServerDeps holds all dependencies for creating a Server. Manual DI, no
// Wire/Dig.
type ServerDeps struct {
	EntClient     *ent.Client
	Pool          *pgxpool.Pool
	JWTCfg        middleware.JWTConfig
	Workflows     *workflow.Service
	Catalog       *catalog.Service
	Notifications *notification.Service
	Attachments   *attachments.Store
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:        deps.EntClient,
		pool:          deps.Pool,
		jwtCfg:        deps.JWTCfg,
		workflows:     deps.Workflows,
		catalog:       deps.Catalog,
		notifications: deps.Notifications,
		attachments:   deps.Attachments,
	}
}

// actor extracts the authenticated actor placed by the JWT middleware. The
// bool is false only when a route was registered outside the auth group.
func actor(c *gin.Context) (workflow.Actor, bool) {
	return middleware.GetActor(c)
}

// fail records err for the ErrorHandler middleware and aborts the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes an optional JSON body. An absent body leaves out at its
// zero value; a present but malformed body records invalid_payload.
func bindJSON(c *gin.Context, out interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(out); err != nil {
		fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "malformed JSON body"))
		return false
	}
	return true
}
