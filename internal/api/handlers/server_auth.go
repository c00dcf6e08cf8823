package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/internal/api/middleware"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/pkg/logger"
)

// defaultUserPermissions is what a non-admin role grants. Admins get the
// wildcard instead.
var defaultUserPermissions = []string{
	"requests:create",
	"requests:read_own",
	"inbox:read",
	"notifications:read",
	"attachments:upload_own",
	"attachments:download_own",
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "malformed JSON body"))
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "username and password are required"))
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(req.Username)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials", zap.String("username", req.Username))
		fail(c, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials", zap.String("username", req.Username))
		fail(c, apperrors.Unauthorized(apperrors.CodeInvalidCredentials, "invalid username or password"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user)
	if err != nil {
		fail(c, apperrors.Wrap(err, "internal_error", "failed to generate token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"id":         user.ID,
		"username":   user.Username,
		"role":       user.Role,
	})
}

// Me handles GET /api/me.
func (s *Server) Me(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	permissions := defaultUserPermissions
	if act.IsAdmin() {
		permissions = []string{"*"}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          act.ID,
		"username":    act.Username,
		"role":        act.Role,
		"dept":        act.Dept,
		"manager_id":  act.ManagerID,
		"permissions": permissions,
	})
}
