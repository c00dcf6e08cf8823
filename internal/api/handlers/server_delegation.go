package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

type delegationBody struct {
	DelegateUserID *int `json:"delegate_user_id"`
}

// PutDelegation handles PUT /api/me/delegation. A null delegate_user_id
// clears the delegation.
func (s *Server) PutDelegation(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	var body delegationBody
	if !bindJSON(c, &body) {
		return
	}

	if err := s.workflows.SetDelegation(c.Request.Context(), act, body.DelegateUserID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetDelegation handles GET /api/me/delegation.
func (s *Server) GetDelegation(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	d, err := s.workflows.GetDelegation(c.Request.Context(), act)
	if err != nil {
		fail(c, err)
		return
	}
	if d == nil {
		c.JSON(http.StatusOK, gin.H{"delegation": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"delegation": gin.H{
			"delegate_user_id": d.DelegateUserID,
			"active":           d.Active,
			"revoked_at":       d.RevokedAt,
		},
	})
}
