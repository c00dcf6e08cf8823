package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

type commentBody struct {
	Comment string `json:"comment"`
}

func (b commentBody) comment() *string {
	trimmed := strings.TrimSpace(b.Comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// decideTask approves or rejects one concrete task by id.
func (s *Server) decideTask(c *gin.Context, decision string) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var body commentBody
	if !bindJSON(c, &body) {
		return
	}

	req, err := s.workflows.Decide(c.Request.Context(), act, id, decision, body.comment())
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

// ApproveTask handles POST /api/tasks/:id/approve.
func (s *Server) ApproveTask(c *gin.Context) { s.decideTask(c, "approved") }

// RejectTask handles POST /api/tasks/:id/reject.
func (s *Server) RejectTask(c *gin.Context) { s.decideTask(c, "rejected") }

// ReturnTask handles POST /api/tasks/:id/return. Sends the request back to
// its owner for changes.
func (s *Server) ReturnTask(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var body commentBody
	if !bindJSON(c, &body) {
		return
	}

	req, err := s.workflows.Return(c.Request.Context(), act, id, body.comment())
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

type assigneeBody struct {
	AssigneeUserID *int `json:"assignee_user_id"`
}

// TransferTask handles POST /api/tasks/:id/transfer.
func (s *Server) TransferTask(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var body assigneeBody
	if !bindJSON(c, &body) {
		return
	}
	if body.AssigneeUserID == nil {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "assignee_user_id is required"))
		return
	}

	req, err := s.workflows.Transfer(c.Request.Context(), act, id, *body.AssigneeUserID)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

// AddSignTask handles POST /api/tasks/:id/addsign. Extends the current
// approval group with one more approver.
func (s *Server) AddSignTask(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var body assigneeBody
	if !bindJSON(c, &body) {
		return
	}
	if body.AssigneeUserID == nil {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "assignee_user_id is required"))
		return
	}

	req, err := s.workflows.AddSign(c.Request.Context(), act, id, *body.AssigneeUserID)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}
