package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"oaflow.io/oaflow/ent"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/workflow"
)

// pathID parses a positive integer path parameter. On failure it records a
// not_found error, matching the lookup contract for dangling ids.
func pathID(c *gin.Context, name, what string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		fail(c, apperrors.NotFound(apperrors.CodeNotFound, what+" not found"))
		return 0, false
	}
	return id, true
}

type createRequestBody struct {
	Type     string                 `json:"type"`
	Workflow *string                `json:"workflow"`
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Payload  map[string]interface{} `json:"payload"`
}

// CreateRequest handles POST /api/requests.
func (s *Server) CreateRequest(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	var body createRequestBody
	if !bindJSON(c, &body) {
		return
	}

	req, err := s.workflows.CreateRequest(c.Request.Context(), act, workflow.CreateInput{
		Type:     body.Type,
		Workflow: body.Workflow,
		Title:    body.Title,
		Body:     body.Body,
		Payload:  body.Payload,
	})
	if err != nil {
		fail(c, err)
		return
	}

	sum, err := s.workflows.Summary(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRequestJSON(sum))
}

// ListRequests handles GET /api/requests. Supports scope=default|mine|all,
// a free-text q filter, and format=csv for exports.
func (s *Server) ListRequests(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	scope := workflow.ListScope(c.DefaultQuery("scope", string(workflow.ScopeDefault)))
	q := strings.TrimSpace(c.Query("q"))

	rows, err := s.workflows.ListRequests(c.Request.Context(), act, scope, q)
	if err != nil {
		fail(c, err)
		return
	}

	if strings.EqualFold(c.Query("format"), "csv") {
		s.writeRequestsCSV(c, rows)
		return
	}

	items := make([]requestJSON, 0, len(rows))
	for _, row := range rows {
		items = append(items, toRequestJSON(row))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) writeRequestsCSV(c *gin.Context, rows []workflow.RequestSummary) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "type", "title", "body", "status", "owner_username", "created_at"})
	for _, row := range rows {
		r := row.Request
		_ = w.Write([]string{
			strconv.Itoa(r.ID),
			r.RequestType,
			r.Title,
			r.Body,
			string(r.Status),
			row.OwnerUsername,
			r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="requests.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(buf.String()))
}

// GetRequest handles GET /api/requests/:id.
func (s *Server) GetRequest(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	detail, err := s.workflows.GetRequest(c.Request.Context(), act, id)
	if err != nil {
		fail(c, err)
		return
	}

	files, err := s.attachments.ListForRequest(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	tasks := make([]taskJSON, 0, len(detail.Tasks))
	for _, t := range detail.Tasks {
		tasks = append(tasks, toTaskJSON(t, detail.Usernames))
	}
	events := make([]eventJSON, 0, len(detail.Events))
	for _, e := range detail.Events {
		events = append(events, toEventJSON(e, detail.Usernames))
	}
	watchers := make([]watcherJSON, 0, len(detail.Watchers))
	for _, w := range detail.Watchers {
		watchers = append(watchers, toWatcherJSON(w, detail.Usernames))
	}
	attachmentItems := make([]attachmentJSON, 0, len(files))
	for _, a := range files {
		attachmentItems = append(attachmentItems, toAttachmentJSON(a))
	}

	c.JSON(http.StatusOK, gin.H{
		"request":     toRequestJSON(detail.Summary),
		"tasks":       tasks,
		"events":      events,
		"watchers":    watchers,
		"attachments": attachmentItems,
	})
}

// decideNewest approves or rejects the newest pending task of a request.
func (s *Server) decideNewest(c *gin.Context, decision string) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	req, err := s.workflows.DecideNewest(c.Request.Context(), act, id, decision)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

// ApproveRequest handles POST /api/requests/:id/approve.
func (s *Server) ApproveRequest(c *gin.Context) { s.decideNewest(c, "approved") }

// RejectRequest handles POST /api/requests/:id/reject.
func (s *Server) RejectRequest(c *gin.Context) { s.decideNewest(c, "rejected") }

type resubmitBody struct {
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Payload map[string]interface{} `json:"payload"`
}

// Resubmit handles POST /api/requests/:id/resubmit.
func (s *Server) Resubmit(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	var body resubmitBody
	if !bindJSON(c, &body) {
		return
	}

	req, err := s.workflows.Resubmit(c.Request.Context(), act, id, workflow.ResubmitInput{
		Title:   body.Title,
		Body:    body.Body,
		Payload: body.Payload,
	})
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

// Withdraw handles POST /api/requests/:id/withdraw.
func (s *Server) Withdraw(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	req, err := s.workflows.Withdraw(c.Request.Context(), act, id)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

// Void handles POST /api/requests/:id/void. Admin only.
func (s *Server) Void(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	req, err := s.workflows.Void(c.Request.Context(), act, id)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondRequest(c, http.StatusOK, req)
}

type watchersBody struct {
	Kind    string `json:"kind"`
	UserIDs []int  `json:"user_ids"`
}

// AddWatchers handles POST /api/requests/:id/watchers.
func (s *Server) AddWatchers(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}

	var body watchersBody
	if !bindJSON(c, &body) {
		return
	}

	if err := s.workflows.AddWatchers(c.Request.Context(), act, id, body.Kind, body.UserIDs); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Inbox handles GET /api/inbox.
func (s *Server) Inbox(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	items, err := s.workflows.Inbox(c.Request.Context(), act)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]inboxItemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, toInboxItemJSON(item))
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// respondRequest serializes an enriched request row.
func (s *Server) respondRequest(c *gin.Context, status int, req *ent.Request) {
	sum, err := s.workflows.Summary(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(status, toRequestJSON(sum))
}
