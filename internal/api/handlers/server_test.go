package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/api/middleware"
	"oaflow.io/oaflow/internal/attachments"
	"oaflow.io/oaflow/internal/catalog"
	"oaflow.io/oaflow/internal/config"
	"oaflow.io/oaflow/internal/notification"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/testutil"
	"oaflow.io/oaflow/internal/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newTestServer(t *testing.T, prefix string) (*Server, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	server := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte("handler-test-signing-key"),
			Issuer:     "oaflow-test",
			ExpiresIn:  time.Hour,
		},
		Workflows:     workflow.NewService(client),
		Catalog:       catalog.NewService(client),
		Notifications: notification.NewService(client),
		Attachments: attachments.NewStore(client, config.AttachmentsConfig{
			Dir:      t.TempDir(),
			MaxBytes: 1 << 20,
		}),
	})
	return server, client
}

func actorOf(u *ent.User) workflow.Actor {
	return workflow.Actor{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Dept:      u.Dept,
		ManagerID: u.ManagerID,
	}
}

// testRouter mirrors the production route table with the JWT middleware
// replaced by a fixed actor.
func testRouter(s *Server, act *workflow.Actor) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if act != nil {
		a := *act
		r.Use(func(c *gin.Context) {
			middleware.SetActor(c, a)
			c.Request = c.Request.WithContext(middleware.SetUserContext(c.Request.Context(), a))
			c.Next()
		})
	}

	r.POST("/api/login", s.Login)
	r.GET("/api/me", s.Me)
	r.GET("/api/me/delegation", s.GetDelegation)
	r.PUT("/api/me/delegation", s.PutDelegation)
	r.GET("/api/inbox", s.Inbox)
	r.POST("/api/requests", s.CreateRequest)
	r.GET("/api/requests", s.ListRequests)
	r.GET("/api/requests/:id", s.GetRequest)
	r.POST("/api/requests/:id/approve", s.ApproveRequest)
	r.POST("/api/requests/:id/reject", s.RejectRequest)
	r.POST("/api/requests/:id/resubmit", s.Resubmit)
	r.POST("/api/requests/:id/withdraw", s.Withdraw)
	r.POST("/api/requests/:id/void", s.Void)
	r.POST("/api/requests/:id/watchers", s.AddWatchers)
	r.POST("/api/requests/:id/attachments", s.UploadAttachment)
	r.GET("/api/attachments/:id/download", s.DownloadAttachment)
	r.POST("/api/tasks/:id/approve", s.ApproveTask)
	r.POST("/api/tasks/:id/reject", s.RejectTask)
	r.POST("/api/tasks/:id/return", s.ReturnTask)
	r.POST("/api/tasks/:id/transfer", s.TransferTask)
	r.POST("/api/tasks/:id/addsign", s.AddSignTask)
	r.GET("/api/workflows", s.ListWorkflows)
	r.GET("/api/notifications", s.ListNotifications)
	r.GET("/api/notifications/unread_count", s.UnreadNotifications)
	r.POST("/api/notifications/:id/read", s.MarkNotificationRead)
	r.GET("/api/org/tree", s.OrgTree)

	admin := r.Group("", middleware.RequireAdmin())
	admin.GET("/api/users", s.ListUsers)
	admin.POST("/api/users/:id", s.UpdateUser)
	admin.GET("/api/admin/workflows", s.AdminListWorkflows)
	admin.GET("/api/admin/workflows/:key", s.AdminGetWorkflow)
	admin.POST("/api/admin/workflows", s.AdminUpsertWorkflow)
	admin.DELETE("/api/admin/workflows/:key", s.AdminDeleteWorkflow)
	admin.GET("/api/admin/departments", s.ListDepartments)
	admin.POST("/api/admin/departments", s.CreateDepartment)

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	code, _ := body["code"].(string)
	return code
}

func TestMe_AdminGetsWildcardPermissions(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_me")

	admin := testutil.CreateUser(t, client, "root", testutil.WithRole("admin"))
	adminAct := actorOf(admin)
	w := doJSON(t, testRouter(server, &adminAct), http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, []interface{}{"*"}, body["permissions"])

	user := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))
	userAct := actorOf(user)
	w = doJSON(t, testRouter(server, &userAct), http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	perms, ok := body["permissions"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, perms, "requests:create")
	assert.NotContains(t, perms, "*")
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_lifecycle")

	admin := testutil.CreateUser(t, client, "root", testutil.WithRole("admin"))
	owner := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"), testutil.WithManager(admin.ID))
	testutil.CreateVariant(t, client, "leave_basic", "leave", true,
		testutil.Step("mgr", "manager", ""),
	)

	ownerAct := actorOf(owner)
	ownerRouter := testRouter(server, &ownerAct)

	w := doJSON(t, ownerRouter, http.MethodPost, "/api/requests", gin.H{
		"type":  "leave",
		"title": "PTO",
		"body":  "two days off",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "pending", created["status"])
	reqID := int(created["id"].(float64))

	pending, ok := created["pending_task"].(map[string]interface{})
	require.True(t, ok, "expected a pending task in the create response")
	taskID := int(pending["id"].(float64))

	// A stranger cannot read someone else's request.
	stranger := testutil.CreateUser(t, client, "mallory", testutil.WithRole("user"))
	strangerAct := actorOf(stranger)
	w = doJSON(t, testRouter(server, &strangerAct), http.MethodGet, fmt.Sprintf("/api/requests/%d", reqID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_authorized", errorCode(t, w))

	// The manager approves through the task endpoint.
	adminAct := actorOf(admin)
	adminRouter := testRouter(server, &adminAct)
	w = doJSON(t, adminRouter, http.MethodPost, fmt.Sprintf("/api/tasks/%d/approve", taskID), gin.H{"comment": "ok"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "approved", decode(t, w)["status"])

	// Re-deciding the same task conflicts.
	w = doJSON(t, adminRouter, http.MethodPost, fmt.Sprintf("/api/tasks/%d/approve", taskID), nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "task_already_decided", errorCode(t, w))

	// The owner sees the decided request with full detail.
	w = doJSON(t, ownerRouter, http.MethodGet, fmt.Sprintf("/api/requests/%d", reqID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	reqBody := detail["request"].(map[string]interface{})
	assert.Equal(t, "approved", reqBody["status"])
	assert.NotEmpty(t, detail["tasks"])
	assert.NotEmpty(t, detail["events"])
}

func TestListRequestsScopesAndCSV(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_list")

	owner := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))
	other := testutil.CreateUser(t, client, "bob", testutil.WithRole("user"))

	ownerAct := actorOf(owner)
	ownerRouter := testRouter(server, &ownerAct)
	w := doJSON(t, ownerRouter, http.MethodPost, "/api/requests", gin.H{"title": "mine", "body": "b"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	otherAct := actorOf(other)
	otherRouter := testRouter(server, &otherAct)

	// Non-admin scope=all is rejected.
	w = doJSON(t, otherRouter, http.MethodGet, "/api/requests?scope=all", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Default scope hides foreign requests.
	w = doJSON(t, otherRouter, http.MethodGet, "/api/requests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	// CSV export.
	w = doJSON(t, ownerRouter, http.MethodGet, "/api/requests?format=csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "id,type,title,body,status,owner_username,created_at")
	assert.Contains(t, w.Body.String(), "mine")
}

func TestNotificationRoutes(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_notifications")

	alice := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))
	bob := testutil.CreateUser(t, client, "bob", testutil.WithRole("user"))

	n, err := client.Notification.Create().
		SetUserID(alice.ID).
		SetEventType("request_approved").
		SetMessage("done").
		Save(t.Context())
	require.NoError(t, err)

	aliceAct := actorOf(alice)
	aliceRouter := testRouter(server, &aliceAct)

	w := doJSON(t, aliceRouter, http.MethodGet, "/api/notifications/unread_count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	// A foreign notification is invisible.
	bobAct := actorOf(bob)
	w = doJSON(t, testRouter(server, &bobAct), http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, aliceRouter, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, aliceRouter, http.MethodGet, "/api/notifications/unread_count", nil)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestAdminWorkflowRoutes(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_admin_wf")

	admin := testutil.CreateUser(t, client, "root", testutil.WithRole("admin"))
	user := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))

	adminAct := actorOf(admin)
	adminRouter := testRouter(server, &adminAct)

	w := doJSON(t, adminRouter, http.MethodPost, "/api/admin/workflows", gin.H{
		"workflow_key": "expense_fast",
		"request_type": "expense",
		"name":         "Fast expense",
		"scope_kind":   "global",
		"is_default":   true,
		"steps": []gin.H{
			{"step_order": 1, "step_key": "mgr", "assignee_kind": "manager"},
			{"step_order": 2, "step_key": "fin", "assignee_kind": "role", "assignee_value": "finance"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, adminRouter, http.MethodGet, "/api/admin/workflows/expense_fast", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	steps := body["steps"].([]interface{})
	require.Len(t, steps, 2)

	// Admin gate holds for plain users.
	userAct := actorOf(user)
	w = doJSON(t, testRouter(server, &userAct), http.MethodGet, "/api/admin/workflows", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Users see the variant in the public catalog listing.
	w = doJSON(t, testRouter(server, &userAct), http.MethodGet, "/api/workflows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)

	w = doJSON(t, adminRouter, http.MethodDelete, "/api/admin/workflows/expense_fast", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateUserValidation(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_users")

	admin := testutil.CreateUser(t, client, "root", testutil.WithRole("admin"))
	alice := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))

	adminAct := actorOf(admin)
	adminRouter := testRouter(server, &adminAct)

	w := doJSON(t, adminRouter, http.MethodPost, fmt.Sprintf("/api/users/%d", alice.ID), gin.H{
		"dept":       "Finance",
		"manager_id": admin.ID,
		"position":   "analyst",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	updated, err := client.User.Get(t.Context(), alice.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Dept)
	assert.Equal(t, "Finance", *updated.Dept)
	require.NotNil(t, updated.ManagerID)
	assert.Equal(t, admin.ID, *updated.ManagerID)

	// Ghost manager is rejected.
	w = doJSON(t, adminRouter, http.MethodPost, fmt.Sprintf("/api/users/%d", alice.ID), gin.H{
		"manager_id": 999999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_user_id", errorCode(t, w))

	// Explicit null clears the dept.
	w = doJSON(t, adminRouter, http.MethodPost, fmt.Sprintf("/api/users/%d", alice.ID), map[string]interface{}{
		"dept": nil,
	})
	require.Equal(t, http.StatusNoContent, w.Code)
	updated, err = client.User.Get(t.Context(), alice.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Dept)
}

func TestDepartmentRoutesBuildOrgTree(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_org")

	admin := testutil.CreateUser(t, client, "root", testutil.WithRole("admin"))
	adminAct := actorOf(admin)
	adminRouter := testRouter(server, &adminAct)

	w := doJSON(t, adminRouter, http.MethodPost, "/api/admin/departments", gin.H{"name": "Research and Development"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rootID := int(decode(t, w)["id"].(float64))

	w = doJSON(t, adminRouter, http.MethodPost, "/api/admin/departments", gin.H{
		"name":      "Platform",
		"parent_id": rootID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Dangling parent is rejected.
	w = doJSON(t, adminRouter, http.MethodPost, "/api/admin/departments", gin.H{
		"name":      "Orphan",
		"parent_id": 424242,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, adminRouter, http.MethodGet, "/api/org/tree", nil)
	require.Equal(t, http.StatusOK, w.Code)
	roots := decode(t, w)["items"].([]interface{})
	require.Len(t, roots, 1)
	root := roots[0].(map[string]interface{})
	assert.Equal(t, "Research and Development", root["name"])
	children := root["children"].([]interface{})
	require.Len(t, children, 1)
	assert.Equal(t, "Platform", children[0].(map[string]interface{})["name"])
}

func TestAttachmentRoutes(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_attachments")

	owner := testutil.CreateUser(t, client, "alice", testutil.WithRole("user"))
	ownerAct := actorOf(owner)
	ownerRouter := testRouter(server, &ownerAct)

	w := doJSON(t, ownerRouter, http.MethodPost, "/api/requests", gin.H{"title": "expense", "body": "receipt attached"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reqID := int(decode(t, w)["id"].(float64))

	w = doJSON(t, ownerRouter, http.MethodPost, fmt.Sprintf("/api/requests/%d/attachments", reqID), gin.H{
		"filename":       "receipt.pdf",
		"content_type":   "application/pdf",
		"content_base64": "aGVsbG8gd29ybGQ=",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	att := decode(t, w)
	attID := int(att["id"].(float64))
	assert.Equal(t, "receipt.pdf", att["filename"])
	assert.Equal(t, float64(11), att["size"])

	w = doJSON(t, ownerRouter, http.MethodGet, fmt.Sprintf("/api/attachments/%d/download", attID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello world", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="receipt.pdf"`)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/pdf")

	// Missing payload fields.
	w = doJSON(t, ownerRouter, http.MethodPost, fmt.Sprintf("/api/requests/%d/attachments", reqID), gin.H{
		"filename": "empty.txt",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_fields", errorCode(t, w))
}
