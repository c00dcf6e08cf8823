package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/department"
	entuser "oaflow.io/oaflow/ent/user"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

// ListUsers handles GET /api/users. Admin only.
func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.client.User.Query().
		Order(ent.Asc(entuser.FieldID)).
		All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	byID := make(map[int]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}

	items := make([]gin.H, 0, len(users))
	for _, u := range users {
		item := gin.H{
			"id":               u.ID,
			"username":         u.Username,
			"role":             u.Role,
			"dept":             u.Dept,
			"dept_id":          u.DeptID,
			"position":         u.Position,
			"manager_id":       u.ManagerID,
			"manager_username": nameFor(byID, u.ManagerID),
			"created_at":       u.CreatedAt,
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateUser handles POST /api/users/:id. Admin only. Only fields present
// in the body change; an explicit null clears a nullable field.
func (s *Server) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if !bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	if _, err := s.client.User.Get(ctx, id); err != nil {
		fail(c, apperrors.NotFound(apperrors.CodeNotFound, "user not found"))
		return
	}

	upd := s.client.User.UpdateOneID(id)

	if raw, present := body["dept"]; present {
		var dept *string
		if err := json.Unmarshal(raw, &dept); err != nil {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "dept must be a string or null"))
			return
		}
		if dept == nil {
			upd.ClearDept()
		} else {
			upd.SetDept(strings.TrimSpace(*dept))
		}
	}

	if raw, present := body["manager_id"]; present {
		var managerID *int
		if err := json.Unmarshal(raw, &managerID); err != nil {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "manager_id must be an integer or null"))
			return
		}
		if managerID == nil {
			upd.ClearManagerID()
		} else {
			exists, err := s.client.User.Query().Where(entuser.IDEQ(*managerID)).Exist(ctx)
			if err != nil {
				fail(c, err)
				return
			}
			if !exists {
				fail(c, apperrors.BadRequest(apperrors.CodeInvalidUserID, "manager does not exist"))
				return
			}
			upd.SetManagerID(*managerID)
		}
	}

	if raw, present := body["role"]; present {
		var role *string
		if err := json.Unmarshal(raw, &role); err != nil || role == nil || strings.TrimSpace(*role) == "" {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "role must be a non-empty string"))
			return
		}
		upd.SetRole(strings.TrimSpace(*role))
	}

	if raw, present := body["dept_id"]; present {
		var deptID *int
		if err := json.Unmarshal(raw, &deptID); err != nil {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "dept_id must be an integer or null"))
			return
		}
		if deptID == nil {
			upd.ClearDeptID()
		} else {
			exists, err := s.client.Department.Query().Where(department.IDEQ(*deptID)).Exist(ctx)
			if err != nil {
				fail(c, err)
				return
			}
			if !exists {
				fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "department does not exist"))
				return
			}
			upd.SetDeptID(*deptID)
		}
	}

	if raw, present := body["position"]; present {
		var position *string
		if err := json.Unmarshal(raw, &position); err != nil {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "position must be a string or null"))
			return
		}
		if position == nil {
			upd.ClearPosition()
		} else {
			upd.SetPosition(strings.TrimSpace(*position))
		}
	}

	if err := upd.Exec(ctx); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createDepartmentBody struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	ParentID   *int   `json:"parent_id"`
	LeadUserID *int   `json:"lead_user_id"`
}

// CreateDepartment handles POST /api/admin/departments.
func (s *Server) CreateDepartment(c *gin.Context) {
	var body createDepartmentBody
	if !bindJSON(c, &body) {
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "name is required"))
		return
	}
	code := strings.TrimSpace(body.Code)
	if code == "" {
		code = slugify(name)
	}

	ctx := c.Request.Context()
	if body.ParentID != nil {
		exists, err := s.client.Department.Query().Where(department.IDEQ(*body.ParentID)).Exist(ctx)
		if err != nil {
			fail(c, err)
			return
		}
		if !exists {
			fail(c, apperrors.BadRequest(apperrors.CodeInvalidPayload, "parent department does not exist"))
			return
		}
	}

	create := s.client.Department.Create().
		SetName(name).
		SetCode(code).
		SetNillableParentID(body.ParentID).
		SetNillableLeadUserID(body.LeadUserID)
	dept, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			fail(c, apperrors.Conflict(apperrors.CodeConflict, "department code already exists"))
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": dept.ID})
}

// ListDepartments handles GET /api/admin/departments.
func (s *Server) ListDepartments(c *gin.Context) {
	depts, err := s.client.Department.Query().
		Order(ent.Asc(department.FieldID)).
		All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(depts))
	for _, d := range depts {
		items = append(items, gin.H{
			"id":        d.ID,
			"name":      d.Name,
			"code":      d.Code,
			"parent_id": d.ParentID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type orgNode struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	ParentID *int       `json:"parent_id"`
	Children []*orgNode `json:"children"`
}

// OrgTree handles GET /api/org/tree. Departments whose parent is missing
// surface as roots.
func (s *Server) OrgTree(c *gin.Context) {
	depts, err := s.client.Department.Query().
		Order(ent.Asc(department.FieldID)).
		All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	nodes := make(map[int]*orgNode, len(depts))
	for _, d := range depts {
		nodes[d.ID] = &orgNode{
			ID:       d.ID,
			Name:     d.Name,
			ParentID: d.ParentID,
			Children: []*orgNode{},
		}
	}
	roots := make([]*orgNode, 0)
	for _, d := range depts {
		node := nodes[d.ID]
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	c.JSON(http.StatusOK, gin.H{"items": roots})
}

// slugify derives a department code from its display name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
