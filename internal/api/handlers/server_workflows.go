package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oaflow.io/oaflow/internal/catalog"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

// ListWorkflows handles GET /api/workflows: variants available to the
// caller, filtered by department scope.
func (s *Server) ListWorkflows(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		fail(c, apperrors.Unauthorized(apperrors.CodeNotAuthenticated, "authentication required"))
		return
	}

	variants, err := s.catalog.ListAvailable(c.Request.Context(), act.Dept)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]variantJSON, 0, len(variants))
	for _, v := range variants {
		items = append(items, toVariantJSON(v))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AdminListWorkflows handles GET /api/admin/workflows: every variant,
// including disabled ones.
func (s *Server) AdminListWorkflows(c *gin.Context) {
	variants, err := s.catalog.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]variantJSON, 0, len(variants))
	for _, v := range variants {
		items = append(items, toVariantJSON(v))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AdminGetWorkflow handles GET /api/admin/workflows/:key.
func (s *Server) AdminGetWorkflow(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))

	variant, err := s.catalog.GetVariant(c.Request.Context(), key)
	if err != nil {
		fail(c, err)
		return
	}
	steps, err := s.catalog.ListSteps(c.Request.Context(), key)
	if err != nil {
		fail(c, err)
		return
	}

	stepItems := make([]stepJSON, 0, len(steps))
	for _, step := range steps {
		stepItems = append(stepItems, toStepJSON(step))
	}
	c.JSON(http.StatusOK, gin.H{
		"workflow": toVariantJSON(variant),
		"steps":    stepItems,
	})
}

type upsertWorkflowBody struct {
	WorkflowKey string  `json:"workflow_key"`
	RequestType string  `json:"request_type"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	ScopeKind   string  `json:"scope_kind"`
	ScopeValue  *string `json:"scope_value"`
	Enabled     *bool   `json:"enabled"`
	IsDefault   bool    `json:"is_default"`
	Steps       []struct {
		StepOrder      int     `json:"step_order"`
		StepKey        string  `json:"step_key"`
		AssigneeKind   string  `json:"assignee_kind"`
		AssigneeValue  *string `json:"assignee_value"`
		ConditionKind  *string `json:"condition_kind"`
		ConditionValue *string `json:"condition_value"`
	} `json:"steps"`
}

// AdminUpsertWorkflow handles POST /api/admin/workflows. Creates or
// replaces a variant; when steps are present they replace the step set.
func (s *Server) AdminUpsertWorkflow(c *gin.Context) {
	var body upsertWorkflowBody
	if !bindJSON(c, &body) {
		return
	}

	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}

	variant, err := s.catalog.Upsert(c.Request.Context(), catalog.VariantInput{
		WorkflowKey: body.WorkflowKey,
		RequestType: body.RequestType,
		Name:        body.Name,
		Category:    body.Category,
		ScopeKind:   body.ScopeKind,
		ScopeValue:  body.ScopeValue,
		Enabled:     enabled,
		IsDefault:   body.IsDefault,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if body.Steps != nil {
		steps := make([]catalog.StepInput, 0, len(body.Steps))
		for _, in := range body.Steps {
			steps = append(steps, catalog.StepInput{
				StepOrder:      in.StepOrder,
				StepKey:        in.StepKey,
				AssigneeKind:   in.AssigneeKind,
				AssigneeValue:  in.AssigneeValue,
				ConditionKind:  in.ConditionKind,
				ConditionValue: in.ConditionValue,
			})
		}
		if err := s.catalog.ReplaceSteps(c.Request.Context(), variant.WorkflowKey, steps); err != nil {
			fail(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, toVariantJSON(variant))
}

// AdminDeleteWorkflow handles DELETE /api/admin/workflows/:key.
func (s *Server) AdminDeleteWorkflow(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		fail(c, apperrors.BadRequest(apperrors.CodeMissingFields, "workflow_key is required"))
		return
	}

	if err := s.catalog.Delete(c.Request.Context(), key); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
