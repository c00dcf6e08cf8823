// Package catalog manages the workflow variant catalog: named routes per
// request type, scoped globally or to a department, with ordered steps.
// The catalog is the single source of truth for engine behavior.
package catalog

import (
	"context"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/ent/workflowvariantstep"
	"oaflow.io/oaflow/internal/infrastructure"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
)

// Service exposes catalog reads and admin mutations.
type Service struct {
	client *ent.Client
}

// NewService creates a catalog service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// GetVariant returns the variant for a workflow key, or nil when absent.
func (s *Service) GetVariant(ctx context.Context, workflowKey string) (*ent.WorkflowVariant, error) {
	v, err := s.client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyEQ(workflowKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return v, err
}

// ListSteps returns a variant's steps ordered by step_order.
func (s *Service) ListSteps(ctx context.Context, workflowKey string) ([]*ent.WorkflowVariantStep, error) {
	return ListSteps(ctx, s.client.WorkflowVariantStep, workflowKey)
}

// ListSteps is the query shared with in-transaction callers.
func ListSteps(ctx context.Context, c *ent.WorkflowVariantStepClient, workflowKey string) ([]*ent.WorkflowVariantStep, error) {
	return c.Query().
		Where(workflowvariantstep.WorkflowKeyEQ(workflowKey)).
		Order(ent.Asc(workflowvariantstep.FieldStepOrder)).
		All(ctx)
}

// ListAvailable returns enabled variants visible to a member of dept:
// all global variants plus dept-scoped ones matching dept. Ordering is
// stable by (category, name).
func (s *Service) ListAvailable(ctx context.Context, dept *string) ([]*ent.WorkflowVariant, error) {
	q := s.client.WorkflowVariant.Query().
		Where(workflowvariant.EnabledEQ(true))
	if dept != nil && *dept != "" {
		q = q.Where(workflowvariant.Or(
			workflowvariant.ScopeKindEQ(workflowvariant.ScopeKindGlobal),
			workflowvariant.And(
				workflowvariant.ScopeKindEQ(workflowvariant.ScopeKindDept),
				workflowvariant.ScopeValueEQ(*dept),
			),
		))
	} else {
		q = q.Where(workflowvariant.ScopeKindEQ(workflowvariant.ScopeKindGlobal))
	}
	return q.
		Order(ent.Asc(workflowvariant.FieldCategory), ent.Asc(workflowvariant.FieldName)).
		All(ctx)
}

// ListAll returns every variant for admin views, ordered by (category, name).
func (s *Service) ListAll(ctx context.Context) ([]*ent.WorkflowVariant, error) {
	return s.client.WorkflowVariant.Query().
		Order(ent.Asc(workflowvariant.FieldCategory), ent.Asc(workflowvariant.FieldName)).
		All(ctx)
}

// ResolveDefault returns the workflow key of the default variant for
// (request_type, dept): the enabled dept-scoped default wins, then the
// enabled global default, then nil.
func (s *Service) ResolveDefault(ctx context.Context, requestType string, dept *string) (*string, error) {
	return ResolveDefault(ctx, s.client.WorkflowVariant, requestType, dept)
}

// ResolveDefault is the query shared with in-transaction callers.
func ResolveDefault(ctx context.Context, c *ent.WorkflowVariantClient, requestType string, dept *string) (*string, error) {
	if dept != nil && *dept != "" {
		v, err := c.Query().
			Where(
				workflowvariant.RequestTypeEQ(requestType),
				workflowvariant.EnabledEQ(true),
				workflowvariant.IsDefaultEQ(true),
				workflowvariant.ScopeKindEQ(workflowvariant.ScopeKindDept),
				workflowvariant.ScopeValueEQ(*dept),
			).
			First(ctx)
		if err == nil {
			return &v.WorkflowKey, nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}

	v, err := c.Query().
		Where(
			workflowvariant.RequestTypeEQ(requestType),
			workflowvariant.EnabledEQ(true),
			workflowvariant.IsDefaultEQ(true),
			workflowvariant.ScopeKindEQ(workflowvariant.ScopeKindGlobal),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v.WorkflowKey, nil
}

// VariantInput is the admin upsert payload for a variant.
type VariantInput struct {
	WorkflowKey string
	RequestType string
	Name        string
	Category    string
	ScopeKind   string
	ScopeValue  *string
	Enabled     bool
	IsDefault   bool
}

// Upsert creates or replaces a variant. When the variant is marked default,
// is_default is atomically cleared on siblings sharing the same
// (request_type, scope_kind[, scope_value]).
func (s *Service) Upsert(ctx context.Context, in VariantInput) (*ent.WorkflowVariant, error) {
	if in.WorkflowKey == "" || in.RequestType == "" || in.Name == "" {
		return nil, apperrors.BadRequest(apperrors.CodeMissingFields, "workflow_key, request_type and name are required")
	}
	scopeKind := workflowvariant.ScopeKind(in.ScopeKind)
	switch scopeKind {
	case workflowvariant.ScopeKindGlobal:
	case workflowvariant.ScopeKindDept:
		if in.ScopeValue == nil || *in.ScopeValue == "" {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidScope, "scope_value required for dept scope")
		}
	default:
		return nil, apperrors.BadRequest(apperrors.CodeInvalidScope, "scope_kind must be global or dept")
	}
	category := in.Category
	if category == "" {
		category = DefaultCategory(in.RequestType)
	}

	var out *ent.WorkflowVariant
	err := infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		existing, err := tx.WorkflowVariant.Query().
			Where(workflowvariant.WorkflowKeyEQ(in.WorkflowKey)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return err
		}

		if existing != nil {
			upd := tx.WorkflowVariant.UpdateOne(existing).
				SetRequestType(in.RequestType).
				SetName(in.Name).
				SetCategory(category).
				SetScopeKind(scopeKind).
				SetEnabled(in.Enabled).
				SetIsDefault(in.IsDefault)
			if in.ScopeValue != nil {
				upd = upd.SetScopeValue(*in.ScopeValue)
			} else {
				upd = upd.ClearScopeValue()
			}
			out, err = upd.Save(ctx)
			if err != nil {
				return err
			}
		} else {
			create := tx.WorkflowVariant.Create().
				SetWorkflowKey(in.WorkflowKey).
				SetRequestType(in.RequestType).
				SetName(in.Name).
				SetCategory(category).
				SetScopeKind(scopeKind).
				SetEnabled(in.Enabled).
				SetIsDefault(in.IsDefault)
			if in.ScopeValue != nil {
				create = create.SetScopeValue(*in.ScopeValue)
			}
			out, err = create.Save(ctx)
			if err != nil {
				return err
			}
		}

		if !in.IsDefault {
			return nil
		}

		// At most one default per (request_type, scope).
		clear := tx.WorkflowVariant.Update().
			Where(
				workflowvariant.RequestTypeEQ(in.RequestType),
				workflowvariant.ScopeKindEQ(scopeKind),
				workflowvariant.WorkflowKeyNEQ(in.WorkflowKey),
			).
			SetIsDefault(false)
		if scopeKind == workflowvariant.ScopeKindDept {
			clear = clear.Where(workflowvariant.ScopeValueEQ(*in.ScopeValue))
		}
		_, err = clear.Save(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StepInput is one step of a ReplaceSteps payload.
type StepInput struct {
	StepOrder      int
	StepKey        string
	AssigneeKind   string
	AssigneeValue  *string
	ConditionKind  *string
	ConditionValue *string
}

// ReplaceSteps wipes and reinserts the ordered step set of a variant.
func (s *Service) ReplaceSteps(ctx context.Context, workflowKey string, steps []StepInput) error {
	for _, st := range steps {
		if st.StepOrder <= 0 || st.StepKey == "" || st.AssigneeKind == "" {
			return apperrors.BadRequest(apperrors.CodeInvalidSteps, "each step needs step_order, step_key and assignee_kind")
		}
	}
	return infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.WorkflowVariantStep.Delete().
			Where(workflowvariantstep.WorkflowKeyEQ(workflowKey)).
			Exec(ctx); err != nil {
			return err
		}
		for _, st := range steps {
			create := tx.WorkflowVariantStep.Create().
				SetWorkflowKey(workflowKey).
				SetStepOrder(st.StepOrder).
				SetStepKey(st.StepKey).
				SetAssigneeKind(st.AssigneeKind)
			if st.AssigneeValue != nil {
				create = create.SetAssigneeValue(*st.AssigneeValue)
			}
			if st.ConditionKind != nil {
				create = create.SetConditionKind(*st.ConditionKind)
			}
			if st.ConditionValue != nil {
				create = create.SetConditionValue(*st.ConditionValue)
			}
			if _, err := create.Save(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a variant and its steps. Requests keeping the dangling
// workflow_key fall back at advance time.
func (s *Service) Delete(ctx context.Context, workflowKey string) error {
	return infrastructure.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.WorkflowVariantStep.Delete().
			Where(workflowvariantstep.WorkflowKeyEQ(workflowKey)).
			Exec(ctx); err != nil {
			return err
		}
		_, err := tx.WorkflowVariant.Delete().
			Where(workflowvariant.WorkflowKeyEQ(workflowKey)).
			Exec(ctx)
		return err
	})
}
