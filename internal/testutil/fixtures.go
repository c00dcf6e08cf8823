package testutil

import (
	"context"
	"testing"

	"oaflow.io/oaflow/ent"
)

// UserOpt mutates a user create builder.
type UserOpt func(*ent.UserCreate)

// WithRole sets the user's role.
func WithRole(role string) UserOpt {
	return func(c *ent.UserCreate) { c.SetRole(role) }
}

// WithDept sets the user's department code.
func WithDept(dept string) UserOpt {
	return func(c *ent.UserCreate) { c.SetDept(dept) }
}

// WithManager sets the user's manager id.
func WithManager(managerID int) UserOpt {
	return func(c *ent.UserCreate) { c.SetManagerID(managerID) }
}

// CreateUser inserts a user with a throwaway password hash.
func CreateUser(t *testing.T, client *ent.Client, username string, opts ...UserOpt) *ent.User {
	t.Helper()

	c := client.User.Create().
		SetUsername(username).
		SetPasswordHash("x")
	for _, opt := range opts {
		opt(c)
	}

	u, err := c.Save(context.Background())
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

// CreateVariant inserts an enabled workflow variant with its steps.
// Steps are given as (step_key, assignee_kind, assignee_value) triples via
// the Step helper; order follows slice position starting at 1.
func CreateVariant(t *testing.T, client *ent.Client, key, requestType string, isDefault bool, steps ...StepSpec) *ent.WorkflowVariant {
	t.Helper()
	ctx := context.Background()

	v, err := client.WorkflowVariant.Create().
		SetWorkflowKey(key).
		SetRequestType(requestType).
		SetName(key).
		SetIsDefault(isDefault).
		Save(ctx)
	if err != nil {
		t.Fatalf("create variant %q: %v", key, err)
	}

	for i, s := range steps {
		create := client.WorkflowVariantStep.Create().
			SetWorkflowKey(key).
			SetStepOrder(i + 1).
			SetStepKey(s.Key).
			SetAssigneeKind(s.AssigneeKind).
			SetAssigneeValue(s.AssigneeValue)
		if s.ConditionKind != "" {
			create = create.
				SetConditionKind(s.ConditionKind).
				SetConditionValue(s.ConditionValue)
		}
		if _, err := create.Save(ctx); err != nil {
			t.Fatalf("create step %q/%q: %v", key, s.Key, err)
		}
	}
	return v
}

// StepSpec describes one step for CreateVariant.
type StepSpec struct {
	Key            string
	AssigneeKind   string
	AssigneeValue  string
	ConditionKind  string
	ConditionValue string
}

// Step builds an unconditional StepSpec.
func Step(key, assigneeKind, assigneeValue string) StepSpec {
	return StepSpec{Key: key, AssigneeKind: assigneeKind, AssigneeValue: assigneeValue}
}

// CondStep builds a conditional StepSpec.
func CondStep(key, assigneeKind, assigneeValue, condKind, condValue string) StepSpec {
	return StepSpec{
		Key:            key,
		AssigneeKind:   assigneeKind,
		AssigneeValue:  assigneeValue,
		ConditionKind:  condKind,
		ConditionValue: condValue,
	}
}
