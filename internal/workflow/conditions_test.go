package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oaflow.io/oaflow/ent"
)

func step(condKind, condValue string) *ent.WorkflowVariantStep {
	return &ent.WorkflowVariantStep{
		StepKey:        "review",
		AssigneeKind:   "role",
		AssigneeValue:  "finance",
		ConditionKind:  condKind,
		ConditionValue: condValue,
	}
}

func TestStepIncluded_NoCondition(t *testing.T) {
	assert.True(t, StepIncluded(step("", ""), nil, nil))
	assert.True(t, StepIncluded(step("", "ignored"), map[string]interface{}{}, nil))
}

func TestStepIncluded_MinAmount(t *testing.T) {
	s := step("min_amount", "5000")

	assert.True(t, StepIncluded(s, map[string]interface{}{"amount": 5000.0}, nil), "boundary amount is included")
	assert.True(t, StepIncluded(s, map[string]interface{}{"amount": 12000.0}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{"amount": 4999.99}, nil))
	assert.False(t, StepIncluded(s, nil, nil), "missing payload skips the step")
	assert.False(t, StepIncluded(s, map[string]interface{}{"days": 3.0}, nil), "missing amount skips the step")

	assert.True(t, StepIncluded(s, map[string]interface{}{"amount": "6000"}, nil), "string amounts are parsed")
	assert.False(t, StepIncluded(s, map[string]interface{}{"amount": "lots"}, nil))
	assert.False(t, StepIncluded(step("min_amount", "not-a-number"), map[string]interface{}{"amount": 10.0}, nil))
}

func TestStepIncluded_MaxAmount(t *testing.T) {
	s := step("max_amount", "1000")

	assert.True(t, StepIncluded(s, map[string]interface{}{"amount": 1000.0}, nil))
	assert.True(t, StepIncluded(s, map[string]interface{}{"amount": 999.0}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{"amount": 1000.01}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{}, nil))
}

func TestStepIncluded_MinDays(t *testing.T) {
	s := step("min_days", "3")

	assert.True(t, StepIncluded(s, map[string]interface{}{"days": 3.0}, nil))
	assert.True(t, StepIncluded(s, map[string]interface{}{"days": 10.0}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{"days": 2.0}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{}, nil))
}

func TestStepIncluded_DeptIn(t *testing.T) {
	s := step("dept_in", "ENG, Sales;ops")
	eng := "eng"
	engUpper := "ENG"
	hr := "hr"
	empty := "  "

	assert.True(t, StepIncluded(s, nil, &eng))
	assert.True(t, StepIncluded(s, nil, &engUpper), "matching is case-insensitive")
	assert.False(t, StepIncluded(s, nil, &hr))
	assert.False(t, StepIncluded(s, nil, nil), "creator without a dept is excluded")
	assert.False(t, StepIncluded(s, nil, &empty))
	assert.False(t, StepIncluded(step("dept_in", ""), nil, &eng), "empty list matches nothing")
}

func TestStepIncluded_CategoryIn(t *testing.T) {
	s := step("category_in", "travel,meals")

	assert.True(t, StepIncluded(s, map[string]interface{}{"category": "Travel"}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{"category": "office"}, nil))
	assert.False(t, StepIncluded(s, map[string]interface{}{}, nil))
	assert.False(t, StepIncluded(s, nil, nil))
}

func TestStepIncluded_UnknownKindPasses(t *testing.T) {
	assert.True(t, StepIncluded(step("requires_signature", "wet-ink"), nil, nil))
}

func TestFindNextStep(t *testing.T) {
	steps := []*ent.WorkflowVariantStep{
		{StepOrder: 1, StepKey: "manager", AssigneeKind: "manager"},
		{StepOrder: 2, StepKey: "finance", AssigneeKind: "role", AssigneeValue: "finance",
			ConditionKind: "min_amount", ConditionValue: "1000"},
		{StepOrder: 3, StepKey: "gm", AssigneeKind: "role", AssigneeValue: "gm",
			ConditionKind: "min_amount", ConditionValue: "5000"},
	}
	small := map[string]interface{}{"amount": 200.0}
	medium := map[string]interface{}{"amount": 2000.0}
	large := map[string]interface{}{"amount": 9000.0}

	assert.Equal(t, "manager", FindNextStep(steps, nil, small, nil).StepKey)

	one := 1
	assert.Nil(t, FindNextStep(steps, &one, small, nil), "small amounts stop after the manager")
	assert.Equal(t, "finance", FindNextStep(steps, &one, medium, nil).StepKey)

	two := 2
	assert.Nil(t, FindNextStep(steps, &two, medium, nil))
	assert.Equal(t, "gm", FindNextStep(steps, &two, large, nil).StepKey)

	three := 3
	assert.Nil(t, FindNextStep(steps, &three, large, nil))
}
