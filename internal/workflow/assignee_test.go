package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oaflow.io/oaflow/ent"
)

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ParseIDList("1,2,3"))
	assert.Equal(t, []int{7, 9}, ParseIDList(" 7 ; 9 "))
	assert.Equal(t, []int{4, 5}, ParseIDList("4,x,5"), "malformed entries are dropped")
	assert.Equal(t, []int{2, 1}, ParseIDList("2,1,2"), "duplicates are dropped, order preserved")
	assert.Nil(t, ParseIDList(""))
	assert.Nil(t, ParseIDList("a;b"))
}

func TestResolveSingleAssignee(t *testing.T) {
	mgr := 42
	withManager := Actor{ID: 1, Role: "user", ManagerID: &mgr}
	orphan := Actor{ID: 2, Role: "user"}

	got := resolveSingleAssignee(withManager, &ent.WorkflowVariantStep{AssigneeKind: "manager"})
	if assert.NotNil(t, got.userID) {
		assert.Equal(t, 42, *got.userID)
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "manager"})
	if assert.NotNil(t, got.role) {
		assert.Equal(t, "admin", *got.role, "creator without a manager falls back to admin")
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "role", AssigneeValue: "finance"})
	if assert.NotNil(t, got.role) {
		assert.Equal(t, "finance", *got.role)
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "role"})
	if assert.NotNil(t, got.role) {
		assert.Equal(t, "admin", *got.role)
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "user", AssigneeValue: "17"})
	if assert.NotNil(t, got.userID) {
		assert.Equal(t, 17, *got.userID)
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "user", AssigneeValue: "bob"})
	if assert.NotNil(t, got.role) {
		assert.Equal(t, "admin", *got.role, "unparseable user id falls back to admin")
	}

	got = resolveSingleAssignee(orphan, &ent.WorkflowVariantStep{AssigneeKind: "committee", AssigneeValue: "x"})
	if assert.NotNil(t, got.role) {
		assert.Equal(t, "admin", *got.role, "unknown kinds fall back to admin")
	}
}
