package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/workflowvariant"
	apperrors "oaflow.io/oaflow/internal/pkg/errors"
	"oaflow.io/oaflow/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestResolveDefaultPrecedence(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog")
	ctx := context.Background()
	svc := NewService(client)

	// Global default for expense.
	testutil.CreateVariant(t, client, "expense", "expense", true,
		testutil.Step("manager", "manager", ""))
	// Dept-scoped default for the same type.
	deptVariant := testutil.CreateVariant(t, client, "expense_fin", "expense", true,
		testutil.Step("review", "role", "finance"))
	_, err := client.WorkflowVariant.UpdateOneID(deptVariant.ID).
		SetScopeKind(workflowvariant.ScopeKindDept).
		SetScopeValue("finance").
		Save(ctx)
	require.NoError(t, err)

	fin := "finance"
	eng := "eng"

	got, err := svc.ResolveDefault(ctx, "expense", &fin)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "expense_fin", *got, "dept default wins for members of the dept")

	got, err = svc.ResolveDefault(ctx, "expense", &eng)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "expense", *got, "other depts fall back to the global default")

	got, err = svc.ResolveDefault(ctx, "expense", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "expense", *got)

	got, err = svc.ResolveDefault(ctx, "unknown", &fin)
	require.NoError(t, err)
	assert.Nil(t, got, "no default resolves to nil, never an error")

	// Repeated calls are stable.
	again, err := svc.ResolveDefault(ctx, "expense", &fin)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "expense_fin", *again)
}

func TestListAvailableScoping(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog")
	ctx := context.Background()
	svc := NewService(client)

	testutil.CreateVariant(t, client, "leave", "leave", true,
		testutil.Step("manager", "manager", ""))
	hidden := testutil.CreateVariant(t, client, "leave_old", "leave", false,
		testutil.Step("manager", "manager", ""))
	_, err := client.WorkflowVariant.UpdateOneID(hidden.ID).SetEnabled(false).Save(ctx)
	require.NoError(t, err)
	deptOnly := testutil.CreateVariant(t, client, "leave_hr", "leave", false,
		testutil.Step("review", "role", "hr"))
	_, err = client.WorkflowVariant.UpdateOneID(deptOnly.ID).
		SetScopeKind(workflowvariant.ScopeKindDept).
		SetScopeValue("hr").
		Save(ctx)
	require.NoError(t, err)

	keys := func(vs []*ent.WorkflowVariant) []string {
		var out []string
		for _, v := range vs {
			out = append(out, v.WorkflowKey)
		}
		return out
	}

	hr := "hr"
	got, err := svc.ListAvailable(ctx, &hr)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"leave", "leave_hr"}, keys(got))

	got, err = svc.ListAvailable(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"leave"}, keys(got), "no dept means global only; disabled stays hidden")
}

func TestUpsertClearsSiblingDefaults(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog")
	ctx := context.Background()
	svc := NewService(client)

	first, err := svc.Upsert(ctx, VariantInput{
		WorkflowKey: "purchase", RequestType: "purchase", Name: "Purchase",
		ScopeKind: "global", Enabled: true, IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, "Procurement", first.Category, "category defaults by request type")

	_, err = svc.Upsert(ctx, VariantInput{
		WorkflowKey: "purchase_v2", RequestType: "purchase", Name: "Purchase v2",
		ScopeKind: "global", Enabled: true, IsDefault: true,
	})
	require.NoError(t, err)

	reloaded, err := svc.GetVariant(ctx, "purchase")
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.IsDefault, "only one global default per request type")

	// A dept default does not disturb the global one.
	_, err = svc.Upsert(ctx, VariantInput{
		WorkflowKey: "purchase_fin", RequestType: "purchase", Name: "Purchase (finance)",
		ScopeKind: "dept", ScopeValue: strPtr("finance"), Enabled: true, IsDefault: true,
	})
	require.NoError(t, err)
	v2, err := svc.GetVariant(ctx, "purchase_v2")
	require.NoError(t, err)
	assert.True(t, v2.IsDefault)
}

func TestUpsertValidation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog")
	ctx := context.Background()
	svc := NewService(client)

	_, err := svc.Upsert(ctx, VariantInput{RequestType: "x", Name: "y", ScopeKind: "global"})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeMissingFields, appErr.Code)

	_, err = svc.Upsert(ctx, VariantInput{
		WorkflowKey: "k", RequestType: "x", Name: "y", ScopeKind: "team",
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidScope, appErr.Code)

	_, err = svc.Upsert(ctx, VariantInput{
		WorkflowKey: "k", RequestType: "x", Name: "y", ScopeKind: "dept",
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidScope, appErr.Code)
}

func TestReplaceStepsAndDelete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "catalog")
	ctx := context.Background()
	svc := NewService(client)

	testutil.CreateVariant(t, client, "contract", "contract", true,
		testutil.Step("legal", "role", "legal"))

	err := svc.ReplaceSteps(ctx, "contract", []StepInput{
		{StepOrder: 1, StepKey: "manager", AssigneeKind: "manager"},
		{StepOrder: 2, StepKey: "legal", AssigneeKind: "role", AssigneeValue: strPtr("legal"),
			ConditionKind: strPtr("min_amount"), ConditionValue: strPtr("10000")},
	})
	require.NoError(t, err)

	steps, err := svc.ListSteps(ctx, "contract")
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "manager", steps[0].StepKey)
	assert.Equal(t, "min_amount", steps[1].ConditionKind)

	err = svc.ReplaceSteps(ctx, "contract", []StepInput{{StepKey: "x", AssigneeKind: "role"}})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidSteps, appErr.Code)

	require.NoError(t, svc.Delete(ctx, "contract"))
	v, err := svc.GetVariant(ctx, "contract")
	require.NoError(t, err)
	assert.Nil(t, v)
	steps, err = svc.ListSteps(ctx, "contract")
	require.NoError(t, err)
	assert.Empty(t, steps)
}
