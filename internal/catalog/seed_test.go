package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/ent/workflowvariantstep"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/pkg/worker"
	"oaflow.io/oaflow/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, "HR/Admin", DefaultCategory("leave"))
	assert.Equal(t, "Finance", DefaultCategory("expense"))
	assert.Equal(t, "Procurement", DefaultCategory("purchase"))
	assert.Equal(t, "Assets", DefaultCategory("asset_scrap"))
	assert.Equal(t, "Contract/Legal", DefaultCategory("seal"))
	assert.Equal(t, "IT", DefaultCategory("vpn_email"))
	assert.Equal(t, "Logistics", DefaultCategory("meeting_room"))
	assert.Equal(t, "Policy/Compliance", DefaultCategory("read_ack"))
	assert.Equal(t, "General", DefaultCategory("anything_else"))
}

func TestSeedInstallsCatalog(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed")
	ctx := context.Background()

	pools, err := worker.NewPools(ctx, worker.PoolConfig{GeneralPoolSize: 4, SeedPoolSize: 4})
	require.NoError(t, err)
	defer pools.Shutdown()

	seeder := NewSeeder(client, pools)
	require.NoError(t, seeder.Seed(ctx))

	total, err := client.WorkflowVariant.Query().Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, 30, "the seed catalog is broad")

	// Spot-check the load-bearing variants.
	generic, err := client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyEQ("generic")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, generic.Enabled)
	assert.True(t, generic.IsDefault)
	assert.Equal(t, workflowvariant.ScopeKindGlobal, generic.ScopeKind)

	expenseSteps, err := client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ("expense")).
		Order(workflowvariantstep.ByStepOrder()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, expenseSteps, 3)
	assert.Equal(t, "manager", expenseSteps[0].AssigneeKind)
	assert.Equal(t, "min_amount", expenseSteps[1].ConditionKind)
	assert.Equal(t, "5000", expenseSteps[1].ConditionValue)
}

func TestSeedIsIdempotentAndPreservesEdits(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed")
	ctx := context.Background()

	seeder := NewSeeder(client, nil)
	require.NoError(t, seeder.Seed(ctx))

	// An operator disables a variant and renames another.
	leave, err := client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyEQ("leave")).
		Only(ctx)
	require.NoError(t, err)
	_, err = client.WorkflowVariant.UpdateOneID(leave.ID).
		SetEnabled(false).
		SetName("Leave (suspended)").
		Save(ctx)
	require.NoError(t, err)

	before, err := client.WorkflowVariant.Query().Count(ctx)
	require.NoError(t, err)

	require.NoError(t, seeder.Seed(ctx))

	after, err := client.WorkflowVariant.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "reseeding inserts nothing new")

	leave, err = client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyEQ("leave")).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, leave.Enabled, "operator edits survive reseeding")
	assert.Equal(t, "Leave (suspended)", leave.Name)
}

func TestSeedRestoresLostSteps(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed")
	ctx := context.Background()

	seeder := NewSeeder(client, nil)
	require.NoError(t, seeder.Seed(ctx))

	_, err := client.WorkflowVariantStep.Delete().
		Where(workflowvariantstep.WorkflowKeyEQ("purchase")).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, seeder.Seed(ctx))

	steps, err := client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ("purchase")).
		Order(workflowvariantstep.ByStepOrder()).
		All(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, steps, "missing steps are re-seeded")
	assert.Equal(t, "manager", steps[0].AssigneeKind)
}

func TestSeedUpgradesLegacyExpenseChain(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed")
	ctx := context.Background()

	// A catalog written before the gm step existed: expense is a plain
	// manager then finance chain.
	_, err := client.WorkflowVariant.Create().
		SetWorkflowKey("expense").
		SetRequestType("expense").
		SetName("Expense claim").
		SetCategory("Finance").
		SetIsDefault(true).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkflowVariantStep.Create().
		SetWorkflowKey("expense").
		SetStepOrder(1).
		SetStepKey("manager").
		SetAssigneeKind("manager").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkflowVariantStep.Create().
		SetWorkflowKey("expense").
		SetStepOrder(2).
		SetStepKey("finance").
		SetAssigneeKind("role").
		SetAssigneeValue("finance").
		Save(ctx)
	require.NoError(t, err)

	seeder := NewSeeder(client, nil)
	require.NoError(t, seeder.Seed(ctx))

	steps, err := client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ("expense")).
		Order(workflowvariantstep.ByStepOrder()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "manager", steps[0].StepKey)
	assert.Equal(t, "gm", steps[1].StepKey)
	assert.Equal(t, "finance", steps[2].StepKey)

	gm := steps[1]
	assert.Equal(t, 2, gm.StepOrder)
	assert.Equal(t, "role", gm.AssigneeKind)
	assert.Equal(t, "admin", gm.AssigneeValue)
	assert.Equal(t, "min_amount", gm.ConditionKind)
	assert.Equal(t, "5000", gm.ConditionValue)
	assert.Equal(t, 3, steps[2].StepOrder)

	// Reseeding must not splice twice.
	require.NoError(t, seeder.Seed(ctx))
	n, err := client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ("expense")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
