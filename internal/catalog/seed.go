package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/ent/workflowvariantstep"
	"oaflow.io/oaflow/internal/pkg/logger"
	"oaflow.io/oaflow/internal/pkg/worker"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Variants []seedVariant `yaml:"variants"`
}

type seedVariant struct {
	WorkflowKey string     `yaml:"workflow_key"`
	RequestType string     `yaml:"request_type"`
	Name        string     `yaml:"name"`
	Category    string     `yaml:"category"`
	Steps       []seedStep `yaml:"steps"`
}

type seedStep struct {
	StepOrder      int    `yaml:"step_order"`
	StepKey        string `yaml:"step_key"`
	AssigneeKind   string `yaml:"assignee_kind"`
	AssigneeValue  string `yaml:"assignee_value"`
	ConditionKind  string `yaml:"condition_kind"`
	ConditionValue string `yaml:"condition_value"`
}

// DefaultCategory maps a request type to its catalog category.
func DefaultCategory(requestType string) string {
	switch requestType {
	case "leave", "overtime", "attendance_correction", "business_trip", "outing",
		"onboarding", "probation", "resignation", "job_transfer", "salary_adjustment":
		return "HR/Admin"
	case "expense", "loan", "payment", "budget", "invoice", "fixed_asset_accounting", "travel_expense":
		return "Finance"
	case "purchase", "purchase_plus", "quote_compare", "acceptance", "inventory_in", "inventory_out":
		return "Procurement"
	case "device_claim", "asset_transfer", "asset_maintenance", "asset_scrap":
		return "Assets"
	case "contract", "legal_review", "seal", "archive":
		return "Contract/Legal"
	case "account_open", "permission", "vpn_email", "it_device":
		return "IT"
	case "meeting_room", "car", "supplies":
		return "Logistics"
	case "policy_announcement", "read_ack":
		return "Policy/Compliance"
	default:
		return "General"
	}
}

// Seeder installs the default catalog and reconciles stored catalogs that
// predate newer seed entries.
type Seeder struct {
	client *ent.Client
	pools  *worker.Pools
}

// NewSeeder creates a Seeder. pools may be nil, in which case reconcile
// runs sequentially.
func NewSeeder(client *ent.Client, pools *worker.Pools) *Seeder {
	return &Seeder{client: client, pools: pools}
}

// Seed reconciles the embedded catalog against the database: variants
// missing entirely are inserted as enabled global defaults; variants that
// exist but lost their steps get the seed steps back. Existing rows are
// never overwritten, so operator edits survive restarts.
func (s *Seeder) Seed(ctx context.Context) error {
	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return fmt.Errorf("parse catalog seed: %w", err)
	}

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, v := range file.Variants {
		v := v
		reconcile := func(ctx context.Context) {
			defer wg.Done()
			record(s.reconcileVariant(ctx, v))
		}
		wg.Add(1)
		if s.pools != nil {
			if err := s.pools.Seed.Submit(ctx, reconcile); err != nil {
				wg.Done()
				record(err)
			}
		} else {
			reconcile(ctx)
		}
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	if err := s.upgradeLegacyExpense(ctx); err != nil {
		return err
	}

	logger.Info("Workflow catalog reconciled", zap.Int("seed_variants", len(file.Variants)))
	return nil
}

// upgradeLegacyExpense rewrites the pre-v2 two-step expense chain
// (manager, finance) into the current three-step form: finance moves to
// step_order 3 and a conditional gm step (role=admin, min_amount=5000)
// takes step_order 2. Catalogs in any other shape are left alone.
func (s *Seeder) upgradeLegacyExpense(ctx context.Context) error {
	steps, err := s.client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ("expense")).
		Order(workflowvariantstep.ByStepOrder()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query expense steps: %w", err)
	}
	if len(steps) != 2 || steps[0].StepKey != "manager" || steps[1].StepKey != "finance" {
		return nil
	}

	if err := s.client.WorkflowVariantStep.Update().
		Where(
			workflowvariantstep.WorkflowKeyEQ("expense"),
			workflowvariantstep.StepOrderEQ(2),
			workflowvariantstep.StepKeyEQ("finance"),
		).
		SetStepOrder(3).
		Exec(ctx); err != nil {
		return fmt.Errorf("renumber expense finance step: %w", err)
	}
	if _, err := s.client.WorkflowVariantStep.Create().
		SetWorkflowKey("expense").
		SetStepOrder(2).
		SetStepKey("gm").
		SetAssigneeKind("role").
		SetAssigneeValue("admin").
		SetConditionKind("min_amount").
		SetConditionValue("5000").
		Save(ctx); err != nil {
		return fmt.Errorf("insert expense gm step: %w", err)
	}
	logger.Info("Upgraded legacy expense workflow to three steps")
	return nil
}

func (s *Seeder) reconcileVariant(ctx context.Context, v seedVariant) error {
	exists, err := s.client.WorkflowVariant.Query().
		Where(workflowvariant.WorkflowKeyEQ(v.WorkflowKey)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query variant %s: %w", v.WorkflowKey, err)
	}
	if !exists {
		category := v.Category
		if category == "" {
			category = DefaultCategory(v.RequestType)
		}
		if _, err := s.client.WorkflowVariant.Create().
			SetWorkflowKey(v.WorkflowKey).
			SetRequestType(v.RequestType).
			SetName(v.Name).
			SetCategory(category).
			SetScopeKind(workflowvariant.ScopeKindGlobal).
			SetEnabled(true).
			SetIsDefault(true).
			Save(ctx); err != nil {
			return fmt.Errorf("seed variant %s: %w", v.WorkflowKey, err)
		}
	}

	hasSteps, err := s.client.WorkflowVariantStep.Query().
		Where(workflowvariantstep.WorkflowKeyEQ(v.WorkflowKey)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query steps %s: %w", v.WorkflowKey, err)
	}
	if hasSteps {
		return nil
	}

	for _, st := range v.Steps {
		create := s.client.WorkflowVariantStep.Create().
			SetWorkflowKey(v.WorkflowKey).
			SetStepOrder(st.StepOrder).
			SetStepKey(st.StepKey).
			SetAssigneeKind(st.AssigneeKind)
		if st.AssigneeValue != "" {
			create = create.SetAssigneeValue(st.AssigneeValue)
		}
		if st.ConditionKind != "" {
			create = create.
				SetConditionKind(st.ConditionKind).
				SetConditionValue(st.ConditionValue)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("seed steps %s: %w", v.WorkflowKey, err)
		}
	}
	return nil
}
