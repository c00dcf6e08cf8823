package workflow

import (
	"context"
	"fmt"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/catalog"
)

// syntheticAdminStepKey labels the task created when no variant resolves at
// all; the request still needs one approver rather than auto-approving.
const syntheticAdminStepKey = "admin"

// loadSteps resolves the effective step list for a request via the
// fallback chain: workflow_key, then request_type, then "generic". Variants
// may be deleted out from under live requests; the chain keeps them moving.
func loadSteps(ctx context.Context, tx *ent.Tx, workflowKey, requestType string) ([]*ent.WorkflowVariantStep, error) {
	steps, err := catalog.ListSteps(ctx, tx.WorkflowVariantStep, workflowKey)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 && workflowKey != requestType {
		steps, err = catalog.ListSteps(ctx, tx.WorkflowVariantStep, requestType)
		if err != nil {
			return nil, err
		}
	}
	if len(steps) == 0 {
		steps, err = catalog.ListSteps(ctx, tx.WorkflowVariantStep, "generic")
		if err != nil {
			return nil, err
		}
	}
	return steps, nil
}

// startWorkflow materializes the first step's tasks for a request. When the
// fallback chain yields no steps at all, a synthetic single admin task is
// created. When every step's condition fails, the textually first step is
// used: a fully gated workflow must still produce some approver.
func startWorkflow(ctx context.Context, tx *ent.Tx, req *ent.Request, creator Actor, workflowKey string) error {
	steps, err := loadSteps(ctx, tx, workflowKey, req.RequestType)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		if err := createTask(ctx, tx, req.ID, 1, syntheticAdminStepKey, roleAssignee(fallbackRole)); err != nil {
			return err
		}
		return appendEvent(ctx, tx, req.ID, EventTaskCreated, nil, fmt.Sprintf("step=%s", syntheticAdminStepKey))
	}

	first := FindNextStep(steps, nil, req.Payload, creator.Dept)
	if first == nil {
		first = steps[0]
	}
	stepKey, err := createTasksForStep(ctx, tx, req.ID, creator, first)
	if err != nil {
		return err
	}
	return appendEvent(ctx, tx, req.ID, EventTaskCreated, nil, fmt.Sprintf("step=%s", stepKey))
}
