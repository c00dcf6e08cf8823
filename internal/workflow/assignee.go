package workflow

import (
	"context"
	"strconv"
	"strings"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/ent/user"
)

const fallbackRole = "admin"

// assignee is one resolved task target: exactly one of userID / role set.
type assignee struct {
	userID *int
	role   *string
}

func userAssignee(id int) assignee {
	return assignee{userID: &id}
}

func roleAssignee(role string) assignee {
	return assignee{role: &role}
}

// ParseIDList parses a comma/semicolon separated list of user ids,
// dropping malformed entries and duplicates while preserving order.
func ParseIDList(value string) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveSingleAssignee maps a singleton step to its task target. Unknown
// kinds and missing values fall back to the admin role so the workflow
// never stalls.
func resolveSingleAssignee(creator Actor, step *ent.WorkflowVariantStep) assignee {
	value := strings.TrimSpace(step.AssigneeValue)
	switch step.AssigneeKind {
	case "manager":
		if creator.ManagerID != nil {
			return userAssignee(*creator.ManagerID)
		}
		return roleAssignee(fallbackRole)
	case "role":
		if value != "" {
			return roleAssignee(value)
		}
		return roleAssignee(fallbackRole)
	case "user":
		if value != "" {
			if id, err := strconv.Atoi(value); err == nil {
				return userAssignee(id)
			}
		}
		return roleAssignee(fallbackRole)
	}
	return roleAssignee(fallbackRole)
}

// createTasksForStep materializes the pending task rows for one step and
// returns the step key. Parallel kinds fan out one task per member; an
// empty expansion yields a single admin-role fallback task.
func createTasksForStep(ctx context.Context, tx *ent.Tx, requestID int, creator Actor, step *ent.WorkflowVariantStep) (string, error) {
	if step.AssigneeKind == "users_all" || step.AssigneeKind == "users_any" {
		var memberIDs []int
		v := strings.ToLower(strings.TrimSpace(step.AssigneeValue))
		if v == "all" || v == "*" || v == "everyone" {
			ids, err := tx.User.Query().
				Order(ent.Asc(user.FieldID)).
				Select(user.FieldID).
				Ints(ctx)
			if err != nil {
				return "", err
			}
			for _, id := range ids {
				if id != creator.ID {
					memberIDs = append(memberIDs, id)
				}
			}
		} else {
			memberIDs = ParseIDList(step.AssigneeValue)
		}

		if len(memberIDs) == 0 {
			if err := createTask(ctx, tx, requestID, step.StepOrder, step.StepKey, roleAssignee(fallbackRole)); err != nil {
				return "", err
			}
			return step.StepKey, nil
		}
		for _, uid := range memberIDs {
			if err := createTask(ctx, tx, requestID, step.StepOrder, step.StepKey, userAssignee(uid)); err != nil {
				return "", err
			}
		}
		return step.StepKey, nil
	}

	target := resolveSingleAssignee(creator, step)
	if err := createTask(ctx, tx, requestID, step.StepOrder, step.StepKey, target); err != nil {
		return "", err
	}
	return step.StepKey, nil
}

func createTask(ctx context.Context, tx *ent.Tx, requestID, stepOrder int, stepKey string, target assignee) error {
	create := tx.Task.Create().
		SetRequestID(requestID).
		SetStepOrder(stepOrder).
		SetStepKey(stepKey)
	if target.userID != nil {
		create = create.SetAssigneeUserID(*target.userID)
	}
	if target.role != nil {
		create = create.SetAssigneeRole(*target.role)
	}
	_, err := create.Save(ctx)
	return err
}
