package workflow

import (
	"strconv"
	"strings"

	"oaflow.io/oaflow/ent"
)

// StepIncluded evaluates a step's guard against the request payload and the
// creator's department. A step with no condition_kind passes. Unknown kinds
// pass too: skipping an unknown gate would silently weaken controls when
// the catalog is ahead of this binary.
func StepIncluded(step *ent.WorkflowVariantStep, payload map[string]interface{}, creatorDept *string) bool {
	kind := strings.TrimSpace(step.ConditionKind)
	value := strings.TrimSpace(step.ConditionValue)
	if kind == "" {
		return true
	}

	switch kind {
	case "min_amount":
		amount, ok := payloadFloat(payload, "amount")
		if !ok {
			return false
		}
		threshold, ok := parseFloat(value)
		if !ok {
			return false
		}
		return amount >= threshold

	case "max_amount":
		amount, ok := payloadFloat(payload, "amount")
		if !ok {
			return false
		}
		threshold, ok := parseFloat(value)
		if !ok {
			return false
		}
		return amount <= threshold

	case "min_days":
		days, ok := payloadInt(payload, "days")
		if !ok {
			return false
		}
		threshold, ok := parseInt(value)
		if !ok {
			return false
		}
		return days >= threshold

	case "dept_in":
		if creatorDept == nil {
			return false
		}
		dept := strings.ToLower(strings.TrimSpace(*creatorDept))
		if dept == "" {
			return false
		}
		allowed := splitList(value)
		if len(allowed) == 0 {
			return false
		}
		return contains(allowed, dept)

	case "category_in":
		if payload == nil {
			return false
		}
		category := strings.ToLower(strings.TrimSpace(payloadString(payload, "category")))
		allowed := splitList(value)
		if len(allowed) == 0 {
			return false
		}
		return contains(allowed, category)
	}

	return true
}

// FindNextStep returns the smallest-order step after currentOrder whose
// condition passes, or nil. currentOrder nil means search from the start.
func FindNextStep(steps []*ent.WorkflowVariantStep, currentOrder *int, payload map[string]interface{}, creatorDept *string) *ent.WorkflowVariantStep {
	for _, s := range steps {
		if currentOrder != nil && s.StepOrder <= *currentOrder {
			continue
		}
		if StepIncluded(s, payload, creatorDept) {
			return s
		}
	}
	return nil
}

// splitList lowercases and splits a comma/semicolon separated list,
// dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func payloadString(payload map[string]interface{}, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func payloadFloat(payload map[string]interface{}, key string) (float64, bool) {
	if payload == nil {
		return 0, false
	}
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		return parseFloat(v)
	default:
		return 0, false
	}
}

func payloadInt(payload map[string]interface{}, key string) (int, bool) {
	if payload == nil {
		return 0, false
	}
	switch v := payload[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		return parseInt(v)
	default:
		return 0, false
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
