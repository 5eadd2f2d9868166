package decisioning

import (
	"strings"
	"testing"

	"modcon/internal/fieldalias"
)

func TestValidate(t *testing.T) {
	rules := []fieldalias.Record{
		{"name": "Parents", "conditions": []any{map[string]any{"type": "audience"}}, "action": map[string]any{"module_id": "h1"}, "priority": float64(10)},
		{"name": "", "conditions": []any{}, "priority": float64(10)},
		{"name": "Default", "conditions": []any{"x"}, "action": map[string]any{"module_id": "h2"}},
	}
	r := Validate(rules)
	if r.IsValid {
		t.Fatalf("IsValid = true, want false")
	}
	wantErrs := []string{
		"Rule 2: Missing name",
		"Rule 2: No conditions defined",
		"Rule 2: No action defined",
	}
	if strings.Join(r.Errors, "|") != strings.Join(wantErrs, "|") {
		t.Fatalf("errors = %v", r.Errors)
	}
	wantWarn := []string{"Rule 1: Duplicate priority 10", "Rule 2: Duplicate priority 10"}
	if strings.Join(r.Warnings, "|") != strings.Join(wantWarn, "|") {
		t.Fatalf("warnings = %v", r.Warnings)
	}
	if r.RuleCount != 3 {
		t.Fatalf("rule_count = %d, want 3", r.RuleCount)
	}
}

func TestValidateDefaultPriorityCollides(t *testing.T) {
	r := Validate([]fieldalias.Record{
		{"name": "a", "conditions": []any{1}, "action": map[string]any{"x": 1}},
		{"name": "b", "conditions": []any{1}, "action": map[string]any{"x": 1}, "priority": float64(100)},
	})
	if !r.IsValid || len(r.Warnings) != 2 {
		t.Fatalf("report = %+v", r)
	}
	if r.Warnings[0] != "Rule 1: Duplicate priority 100" {
		t.Fatalf("warning = %q", r.Warnings[0])
	}
}

func TestOperatorsVocabulary(t *testing.T) {
	v := Operators()
	if len(v.ConditionTypes) != 9 || len(v.Operators) != 8 {
		t.Fatalf("sizes = %d/%d, want 9/8", len(v.ConditionTypes), len(v.Operators))
	}
	if v.Operators[3].ID != "not_contains" || v.Operators[3].Label != "Does Not Contain" {
		t.Fatalf("operator = %+v", v.Operators[3])
	}
	if v.ConditionTypes[0].Label != "Audience Segment" {
		t.Fatalf("condition = %+v", v.ConditionTypes[0])
	}
}
