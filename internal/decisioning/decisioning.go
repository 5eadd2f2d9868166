// Package decisioning checks DCO decisioning rules and describes the
// vocabulary rules are written in.
package decisioning

import (
	"fmt"

	"modcon/internal/domain"
	"modcon/internal/fieldalias"
)

const defaultPriority = 100

// Report is the outcome of Validate.
type Report struct {
	IsValid   bool     `json:"is_valid"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
	RuleCount int      `json:"rule_count"`
}

// Validate inspects raw rules. Rules are taken loosely keyed so malformed
// input is reported instead of failing to decode.
func Validate(rules []fieldalias.Record) Report {
	r := Report{Errors: []string{}, Warnings: []string{}, RuleCount: len(rules)}

	priorities := make(map[string]int, len(rules))
	for _, rule := range rules {
		priorities[priority(rule)]++
	}
	for i, rule := range rules {
		n := i + 1
		if !fieldalias.Truthy(rule["name"]) {
			r.Errors = append(r.Errors, fmt.Sprintf("Rule %d: Missing name", n))
		}
		if !fieldalias.Truthy(rule["conditions"]) {
			r.Errors = append(r.Errors, fmt.Sprintf("Rule %d: No conditions defined", n))
		}
		if !fieldalias.Truthy(rule["action"]) {
			r.Errors = append(r.Errors, fmt.Sprintf("Rule %d: No action defined", n))
		}
		if p := priority(rule); priorities[p] > 1 {
			r.Warnings = append(r.Warnings, fmt.Sprintf("Rule %d: Duplicate priority %s", n, p))
		}
	}
	r.IsValid = len(r.Errors) == 0
	return r
}

func priority(rule fieldalias.Record) string {
	v, ok := rule["priority"]
	if !ok {
		return fmt.Sprint(defaultPriority)
	}
	return fieldalias.Stringify(v)
}

// Option is one entry of the rule vocabulary.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Vocabulary lists condition types, operators and combinators.
type Vocabulary struct {
	ConditionTypes []Option `json:"condition_types"`
	Operators      []Option `json:"operators"`
	LogicOptions   []string `json:"logic_options"`
}

var conditionLabels = map[domain.ConditionType][2]string{
	domain.ConditionAudience:    {"Audience Segment", "Target specific audience segments"},
	domain.ConditionFunnelStage: {"Funnel Stage", "Awareness, Consideration, Conversion, Retention"},
	domain.ConditionTrigger:     {"Contextual Trigger", "Context-based triggers"},
	domain.ConditionPlatform:    {"Platform", "Media platform (Meta, Google, etc.)"},
	domain.ConditionPlacement:   {"Placement", "Ad placement type"},
	domain.ConditionDaypart:     {"Daypart", "Time of day targeting"},
	domain.ConditionGeo:         {"Geography", "Location-based targeting"},
	domain.ConditionWeather:     {"Weather", "Weather-based triggers"},
	domain.ConditionCustom:      {"Custom", "Custom data field"},
}

var operatorLabels = map[domain.Operator][2]string{
	domain.OperatorEquals:      {"Equals", "Exact match"},
	domain.OperatorNotEquals:   {"Not Equals", "Does not match"},
	domain.OperatorContains:    {"Contains", "Contains substring"},
	domain.OperatorNotContains: {"Does Not Contain", "Does not contain substring"},
	domain.OperatorIn:          {"In List", "Value is in list"},
	domain.OperatorNotIn:       {"Not In List", "Value is not in list"},
	domain.OperatorGreaterThan: {"Greater Than", "Numeric comparison"},
	domain.OperatorLessThan:    {"Less Than", "Numeric comparison"},
}

// Operators returns the rule vocabulary in declaration order.
func Operators() Vocabulary {
	v := Vocabulary{LogicOptions: []string{"AND", "OR"}}
	for _, ct := range domain.ConditionTypes() {
		l := conditionLabels[ct]
		v.ConditionTypes = append(v.ConditionTypes, Option{ID: string(ct), Label: l[0], Description: l[1]})
	}
	for _, op := range domain.Operators() {
		l := operatorLabels[op]
		v.Operators = append(v.Operators, Option{ID: string(op), Label: l[0], Description: l[1]})
	}
	return v
}
