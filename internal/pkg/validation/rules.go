package validation

import (
	"strings"
)

// Lookup returns the raw value of a named field.
type Lookup func(field string) string

// Condition makes a rule apply only when another field holds a sentinel value.
type Condition struct {
	Field  string
	Equals string
	// FoldCase compares case-insensitively.
	FoldCase bool
}

// Holds reports whether the condition's field currently equals its sentinel.
func (c Condition) Holds(lookup Lookup) bool {
	value := strings.TrimSpace(lookup(c.Field))
	if c.FoldCase {
		return strings.EqualFold(value, c.Equals)
	}
	return value == c.Equals
}

// Rule requires every field in Fields to be non-blank, optionally only when
// a condition holds. Check, when set, must also accept each trimmed value.
type Rule struct {
	Name    string
	Fields  []string
	When    *Condition
	Check   func(value string) bool
	Message string
}

// Applies reports whether the rule is in force for the current values.
func (r Rule) Applies(lookup Lookup) bool {
	return r.When == nil || r.When.Holds(lookup)
}

// Satisfied reports whether the rule passes. Rules that do not apply pass.
func (r Rule) Satisfied(lookup Lookup) bool {
	if !r.Applies(lookup) {
		return true
	}
	for _, field := range r.Fields {
		value := strings.TrimSpace(lookup(field))
		if value == "" {
			return false
		}
		if r.Check != nil && !r.Check(value) {
			return false
		}
	}
	return true
}

// WithCheck returns a copy of r that also runs check on each value.
func (r Rule) WithCheck(check func(value string) bool) Rule {
	r.Check = check
	return r
}

// FirstFailure evaluates rules in order and returns the first that fails.
func FirstFailure(rules []Rule, lookup Lookup) (Rule, bool) {
	for _, rule := range rules {
		if !rule.Satisfied(lookup) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Violations evaluates every rule and returns all that fail, in order.
func Violations(rules []Rule, lookup Lookup) []Rule {
	var failed []Rule
	for _, rule := range rules {
		if !rule.Satisfied(lookup) {
			failed = append(failed, rule)
		}
	}
	return failed
}

// MissingFields flattens violated rules into the names of their blank or
// rejected fields.
func MissingFields(rules []Rule, lookup Lookup) []string {
	var fields []string
	for _, rule := range Violations(rules, lookup) {
		for _, field := range rule.Fields {
			value := strings.TrimSpace(lookup(field))
			if value == "" || (rule.Check != nil && !rule.Check(value)) {
				fields = append(fields, field)
			}
		}
	}
	return fields
}

// OneOf builds a Check accepting only the listed values.
func OneOf(values ...string) func(string) bool {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return func(value string) bool {
		_, ok := allowed[value]
		return ok
	}
}
