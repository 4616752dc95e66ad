package validation

import (
	"reflect"
	"testing"
)

func lookupOf(values map[string]string) Lookup {
	return func(field string) string { return values[field] }
}

var testRules = []Rule{
	{Name: "name", Fields: []string{"first", "last"}, Message: "name"},
	{Name: "country", Fields: []string{"country"}, Message: "country"},
	{Name: "countryOther", Fields: []string{"countryOther"}, When: &Condition{Field: "country", Equals: "Other"}, Message: "countryOther"},
	{Name: "help", Fields: []string{"help"}, Message: "help"},
	{Name: "helpOther", Fields: []string{"helpOther"}, When: &Condition{Field: "help", Equals: "other", FoldCase: true}, Message: "helpOther"},
	{Name: "rating", Fields: []string{"rating"}, Check: OneOf("1", "2", "3"), Message: "rating"},
}

func TestFirstFailureReturnsEarliestRule(t *testing.T) {
	values := map[string]string{"first": "Ana", "last": " ", "country": ""}
	rule, failed := FirstFailure(testRules, lookupOf(values))
	if !failed || rule.Name != "name" {
		t.Fatalf("first failure = %q (%v), want name", rule.Name, failed)
	}

	values["last"] = "Lopez"
	rule, _ = FirstFailure(testRules, lookupOf(values))
	if rule.Name != "country" {
		t.Fatalf("first failure = %q, want country", rule.Name)
	}
}

func TestConditionalRules(t *testing.T) {
	base := map[string]string{"first": "A", "last": "B", "country": "Other", "help": "Other", "rating": "2"}

	rule, failed := FirstFailure(testRules, lookupOf(base))
	if !failed || rule.Name != "countryOther" {
		t.Fatalf("first failure = %q, want countryOther", rule.Name)
	}

	base["countryOther"] = "Peru"
	rule, failed = FirstFailure(testRules, lookupOf(base))
	if !failed || rule.Name != "helpOther" {
		t.Fatalf("first failure = %q, want helpOther (case-folded)", rule.Name)
	}

	base["help"] = "housing"
	if rule, failed := FirstFailure(testRules, lookupOf(base)); failed {
		t.Fatalf("unexpected failure %q", rule.Name)
	}

	base["country"] = " Other "
	base["countryOther"] = ""
	if rule, _ := FirstFailure(testRules, lookupOf(base)); rule.Name != "countryOther" {
		t.Fatalf("condition should compare trimmed values, got %q", rule.Name)
	}
}

func TestChecks(t *testing.T) {
	values := map[string]string{"first": "A", "last": "B", "country": "AU", "help": "x", "rating": "9"}
	rule, failed := FirstFailure(testRules, lookupOf(values))
	if !failed || rule.Name != "rating" {
		t.Fatalf("first failure = %q, want rating", rule.Name)
	}
	values["rating"] = " 3 "
	if _, failed := FirstFailure(testRules, lookupOf(values)); failed {
		t.Fatal("expected trimmed rating to pass")
	}
}

func TestViolationsAggregates(t *testing.T) {
	values := map[string]string{"first": "A", "country": "Other", "rating": "1"}
	var names []string
	for _, rule := range Violations(testRules, lookupOf(values)) {
		names = append(names, rule.Name)
	}
	want := []string{"name", "countryOther", "help"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("violations = %v, want %v", names, want)
	}

	fields := MissingFields(testRules, lookupOf(values))
	wantFields := []string{"last", "countryOther", "help"}
	if !reflect.DeepEqual(fields, wantFields) {
		t.Fatalf("missing fields = %v, want %v", fields, wantFields)
	}
}

func TestWithCheckDoesNotMutateOriginal(t *testing.T) {
	original := Rule{Name: "x", Fields: []string{"x"}}
	checked := original.WithCheck(OneOf("ok"))
	if original.Check != nil {
		t.Fatal("original rule was mutated")
	}
	if checked.Satisfied(lookupOf(map[string]string{"x": "nope"})) {
		t.Fatal("expected checked rule to reject")
	}
	if !original.Satisfied(lookupOf(map[string]string{"x": "nope"})) {
		t.Fatal("expected original rule to accept")
	}
}
