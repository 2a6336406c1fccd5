package validate

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestLength(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		min   int
		max   int
		want  bool
	}{
		{"in range", strPtr("alice"), 1, 50, true},
		{"at min", strPtr("a"), 1, 50, true},
		{"below min", strPtr(""), 1, 50, false},
		{"above max", strPtr("toolong"), 1, 5, false},
		{"unbounded max", strPtr("averylongpassword"), 6, 0, true},
		{"below min unbounded max", strPtr("short"), 6, 0, false},
		{"absent", nil, 1, 50, false},
		{"multibyte counts runes", strPtr("héllo"), 5, 5, true},
	}
	for _, tt := range tests {
		msgs := Chain{Length("f", tt.value, tt.min, tt.max, "bad")}.Validate()
		if got := msgs == nil; got != tt.want {
			t.Errorf("%s: valid = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name  string
		value *int
		want  bool
	}{
		{"low bound", intPtr(1), true},
		{"high bound", intPtr(4), true},
		{"below", intPtr(0), false},
		{"above", intPtr(5), false},
		{"absent", nil, false},
	}
	for _, tt := range tests {
		msgs := Chain{IntRange("rw", tt.value, 1, 4, "bad")}.Validate()
		if got := msgs == nil; got != tt.want {
			t.Errorf("%s: valid = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"user", "admin"}
	if msgs := (Chain{OneOf("role", strPtr("admin"), allowed, "bad")}).Validate(); msgs != nil {
		t.Errorf("expected valid, got %v", msgs)
	}
	if msgs := (Chain{OneOf("role", strPtr("root"), allowed, "bad")}).Validate(); msgs == nil {
		t.Error("expected violation for value outside the set")
	}
	if msgs := (Chain{OneOf("role", nil, allowed, "bad")}).Validate(); msgs == nil {
		t.Error("expected violation for absent field")
	}
}

func TestRequired(t *testing.T) {
	if msgs := (Chain{Required("id", true, "id required")}).Validate(); msgs != nil {
		t.Errorf("expected valid, got %v", msgs)
	}
	if msgs := (Chain{Required("id", false, "id required")}).Validate(); len(msgs) != 1 || msgs[0] != "id required" {
		t.Errorf("expected single 'id required' violation, got %v", msgs)
	}
}

func TestOptionalSkipsAbsentOnly(t *testing.T) {
	// Absent and optional: skipped
	if msgs := (Chain{Length("password", nil, 6, 0, "bad").Optional()}).Validate(); msgs != nil {
		t.Errorf("optional rule on absent field should pass, got %v", msgs)
	}
	// Present but invalid: still reported
	if msgs := (Chain{Length("password", strPtr("abc"), 6, 0, "bad").Optional()}).Validate(); msgs == nil {
		t.Error("optional rule on present invalid field should fail")
	}
}

func TestChainReportsAllViolationsInOrder(t *testing.T) {
	msgs := Chain{
		Length("username", nil, 1, 50, "first"),
		Length("password", strPtr("abc"), 6, 0, "second"),
		OneOf("role", strPtr("root"), []string{"user", "admin"}, "third"),
	}.Validate()
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("got %v, want %v", msgs, want)
	}
}
