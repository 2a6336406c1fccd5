// Package validate implements declarative request field validation as
// ordered chains of (field, predicate, message) rules. A chain reports every
// violated rule's message, in declaration order, so callers can join them
// into a single human-readable error.
package validate

import (
	"unicode/utf8"
)

// Rule is one declarative field check. A rule on an absent field fails
// unless it is marked optional.
type Rule struct {
	Field   string
	Message string

	optional bool
	present  bool
	valid    func() bool
}

// Optional returns a copy of the rule that is skipped when the field is
// absent from the request body.
func (r Rule) Optional() Rule {
	r.optional = true
	return r
}

// Length requires value to be present with a character count between min and
// max inclusive. A max <= 0 means unbounded.
func Length(field string, value *string, min, max int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		present: value != nil,
		valid: func() bool {
			n := utf8.RuneCountInString(*value)
			return n >= min && (max <= 0 || n <= max)
		},
	}
}

// IntRange requires value to be present with an integer value between min
// and max inclusive.
func IntRange(field string, value *int, min, max int, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		present: value != nil,
		valid: func() bool {
			return *value >= min && *value <= max
		},
	}
}

// OneOf requires value to be present and equal to one of the allowed values.
func OneOf(field string, value *string, allowed []string, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		present: value != nil,
		valid: func() bool {
			for _, a := range allowed {
				if *value == a {
					return true
				}
			}
			return false
		},
	}
}

// Required requires the field to be present; it places no constraint on the
// value itself.
func Required(field string, present bool, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		present: present,
		valid:   func() bool { return true },
	}
}

// Chain is an ordered list of rules evaluated uniformly against one request
// body.
type Chain []Rule

// Validate evaluates all rules and returns the messages of the violated
// ones, in declaration order. A nil result means the body is valid.
func (c Chain) Validate() []string {
	var msgs []string
	for _, r := range c {
		if !r.present {
			if !r.optional {
				msgs = append(msgs, r.Message)
			}
			continue
		}
		if !r.valid() {
			msgs = append(msgs, r.Message)
		}
	}
	return msgs
}
