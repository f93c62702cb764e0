// Package validate checks candidate transaction fields against the
// syntactic rules the rest of the system depends on. Each field has a
// declarative rule set (a pattern or predicate plus advisory warnings),
// so new fields can be added to the table without touching control flow.
package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Result carries the outcome of validating a single field. An empty
// Errors slice means the value is acceptable; Warnings are advisory and
// never block a mutation.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether the value passed validation.
func (r Result) OK() bool { return len(r.Errors) == 0 }

var (
	amountPattern   = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	centsPattern    = regexp.MustCompile(`\.\d{2}\b`)
	datePattern     = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	categoryPattern = regexp.MustCompile(`^[A-Za-z]+([ -][A-Za-z]+)*$`)
	beveragePattern = regexp.MustCompile(`(?i)coffee|tea|soda|juice`)
	wordPattern     = regexp.MustCompile(`\w+`)
)

type warning struct {
	applies func(string) bool
	message string
}

type ruleSet struct {
	valid   func(string) bool
	message string
	// warnAlways evaluates warnings even when the value fails the main
	// rule, matching how description advisories behave.
	warnAlways bool
	warnings   []warning
}

var rules = map[string]ruleSet{
	"description": {
		valid:      descriptionShape,
		message:    "No leading/trailing spaces or double spaces",
		warnAlways: true,
		warnings: []warning{
			{applies: hasDuplicateWords, message: "Duplicate words detected"},
			{applies: beveragePattern.MatchString, message: "Beverage purchase detected"},
		},
	},
	"amount": {
		valid:   amountPattern.MatchString,
		message: "Positive number with up to 2 decimals",
		warnings: []warning{
			{applies: centsPattern.MatchString, message: "Includes cents"},
		},
	},
	"date": {
		valid:   datePattern.MatchString,
		message: "Use YYYY-MM-DD format",
	},
	"category": {
		valid:   categoryPattern.MatchString,
		message: "Letters, spaces, and hyphens only",
	},
}

// Field validates a raw value for the named field. An empty value is a
// single "Required" error for every field. Unrecognized field names
// return an empty result.
func Field(name, value string) Result {
	if value == "" {
		return Result{Errors: []string{"Required"}}
	}

	rs, ok := rules[name]
	if !ok {
		return Result{}
	}

	var res Result

	valid := rs.valid(value)
	if !valid {
		res.Errors = append(res.Errors, rs.message)
	}

	if valid || rs.warnAlways {
		for _, w := range rs.warnings {
			if w.applies(value) {
				res.Warnings = append(res.Warnings, w.message)
			}
		}
	}

	return res
}

// descriptionShape rejects leading/trailing whitespace and any run of
// two or more whitespace characters.
func descriptionShape(s string) bool {
	if strings.TrimSpace(s) != s {
		return false
	}

	prevSpace := false

	for _, r := range s {
		sp := unicode.IsSpace(r)
		if sp && prevSpace {
			return false
		}

		prevSpace = sp
	}

	return s != ""
}

// hasDuplicateWords reports whether the same word appears twice in a row,
// case-insensitively, separated only by whitespace. RE2 has no
// backreferences, so adjacency is checked directly on word spans.
func hasDuplicateWords(s string) bool {
	spans := wordPattern.FindAllStringIndex(s, -1)

	for i := 1; i < len(spans); i++ {
		gap := s[spans[i-1][1]:spans[i][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}

		if strings.EqualFold(s[spans[i-1][0]:spans[i-1][1]], s[spans[i][0]:spans[i][1]]) {
			return true
		}
	}

	return false
}
