package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Errors collects field-level validation failures. It satisfies the error
// interface so services can return it directly and handlers can pick it out
// with errors.As.
type Errors map[string][]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Err returns the collected errors, or nil when every rule passed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func Required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

// MaxLen bounds the value in characters, not bytes, so multibyte input is
// measured the same way the store's VARCHAR limit measures it.
func MaxLen(e Errors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		e.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
}

func OneOf(e Errors, field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
}

func MinLen(e Errors, field, value string, min int) {
	if utf8.RuneCountInString(value) < min {
		e.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, min))
	}
}
