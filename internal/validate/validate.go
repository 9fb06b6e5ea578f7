// Package validate normalizes and checks raw dashboard form input before any
// write is attempted. Form values arrive loosely typed: booleans may be
// checkbox strings ("on", "true") or real booleans, numbers may be strings or
// JSON numbers. Each schema returns a strongly typed input or a field-keyed
// set of messages.
package validate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Errors maps a field name to its first validation message.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// optionalText trims a value and treats whitespace-only input as absent.
func optionalText(v string) string {
	return strings.TrimSpace(v)
}

// flag coerces checkbox-ish input to a boolean. Absent (nil) input takes the
// default; "on", "true" and true are truthy, everything else is false.
func flag(v any, def bool) bool {
	switch t := v.(type) {
	case nil:
		return def
	case bool:
		return t
	case string:
		return t == "on" || t == "true"
	default:
		return false
	}
}

// integer parses string or JSON-number input as an int64.
func integer(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("required")
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return n, nil
	case float64:
		if t != float64(int64(t)) {
			return 0, fmt.Errorf("must be an integer")
		}
		return int64(t), nil
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

// pairedDescriptions enforces the both-or-neither invariant between the
// primary and secondary locale descriptions.
func pairedDescriptions(errs Errors, description, descriptionAr string) {
	if (description != "") != (descriptionAr != "") {
		errs.add("description", "both descriptions must be provided together, or both must be empty")
	}
}
