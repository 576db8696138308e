// Package cron validates 5-field cron expressions and translates
// natural-language schedule phrases into cron strings for suggestions.
package cron

import (
	"fmt"
	"strconv"
	"strings"
)

// field describes one of the five cron positions.
type field struct {
	name string
	min  int
	max  int
}

// Day-of-week spans 0-7: both 0 and 7 mean Sunday, so either endpoint
// is accepted wherever a day-of-week number appears.
var fields = [5]field{
	{name: "minute", min: 0, max: 59},
	{name: "hour", min: 0, max: 23},
	{name: "day of month", min: 1, max: 31},
	{name: "month", min: 1, max: 12},
	{name: "day of week", min: 0, max: 7},
}

// Validate checks a cron expression field-by-field. It returns nil for a
// valid expression and an error naming the failing field otherwise.
func Validate(expr string) error {
	tokens := strings.Fields(expr)
	if len(tokens) != 5 {
		return fmt.Errorf("expected 5 fields (minute hour day-of-month month day-of-week), got %d", len(tokens))
	}

	for i, tok := range tokens {
		if err := validateField(tok, fields[i]); err != nil {
			return fmt.Errorf("%s field %q: %w", fields[i].name, tok, err)
		}
	}
	return nil
}

// validateField applies the per-field grammar recursively, so compound
// forms (lists of ranges, steps over ranges) validate their parts.
func validateField(value string, f field) error {
	if value == "*" {
		return nil
	}

	// Lists first, so "1,2-5" splits before range handling sees a comma.
	if strings.Contains(value, ",") {
		for _, part := range strings.Split(value, ",") {
			if part == "" {
				return fmt.Errorf("empty list element")
			}
			if err := validateField(part, f); err != nil {
				return err
			}
		}
		return nil
	}

	if base, step, ok := strings.Cut(value, "/"); ok {
		return validateStep(base, step, f)
	}

	if start, end, ok := strings.Cut(value, "-"); ok {
		return validateRange(start, end, f)
	}

	return validateNumber(value, f)
}

// validateStep checks a base/step expression. The step must be a positive
// integer; the base may be "*", a plain number, or a range. A range base
// ("1-5/2") is deliberately accepted with the step only checked for
// positivity. A list can never reach here as a base: commas split before
// step parsing, so "1,3,5/2" is a list whose last element is "5/2".
func validateStep(base, step string, f field) error {
	n, err := strconv.Atoi(step)
	if err != nil {
		return fmt.Errorf("step %q is not a number", step)
	}
	if n <= 0 {
		return fmt.Errorf("step must be a positive integer, got %d", n)
	}

	if base == "*" {
		return nil
	}
	if start, end, ok := strings.Cut(base, "-"); ok {
		return validateRange(start, end, f)
	}
	return validateNumber(base, f)
}

// validateRange checks a start-end range: both endpoints numeric, in range,
// and ordered.
func validateRange(start, end string, f field) error {
	s, err := strconv.Atoi(start)
	if err != nil {
		return fmt.Errorf("range start %q is not a number", start)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return fmt.Errorf("range end %q is not a number", end)
	}
	if s < f.min || s > f.max {
		return fmt.Errorf("range start %d is outside %d-%d", s, f.min, f.max)
	}
	if e < f.min || e > f.max {
		return fmt.Errorf("range end %d is outside %d-%d", e, f.min, f.max)
	}
	if s > e {
		return fmt.Errorf("range start %d is after end %d", s, e)
	}
	return nil
}

func validateNumber(value string, f field) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q is not a number", value)
	}
	if n < f.min || n > f.max {
		return fmt.Errorf("%d is outside %d-%d", n, f.min, f.max)
	}
	return nil
}
