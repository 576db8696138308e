package cron_test

import (
	"testing"

	"github.com/crewlint/crewlint/internal/domain/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FieldCount(t *testing.T) {
	tests := []struct {
		expr  string
		count string
	}{
		{"* * * *", "got 4"},
		{"* * * * * *", "got 6"},
		{"", "got 0"},
		{"0 9", "got 2"},
	}

	for _, tt := range tests {
		err := cron.Validate(tt.expr)
		require.Error(t, err, "expr %q", tt.expr)
		assert.Contains(t, err.Error(), "expected 5 fields")
		assert.Contains(t, err.Error(), tt.count, "error should name the actual count for %q", tt.expr)
	}
}

func TestValidate_ValidExpressions(t *testing.T) {
	valid := []string{
		"* * * * *",
		"0 9 * * *",
		"30 9 * * 1-5",
		"*/15 * * * *",
		"0 */2 * * *",
		"0 9 1,15 * *",
		"0 9 * * 1,3,5",
		"1-5/2 * * * *", // step over a range base is deliberately accepted
		"0 0 1 1 0",
		"59 23 31 12 7",
	}

	for _, expr := range valid {
		assert.NoError(t, cron.Validate(expr), "expr %q should be valid", expr)
	}
}

func TestValidate_RangeEnforcement(t *testing.T) {
	tests := []struct {
		expr    string
		field   string
	}{
		{"60 * * * *", "minute"},
		{"* 24 * * *", "hour"},
		{"* * 0 * *", "day of month"},
		{"* * 32 * *", "day of month"},
		{"* * * 13 *", "month"},
		{"* * * 0 *", "month"},
		{"* * * * 8", "day of week"},
	}

	for _, tt := range tests {
		err := cron.Validate(tt.expr)
		require.Error(t, err, "expr %q", tt.expr)
		assert.Contains(t, err.Error(), tt.field, "error should name the failing field for %q", tt.expr)
	}
}

func TestValidate_DayOfWeekSundayAlias(t *testing.T) {
	// 0 and 7 both denote Sunday.
	assert.NoError(t, cron.Validate("0 9 * * 0"))
	assert.NoError(t, cron.Validate("0 9 * * 7"))
}

func TestValidate_Steps(t *testing.T) {
	assert.NoError(t, cron.Validate("*/5 * * * *"))
	assert.NoError(t, cron.Validate("10/5 * * * *"))

	err := cron.Validate("*/0 * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	err = cron.Validate("*/x * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestValidate_Ranges(t *testing.T) {
	err := cron.Validate("* * * * 5-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after end")

	err = cron.Validate("* 1-x * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestValidate_Lists(t *testing.T) {
	assert.NoError(t, cron.Validate("0 9 * * 1,3,5"))
	assert.NoError(t, cron.Validate("0 9 1-5,10-15 * *"))

	// Commas split before step parsing, so the last element is "5/2".
	assert.NoError(t, cron.Validate("1,3,5/2 * * * *"))

	err := cron.Validate("1,,3 * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty list element")

	err = cron.Validate("0 9 * * 1,9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day of week")
}

func TestValidate_Garbage(t *testing.T) {
	for _, expr := range []string{
		"a b c d e",
		"? * * * *",
		"0 9 * * mon",
	} {
		assert.Error(t, cron.Validate(expr), "expr %q should be invalid", expr)
	}
}
