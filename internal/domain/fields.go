package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
)

// asString returns v as a string when it is one.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asObject returns v as a key-value map when it is one. YAML mappings
// decode to map[string]any under yaml.v3.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asArray returns v as a slice when it is one.
func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// typeName names a decoded YAML value's type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// requireString checks a required top-level string field and records the
// appropriate issue when it is missing or mistyped. It returns the value
// when present and valid.
func requireString(r *ValidationResult, fields map[string]any, key string) (string, bool) {
	v, present := fields[key]
	if !present {
		r.AddError(KindMissingField, key,
			fmt.Sprintf("required field %q is missing", key), "")
		return "", false
	}
	s, ok := asString(v)
	if !ok {
		r.AddError(KindInvalidType, key,
			fmt.Sprintf("field %q must be a string, got %s", key, typeName(v)), "")
		return "", false
	}
	return s, true
}

// checkUnknownFields warns on every top-level key outside the allow-list.
// Known legacy names get a targeted deprecation suggestion; camelCase
// spellings of allowed keys get a "did you mean" hint; anything else gets
// a bare unknown-field warning.
func checkUnknownFields(r *ValidationResult, fields map[string]any, allowed map[string]bool, legacy map[string]string, skip ...string) {
	skipped := make(map[string]bool, len(skip))
	for _, k := range skip {
		skipped[k] = true
	}
	for _, key := range sortedKeys(fields) {
		if allowed[key] || skipped[key] {
			continue
		}
		if hint, ok := legacy[key]; ok {
			r.AddWarning(KindDeprecatedField, key,
				fmt.Sprintf("field %q is not supported", key), hint)
			continue
		}
		if snake := snakeAlias(key, allowed); snake != "" {
			r.AddWarning(KindUnknownField, key,
				fmt.Sprintf("unknown field %q", key),
				fmt.Sprintf("did you mean %q?", snake))
			continue
		}
		r.AddWarning(KindUnknownField, key,
			fmt.Sprintf("unknown field %q", key), "")
	}
}

// sortedKeys returns map keys in sorted order so repeated runs over the
// same document emit issues in a stable order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// snakeAlias converts a camelCase key to snake_case and returns it when
// the converted spelling is an allowed field ("workingDir" -> "working_dir").
func snakeAlias(key string, allowed map[string]bool) string {
	words := camelcase.Split(key)
	if len(words) < 2 {
		return ""
	}
	snake := strings.ToLower(strings.Join(words, "_"))
	if allowed[snake] {
		return snake
	}
	return ""
}
