package domain

import "fmt"

// personaFields is the allow-list of top-level persona keys.
var personaFields = map[string]bool{
	"name":        true,
	"description": true,
	"cmd":         true,
	"env":         true,
	"skills":      true,
}

// personaLegacy maps retired persona field names to remediation hints.
var personaLegacy = map[string]string{
	"command":     `rename "command" to "cmd"`,
	"commands":    `rename "commands" to "cmd"`,
	"skill":       `rename "skill" to "skills"`,
	"environment": `rename "environment" to "env"`,
	"variables":   `rename "variables" to "env"`,
	"model":       `set the model through "env" (e.g. env.ANTHROPIC_MODEL)`,
}

// ValidatePersona checks a parsed persona document against the persona
// schema. isRoot marks a root persona (no ancestor directory defines one),
// which must fully specify its invocation command; non-root personas may
// omit "cmd" because it is inherited.
func ValidatePersona(dir string, doc *Document, isRoot bool) *ValidationResult {
	r := NewValidationResult(dir)
	fields := doc.Fields

	if name, ok := asString(fields["name"]); ok {
		r.Name = name
	}

	requireString(r, fields, "name")

	cmdVal, hasCmd := fields["cmd"]
	if !hasCmd && isRoot {
		r.AddError(KindMissingField, "cmd",
			`root persona must define "cmd"; there is no ancestor persona to inherit it from`, "")
	}
	if hasCmd {
		validateCmd(r, cmdVal)
	}

	if v, present := fields["env"]; present {
		validatePersonaEnv(r, v)
	}

	if v, present := fields["skills"]; present {
		validateSkills(r, v)
	}

	checkUnknownFields(r, fields, personaFields, personaLegacy)
	return r
}

// validateCmd checks the invocation command: a string or an array of
// strings.
func validateCmd(r *ValidationResult, v any) {
	if _, ok := asString(v); ok {
		return
	}
	parts, ok := asArray(v)
	if !ok {
		r.AddError(KindInvalidType, "cmd",
			fmt.Sprintf(`"cmd" must be a string or an array of strings, got %s`, typeName(v)), "")
		return
	}
	for i, part := range parts {
		if _, ok := asString(part); !ok {
			r.AddError(KindInvalidType, fmt.Sprintf("cmd[%d]", i),
				fmt.Sprintf("command argument must be a string, got %s", typeName(part)), "")
		}
	}
}

// validatePersonaEnv checks the env block. Non-string values are warnings
// rather than errors: the looseness is deliberate, since numbers and
// booleans have an obvious string form.
func validatePersonaEnv(r *ValidationResult, v any) {
	env, ok := asObject(v)
	if !ok {
		r.AddError(KindInvalidType, "env",
			fmt.Sprintf(`"env" must be an object of variables, got %s`, typeName(v)), "")
		return
	}
	for _, key := range sortedKeys(env) {
		if _, ok := asString(env[key]); !ok {
			r.AddWarning(KindInvalidType, "env."+key,
				fmt.Sprintf("environment value should be a string, got %s", typeName(env[key])),
				`quote the value or use variable expansion (e.g. "${HOME}/bin")`)
		}
	}
}

// validateSkills checks the skills declaration: an array of glob pattern
// strings.
func validateSkills(r *ValidationResult, v any) {
	patterns, ok := asArray(v)
	if !ok {
		r.AddError(KindInvalidType, "skills",
			fmt.Sprintf(`"skills" must be an array of glob patterns, got %s`, typeName(v)), "")
		return
	}
	for i, p := range patterns {
		if _, ok := asString(p); !ok {
			r.AddError(KindInvalidType, fmt.Sprintf("skills[%d]", i),
				fmt.Sprintf("skill pattern must be a string, got %s", typeName(p)), "")
		}
	}
}
