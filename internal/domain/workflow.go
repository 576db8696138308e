package domain

import (
	"fmt"
	"strings"

	"github.com/crewlint/crewlint/internal/domain/cron"
)

// workflowFields is the allow-list of top-level workflow keys.
var workflowFields = map[string]bool{
	"name":        true,
	"description": true,
	"persona":     true,
	"on":          true,
	"inputs":      true,
	"outputs":     true,
	"env":         true,
	"timeout":     true,
	"retry":       true,
	"working_dir": true,
}

// workflowLegacy maps retired workflow field names to remediation hints.
// Consulted before the generic unknown-field warning; the same key can
// mean something else in the persona schema, so each kind keeps its own
// table.
var workflowLegacy = map[string]string{
	"goal":        `rename "goal" to "description"`,
	"skills_used": `"skills" belongs in the persona, not the workflow`,
	"skills":      `"skills" belongs in the persona, not the workflow`,
	"schedule":    `move "schedule" under "on.schedule"`,
	"trigger":     `rename "trigger" to "on"`,
	"triggers":    `rename "triggers" to "on"`,
	"command":     `"cmd" belongs in the persona, not the workflow`,
	"cmd":         `"cmd" belongs in the persona, not the workflow`,
}

// triggerKeys is the set of recognized keys under the "on" block.
var triggerKeys = map[string]bool{
	"schedule":          true,
	"manual":            true,
	"file_change":       true,
	"webhook":           true,
	"workflow_complete": true,
	"git":               true,
	"github":            true,
}

// triggerKeyList is the recognized set in stable order, for messages.
var triggerKeyList = []string{
	"schedule", "manual", "file_change", "webhook",
	"workflow_complete", "git", "github",
}

// ValidateWorkflow checks a parsed workflow document against the workflow
// schema and returns a result for the document directory dir.
func ValidateWorkflow(dir string, doc *Document) *ValidationResult {
	r := NewValidationResult(dir)
	fields := doc.Fields

	if name, ok := asString(fields["name"]); ok {
		r.Name = name
	}

	requireString(r, fields, "name")
	goalRename := requireDescription(r, fields)
	requireString(r, fields, "persona")

	if strings.TrimSpace(doc.Body) == "" {
		r.AddError(KindInvalidValue, "body",
			"document body is empty; describe what this workflow should do", "")
	}

	if v, present := fields["on"]; present {
		validateTriggers(r, v)
	}

	if v, present := fields["inputs"]; present {
		validateInputs(r, v)
	}

	if v, present := fields["env"]; present {
		if _, ok := asObject(v); !ok {
			r.AddError(KindInvalidType, "env",
				fmt.Sprintf(`"env" must be an object of variables, got %s`, typeName(v)), "")
		}
	}

	if goalRename {
		// The targeted rename error already covers "goal"; do not warn
		// about it again as a deprecated field.
		checkUnknownFields(r, fields, workflowFields, workflowLegacy, "goal")
	} else {
		checkUnknownFields(r, fields, workflowFields, workflowLegacy)
	}
	return r
}

// requireDescription enforces the required description field, preferring a
// targeted rename error when the document still uses the retired "goal"
// alias. Reports whether that targeted error fired.
func requireDescription(r *ValidationResult, fields map[string]any) bool {
	if _, present := fields["description"]; !present {
		if _, hasGoal := fields["goal"]; hasGoal {
			r.AddError(KindMissingField, "description",
				`required field "description" is missing`,
				`rename "goal" to "description"`)
			return true
		}
	}
	requireString(r, fields, "description")
	return false
}

// validateTriggers checks the "on" block: an object keyed by trigger name.
func validateTriggers(r *ValidationResult, v any) {
	if _, isArray := asArray(v); isArray {
		r.AddError(KindInvalidType, "on",
			`"on" must be an object keyed by trigger name, not an array`, "")
		return
	}
	on, ok := asObject(v)
	if !ok {
		r.AddError(KindInvalidType, "on",
			fmt.Sprintf(`"on" must be an object, got %s`, typeName(v)), "")
		return
	}

	for _, key := range sortedKeys(on) {
		switch key {
		case "schedule":
			validateSchedule(r, on[key])
		case "manual":
			validateManual(r, on[key])
		default:
			if !triggerKeys[key] {
				r.AddWarning(KindUnknownField, "on."+key,
					fmt.Sprintf("unknown trigger %q; recognized triggers are %s",
						key, strings.Join(triggerKeyList, ", ")), "")
			}
		}
	}
}

// validateSchedule checks the schedule trigger: an array of objects each
// carrying a cron string.
func validateSchedule(r *ValidationResult, v any) {
	if s, ok := asString(v); ok {
		suggestion := fmt.Sprintf(`schedule: [{cron: %q}]`, scheduleCron(s))
		r.AddError(KindInvalidType, "on.schedule",
			`"schedule" must be an array of schedule entries, got a bare string`,
			suggestion)
		return
	}
	entries, ok := asArray(v)
	if !ok {
		r.AddError(KindInvalidType, "on.schedule",
			fmt.Sprintf(`"schedule" must be an array, got %s`, typeName(v)), "")
		return
	}

	for i, entry := range entries {
		path := fmt.Sprintf("on.schedule[%d]", i)
		obj, ok := asObject(entry)
		if !ok {
			r.AddError(KindInvalidType, path,
				fmt.Sprintf("schedule entry must be an object, got %s", typeName(entry)), "")
			continue
		}
		cronVal, present := obj["cron"]
		if !present {
			r.AddError(KindMissingField, path+".cron",
				`schedule entry is missing required field "cron"`, "")
			continue
		}
		expr, ok := asString(cronVal)
		if !ok {
			r.AddError(KindInvalidType, path+".cron",
				fmt.Sprintf(`"cron" must be a string, got %s`, typeName(cronVal)), "")
			continue
		}
		if err := cron.Validate(expr); err != nil {
			r.AddError(KindInvalidValue, path+".cron",
				fmt.Sprintf("invalid cron expression: %v", err), "")
		}
	}
}

// scheduleCron picks the cron to suggest for a bare schedule string: the
// hint translation when the string reads like a schedule phrase, the
// string itself when it is already a valid cron, else a generic example.
func scheduleCron(s string) string {
	if translated, ok := cron.FromHint(s); ok {
		return translated
	}
	if cron.Validate(s) == nil {
		return s
	}
	return "0 9 * * *"
}

// validateManual checks the manual trigger: boolean, or an object carrying
// input overrides.
func validateManual(r *ValidationResult, v any) {
	if _, ok := v.(bool); ok {
		return
	}
	if _, ok := asObject(v); ok {
		return
	}
	r.AddError(KindInvalidType, "on.manual",
		fmt.Sprintf(`"manual" must be a boolean or an object of input overrides, got %s`, typeName(v)), "")
}

// validateInputs checks the inputs declaration: an array of objects each
// requiring a string name.
func validateInputs(r *ValidationResult, v any) {
	entries, ok := asArray(v)
	if !ok {
		r.AddError(KindInvalidType, "inputs",
			fmt.Sprintf(`"inputs" must be an array, got %s`, typeName(v)), "")
		return
	}
	for i, entry := range entries {
		path := fmt.Sprintf("inputs[%d]", i)
		obj, ok := asObject(entry)
		if !ok {
			r.AddError(KindInvalidType, path,
				fmt.Sprintf("input must be an object, got %s", typeName(entry)), "")
			continue
		}
		nameVal, present := obj["name"]
		if !present {
			r.AddError(KindMissingField, path+".name",
				`input is missing required field "name"`, "")
			continue
		}
		if _, ok := asString(nameVal); !ok {
			r.AddError(KindInvalidType, path+".name",
				fmt.Sprintf(`input "name" must be a string, got %s`, typeName(nameVal)), "")
		}
	}
}
