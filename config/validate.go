package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/gridpath/grid"
)

// validate is the shared validator instance with the job-level rules.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateJob, Job{})
}

// Validate checks field constraints and the per-kind job requirements.
func Validate(f *File) error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// validateJob enforces the requirements that depend on Kind.
func validateJob(sl validator.StructLevel) {
	j := sl.Current().Interface().(Job)

	hasInput := len(j.Rows) > 0 || j.File != ""
	if len(j.Rows) > 0 && j.File != "" {
		sl.ReportError(j.File, "File", "file", "excluded_with_rows", "")
	}

	switch j.Kind {
	case KindDistances, KindNearest:
		if !hasInput {
			sl.ReportError(j.Rows, "Rows", "rows", "required_input", "")
		}
		if len([]rune(j.Start)) != 1 {
			sl.ReportError(j.Start, "Start", "start", "single_rune", "")
		}
		if j.Kind == KindDistances && len([]rune(j.Goal)) != 1 {
			sl.ReportError(j.Goal, "Goal", "goal", "single_rune", "")
		}
		if j.Kind == KindNearest && j.Target == "" {
			sl.ReportError(j.Target, "Target", "target", "required", "")
		}
		if _, err := grid.ParseStepRule(j.Rule); err != nil {
			sl.ReportError(j.Rule, "Rule", "rule", "step_rule", "")
		}
	case KindJourney, KindSurface:
		if !hasInput {
			sl.ReportError(j.Rows, "Rows", "rows", "required_input", "")
		}
	case KindRelease:
		if !hasInput && len(j.Valves) == 0 {
			sl.ReportError(j.Valves, "Valves", "valves", "required_input", "")
		}
		if hasInput && len(j.Valves) > 0 {
			sl.ReportError(j.Valves, "Valves", "valves", "excluded_with_rows", "")
		}
	}
}
