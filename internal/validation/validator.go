// Package validation checks a chassis configuration and equipment list
// against the construction rules. It is a stateless pass: each rule
// checker is independently callable, and the façade only fixes the
// invocation order and aggregates the results. It never stops at the
// first failing rule, so callers always see the complete violation set.
package validation

import (
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// Checker is one independently callable construction rule.
type Checker func(models.Config, []models.Mount) RuleResult

// checkers runs in this fixed order so error ordering is reproducible.
var checkers = []Checker{
	CheckWeight,
	CheckHeat,
	CheckMovement,
	CheckArmor,
	CheckStructure,
	CheckSlots,
	CheckTechBase,
	CheckAmmo,
}

// Report is the aggregated validation outcome. Errors and Warnings are
// the per-rule messages flattened in rule order.
type Report struct {
	Valid    bool         `json:"is_valid"`
	Results  []RuleResult `json:"results"`
	Errors   []string     `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Validate runs every rule checker over the configuration and equipment
// list. Malformed configurations are rejected at this boundary with a
// single configuration-rule failure; the rule checkers themselves never
// see unknown enum values.
func Validate(cfg models.Config, mounts []models.Mount) Report {
	if err := cfg.Validate(); err != nil {
		bad := RuleResult{Rule: "configuration", Errors: []string{err.Error()}}
		return Report{Valid: false, Results: []RuleResult{bad}, Errors: bad.Errors}
	}

	report := Report{Valid: true}
	for _, check := range checkers {
		res := check(cfg, mounts)
		report.Results = append(report.Results, res)
		report.Errors = append(report.Errors, res.Errors...)
		report.Warnings = append(report.Warnings, res.Warnings...)
		if !res.Valid() {
			report.Valid = false
		}
	}
	return report
}
