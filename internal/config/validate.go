package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/edufin/proforma/pkg/capex"
	"github.com/edufin/proforma/pkg/constants"
)

var structValidator = validator.New()

// Validate checks the configuration before any calculation runs. Structural
// problems (tags) and domain rules are collected into a single combined
// error; the engine is never invoked on an invalid configuration.
func (c *Configuration) Validate() error {
	var errs []error

	if err := structValidator.Struct(c); err != nil {
		errs = append(errs, err)
	}

	for i := range c.Scenarios {
		errs = append(errs, c.Scenarios[i].validateDomain()...)
	}

	return multierr.Combine(errs...)
}

// validateDomain applies the rules the struct tags cannot express: band
// ordering, year contiguity, and the capital-asset rules shared with the
// engine.
func (s *ScenarioConfig) validateDomain() []error {
	var errs []error

	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("scenario %q: "+format, append([]interface{}{s.Name}, args...)...))
	}

	lastYear := 0
	for i, h := range s.Historical {
		if i > 0 && h.Year != lastYear+1 {
			fail("historical year %d does not follow %d contiguously", h.Year, lastYear)
		}
		lastYear = h.Year
	}

	for _, t := range s.Transition {
		if t.Year != lastYear+1 {
			fail("transition year %d does not follow %d contiguously", t.Year, lastYear)
		}
		lastYear = t.Year
		if !t.PreFill && t.TuitionRevenue == 0 && t.StudentCount == 0 {
			fail("transition year %d has pre-fill disabled but no explicit tuition", t.Year)
		}
		if t.StudentCount > 0 && t.TuitionRate <= 0 {
			fail("transition year %d sets a student count but no tuition rate", t.Year)
		}
	}

	if s.Dynamic != nil {
		if s.Dynamic.StartYear != lastYear+1 {
			fail("dynamic band starts at %d, expected %d", s.Dynamic.StartYear, lastYear+1)
		}
		if s.Dynamic.EndYear < s.Dynamic.StartYear {
			fail("dynamic band ends at %d before it starts at %d", s.Dynamic.EndYear, s.Dynamic.StartYear)
		}
		if s.Dynamic.Enrollment.RampEndYear < s.Dynamic.Enrollment.RampStartYear {
			fail("enrollment ramp ends at %d before it starts at %d",
				s.Dynamic.Enrollment.RampEndYear, s.Dynamic.Enrollment.RampStartYear)
		}
	}

	if s.WorkingCapitalBaselineYear != 0 {
		found := false
		for _, h := range s.Historical {
			if h.Year == s.WorkingCapitalBaselineYear {
				found = true
				break
			}
		}
		if !found {
			fail("working-capital baseline year %d is not a historical year", s.WorkingCapitalBaselineYear)
		}
	}

	// Capital-asset rules live with the capex package so the engine and the
	// config layer cannot drift apart.
	adapted := adaptCapEx(s.CapEx)
	for _, a := range adapted.ExistingAssets {
		for _, err := range capex.ValidateAsset(a) {
			fail("%v", err)
		}
	}
	categoryNames := make(map[string]bool, len(adapted.Categories))
	for _, cat := range adapted.Categories {
		for _, err := range capex.ValidateCategory(cat) {
			fail("%v", err)
		}
		categoryNames[cat.Name] = true
	}
	for _, t := range s.Transition {
		for _, sp := range t.CapExSpending {
			if !categoryNames[sp.Category] {
				fail("transition year %d spends in unknown capex category %q", t.Year, sp.Category)
			}
		}
	}

	return errs
}

// Warnings reports non-fatal configuration findings the caller should
// surface but may proceed with.
func (c *Configuration) Warnings() []string {
	var warnings []string

	anyActive := false
	for _, s := range c.Scenarios {
		if s.Active {
			anyActive = true
		}

		if len(s.Historical) != constants.HistoricalYears {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' has %d historical years; models normally open with %d years of actuals",
				s.Name, len(s.Historical), constants.HistoricalYears))
		}
		if len(s.Transition) > 0 && len(s.Transition) != constants.TransitionYears {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' has a %d-year transition band; models normally use %d",
				s.Name, len(s.Transition), constants.TransitionYears))
		}
		if s.Dynamic != nil && s.Dynamic.Enrollment.TargetStudents == 0 {
			warnings = append(warnings, fmt.Sprintf(
				"Scenario '%s' dynamic band has a zero enrollment target; tuition revenue will be zero",
				s.Name))
		}
		for _, h := range s.Historical {
			if !h.Confirmed {
				warnings = append(warnings, fmt.Sprintf(
					"Scenario '%s' historical year %d is not confirmed and may still change",
					s.Name, h.Year))
			}
		}
	}
	if !anyActive {
		warnings = append(warnings, "No scenario is active; nothing will be computed")
	}

	return warnings
}
