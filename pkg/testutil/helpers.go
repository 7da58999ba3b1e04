// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/edufin/proforma/internal/projection"
	"github.com/edufin/proforma/pkg/statement"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []projection.ScenarioResult, name string) *projection.ScenarioResult {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindPeriod finds the period for a year within a scenario result.
// Returns a pointer to the period if found, nil otherwise.
func FindPeriod(result projection.ScenarioResult, year int) *statement.FinancialPeriod {
	for i := range result.Periods {
		if result.Periods[i].Year == year {
			return &result.Periods[i]
		}
	}
	return nil
}
