package capex

import "fmt"

// Reinvestment frequency bounds accepted by category configuration.
const (
	MinReinvestmentFrequency = 1
	MaxReinvestmentFrequency = 50
)

// Purchase years outside this window are assumed to be data-entry mistakes.
const (
	minPurchaseYear = 1950
	maxPurchaseYear = 2200
)

// ValidateAsset checks one asset record and returns every problem found.
// Validation runs before calculation; the engine never raises configuration
// errors mid-year.
func ValidateAsset(a Asset) []error {
	var errs []error

	if a.UsefulLife < 1 {
		errs = append(errs, fmt.Errorf("asset %q: useful life must be at least 1 year, got %d", a.Name, a.UsefulLife))
	}
	if a.PurchaseAmount.IsNegative() {
		errs = append(errs, fmt.Errorf("asset %q: purchase amount must not be negative, got %s", a.Name, a.PurchaseAmount))
	}
	if a.PurchaseYear < minPurchaseYear || a.PurchaseYear > maxPurchaseYear {
		errs = append(errs, fmt.Errorf("asset %q: purchase year %d out of range [%d, %d]", a.Name, a.PurchaseYear, minPurchaseYear, maxPurchaseYear))
	}
	if a.Method == DecliningBalance && !a.DecliningRate.IsPositive() {
		errs = append(errs, fmt.Errorf("asset %q: declining-balance method requires a positive rate", a.Name))
	}

	return errs
}

// ValidateCategory checks one category definition.
func ValidateCategory(c Category) []error {
	var errs []error

	if c.Name == "" {
		errs = append(errs, fmt.Errorf("category with start year %d has no name", c.StartYear))
	}
	if c.UsefulLife < 1 {
		errs = append(errs, fmt.Errorf("category %q: useful life must be at least 1 year, got %d", c.Name, c.UsefulLife))
	}
	if c.ReinvestmentFrequency != 0 &&
		(c.ReinvestmentFrequency < MinReinvestmentFrequency || c.ReinvestmentFrequency > MaxReinvestmentFrequency) {
		errs = append(errs, fmt.Errorf("category %q: reinvestment frequency %d out of range [%d, %d]",
			c.Name, c.ReinvestmentFrequency, MinReinvestmentFrequency, MaxReinvestmentFrequency))
	}
	if c.ReinvestmentFrequency != 0 && c.ReinvestmentAmount.IsNegative() {
		errs = append(errs, fmt.Errorf("category %q: reinvestment amount must not be negative", c.Name))
	}

	return errs
}
