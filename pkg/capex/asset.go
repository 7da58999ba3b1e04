// Package capex tracks depreciable capital assets: fixed existing/new asset
// records with explicit straight-line schedules, and category-scoped virtual
// assets created dynamically from spending events with frequency-based
// auto-reinvestment.
package capex

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

// Method identifies a depreciation method.
type Method int

const (
	StraightLine Method = iota

	// DecliningBalance is recognized and validated but currently inert:
	// its annual expense computes as zero.
	DecliningBalance
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case StraightLine:
		return "STRAIGHT_LINE"
	case DecliningBalance:
		return "DECLINING_BALANCE"
	default:
		return fmt.Sprintf("METHOD(%d)", int(m))
	}
}

// Asset is one depreciable unit.
type Asset struct {
	Name           string
	PurchaseYear   int
	PurchaseAmount decimal.Decimal
	UsefulLife     int
	Method         Method

	// DecliningRate is required when Method is DecliningBalance.
	DecliningRate decimal.Decimal
}

// AssetState is the derived depreciation position of an asset at a year.
type AssetState struct {
	Asset

	Year                    int
	AnnualExpense           decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	NetBookValue            decimal.Decimal
	FullyDepreciated        bool
}

// Depreciator is one of the two age conventions present in the model. Both
// expense purchaseAmount/usefulLife for exactly usefulLife years; they differ
// in how an asset's age is counted. The divergence is deliberate and kept as
// two named variants rather than silently unified.
type Depreciator interface {
	Name() string
	// Age of the asset at the given year under this convention.
	Age(purchaseYear, year int) int
	// InService reports whether an asset of the given age still depreciates.
	InService(age, usefulLife int) bool
}

// PoolDepreciation is the convention used for the fixed existing/new asset
// pool: age = year - purchaseYear + 1, depreciating at ages 1..usefulLife.
type PoolDepreciation struct{}

func (PoolDepreciation) Name() string { return "pool" }

func (PoolDepreciation) Age(purchaseYear, year int) int { return year - purchaseYear + 1 }

func (PoolDepreciation) InService(age, usefulLife int) bool {
	return age >= 1 && age <= usefulLife
}

// CategoryDepreciation is the convention used for category virtual assets:
// age = year - purchaseYear, depreciating from age 0 (the purchase year)
// through age usefulLife-1.
type CategoryDepreciation struct{}

func (CategoryDepreciation) Name() string { return "category" }

func (CategoryDepreciation) Age(purchaseYear, year int) int { return year - purchaseYear }

func (CategoryDepreciation) InService(age, usefulLife int) bool {
	return age >= 0 && age < usefulLife
}

// AnnualExpense returns the asset's depreciation expense for the given year
// under the convention. Declining balance is inert and computes zero.
func AnnualExpense(ctx dec.Context, a Asset, year int, conv Depreciator) decimal.Decimal {
	if a.Method != StraightLine {
		return decimal.Zero
	}
	age := conv.Age(a.PurchaseYear, year)
	if !conv.InService(age, a.UsefulLife) {
		return decimal.Zero
	}
	return ctx.Round(ctx.Div(a.PurchaseAmount, decimal.New(int64(a.UsefulLife), 0)))
}

// serviceYearsThrough counts the depreciating years from purchase through
// year, inclusive. Both conventions depreciate usefulLife times starting in
// the purchase year, so the count is shared.
func serviceYearsThrough(a Asset, year int) int {
	if year < a.PurchaseYear {
		return 0
	}
	elapsed := year - a.PurchaseYear + 1
	if elapsed > a.UsefulLife {
		return a.UsefulLife
	}
	return elapsed
}

// StateAt derives the asset's full depreciation position at a year from the
// asset record alone. The derivation is idempotent: it depends only on
// (asset, year), so recomputing it any number of times yields the same
// accumulated and net values.
func StateAt(ctx dec.Context, a Asset, year int, conv Depreciator) AssetState {
	expense := AnnualExpense(ctx, a, year, conv)

	accumulated := decimal.Zero
	fully := false
	if a.Method == StraightLine {
		years := serviceYearsThrough(a, year)
		annual := ctx.Round(ctx.Div(a.PurchaseAmount, decimal.New(int64(a.UsefulLife), 0)))
		accumulated = ctx.Min(ctx.Mul(annual, decimal.New(int64(years), 0)), a.PurchaseAmount)
		fully = years >= a.UsefulLife
	}

	return AssetState{
		Asset:                   a,
		Year:                    year,
		AnnualExpense:           expense,
		AccumulatedDepreciation: accumulated,
		NetBookValue:            ctx.FloorZero(ctx.Sub(a.PurchaseAmount, accumulated)),
		FullyDepreciated:        fully,
	}
}

// Depreciate advances the asset one year from a known prior accumulated
// balance. The expense is capped so accumulated depreciation never exceeds
// the purchase amount.
func Depreciate(ctx dec.Context, a Asset, year int, priorAccumulated decimal.Decimal, conv Depreciator) AssetState {
	expense := AnnualExpense(ctx, a, year, conv)
	remaining := ctx.FloorZero(ctx.Sub(a.PurchaseAmount, priorAccumulated))
	if expense.GreaterThan(remaining) {
		expense = remaining
	}

	accumulated := ctx.Add(priorAccumulated, expense)
	return AssetState{
		Asset:                   a,
		Year:                    year,
		AnnualExpense:           expense,
		AccumulatedDepreciation: accumulated,
		NetBookValue:            ctx.FloorZero(ctx.Sub(a.PurchaseAmount, accumulated)),
		FullyDepreciated:        serviceYearsThrough(a, year) >= a.UsefulLife,
	}
}
