// Package workingcapital derives the balance-sheet projection ratios from a
// designated baseline year and applies them forward. Once locked, ratios are
// never recalculated.
package workingcapital

import (
	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

// Baseline is the reference year the ratios are derived from.
type Baseline struct {
	Year int

	TotalRevenue decimal.Decimal
	TotalOpex    decimal.Decimal

	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal
	AccountsPayable    decimal.Decimal
	AccruedExpenses    decimal.Decimal
	DeferredRevenue    decimal.Decimal
	OtherRevenue       decimal.Decimal
}

// Ratios are the locked working-capital percentages applied to every
// subsequent period. Revenue drives AR, deferred revenue, and the
// other-revenue ratio; OpEx drives prepaid, AP, and accruals.
type Ratios struct {
	BaselineYear int

	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal
	AccountsPayable    decimal.Decimal
	AccruedExpenses    decimal.Decimal
	DeferredRevenue    decimal.Decimal
	OtherRevenue       decimal.Decimal

	Locked bool
}

// Derive computes each ratio as baselineLineItem / baselineDenominator,
// defaulting to zero when the denominator is zero. The result is not yet
// locked; callers lock it before projecting.
func Derive(ctx dec.Context, b Baseline) Ratios {
	return Ratios{
		BaselineYear:       b.Year,
		AccountsReceivable: ctx.SafeDiv(b.AccountsReceivable, b.TotalRevenue),
		DeferredRevenue:    ctx.SafeDiv(b.DeferredRevenue, b.TotalRevenue),
		OtherRevenue:       ctx.SafeDiv(b.OtherRevenue, b.TotalRevenue),
		PrepaidExpenses:    ctx.SafeDiv(b.PrepaidExpenses, b.TotalOpex),
		AccountsPayable:    ctx.SafeDiv(b.AccountsPayable, b.TotalOpex),
		AccruedExpenses:    ctx.SafeDiv(b.AccruedExpenses, b.TotalOpex),
	}
}

// Lock returns a locked copy. Locked ratios are immutable by convention:
// every projection method operates on the value, never a pointer.
func (r Ratios) Lock() Ratios {
	r.Locked = true
	return r
}

// Lines are the projected balance-sheet lines for one year.
type Lines struct {
	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal
	AccountsPayable    decimal.Decimal
	AccruedExpenses    decimal.Decimal
	DeferredRevenue    decimal.Decimal
}

// Apply projects the working-capital lines for a year as driver × ratio.
func (r Ratios) Apply(ctx dec.Context, revenue, opex decimal.Decimal) Lines {
	return Lines{
		AccountsReceivable: ctx.Round(ctx.Mul(revenue, r.AccountsReceivable)),
		DeferredRevenue:    ctx.Round(ctx.Mul(revenue, r.DeferredRevenue)),
		PrepaidExpenses:    ctx.Round(ctx.Mul(opex, r.PrepaidExpenses)),
		AccountsPayable:    ctx.Round(ctx.Mul(opex, r.AccountsPayable)),
		AccruedExpenses:    ctx.Round(ctx.Mul(opex, r.AccruedExpenses)),
	}
}

// ProjectOtherRevenue applies the other-revenue ratio to the tuition driver.
func (r Ratios) ProjectOtherRevenue(ctx dec.Context, tuitionRevenue decimal.Decimal) decimal.Decimal {
	return ctx.Round(ctx.Mul(tuitionRevenue, r.OtherRevenue))
}
