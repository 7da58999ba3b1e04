package statement

import (
	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
)

// DebtPolicy selects how the debt line is determined.
type DebtPolicy int

const (
	// DebtActual takes debt as a recorded input and reports any imbalance
	// for diagnosis without forcing a plug. Used by the historical calculator.
	DebtActual DebtPolicy = iota

	// DebtPlug solves debt so that Assets = Liabilities + Equity by
	// construction, clamped at zero. Used by projected periods.
	DebtPlug
)

// BalanceSheetInput carries the independently computed lines a balance sheet
// is assembled from.
type BalanceSheetInput struct {
	Year int

	Cash               decimal.Decimal
	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal

	GrossPPE                decimal.Decimal
	AccumulatedDepreciation decimal.Decimal

	AccountsPayable decimal.Decimal
	AccruedExpenses decimal.Decimal
	DeferredRevenue decimal.Decimal

	// RetainedEarnings is the prior period's total equity rolled forward;
	// CurrentYearNetIncome is added on top to form total equity.
	RetainedEarnings     decimal.Decimal
	CurrentYearNetIncome decimal.Decimal

	DebtPolicy DebtPolicy
	// ActualDebt is consulted only under DebtActual.
	ActualDebt decimal.Decimal
}

// SolveDebtPlug returns the debt balance that makes the sheet balance:
// max(0, totalAssets - totalCurrentLiabilities - totalEquity).
func SolveDebtPlug(ctx dec.Context, totalAssets, totalCurrentLiabilities, totalEquity decimal.Decimal) decimal.Decimal {
	plug := ctx.Sub(ctx.Sub(totalAssets, totalCurrentLiabilities), totalEquity)
	return ctx.FloorZero(plug)
}

// BuildBalanceSheet assembles the statement, solving debt as a plug when the
// policy asks for it. Diagnostics report a negative plug clamp and any
// residual imbalance; neither is fatal.
func BuildBalanceSheet(ctx dec.Context, in BalanceSheetInput) (BalanceSheet, diag.Events) {
	var events diag.Events

	totalCurrentAssets := ctx.Sum(in.Cash, in.AccountsReceivable, in.PrepaidExpenses)
	netPPE := ctx.Sub(in.GrossPPE, in.AccumulatedDepreciation)
	totalAssets := ctx.Add(totalCurrentAssets, netPPE)

	totalCurrentLiabilities := ctx.Sum(in.AccountsPayable, in.AccruedExpenses, in.DeferredRevenue)
	totalEquity := ctx.Add(in.RetainedEarnings, in.CurrentYearNetIncome)

	var debt decimal.Decimal
	switch in.DebtPolicy {
	case DebtPlug:
		raw := ctx.Sub(ctx.Sub(totalAssets, totalCurrentLiabilities), totalEquity)
		if raw.IsNegative() && !ctx.IsEffectivelyZero(raw) {
			events.Warningf(diag.CodeNegativeDebtPlug, in.Year,
				"debt plug solved negative (%s); clamped to zero, sheet carries the residual", raw.StringFixed(2))
		}
		debt = ctx.FloorZero(raw)
	default:
		debt = in.ActualDebt
	}

	totalLiabilities := ctx.Add(totalCurrentLiabilities, debt)
	balanceDiff := ctx.Sub(totalAssets, ctx.Add(totalLiabilities, totalEquity))
	balanced := ctx.IsEffectivelyZero(balanceDiff)
	if !balanced {
		events.Warningf(diag.CodeBalanceSheetImbalance, in.Year,
			"balance sheet off by %s (assets %s vs liabilities+equity %s)",
			balanceDiff.StringFixed(2), totalAssets.StringFixed(2),
			ctx.Add(totalLiabilities, totalEquity).StringFixed(2))
	}

	return BalanceSheet{
		Cash:                    in.Cash,
		AccountsReceivable:      in.AccountsReceivable,
		PrepaidExpenses:         in.PrepaidExpenses,
		TotalCurrentAssets:      totalCurrentAssets,
		GrossPPE:                in.GrossPPE,
		AccumulatedDepreciation: in.AccumulatedDepreciation,
		PropertyPlantEquipment:  netPPE,
		TotalNonCurrentAssets:   netPPE,
		TotalAssets:             totalAssets,
		AccountsPayable:         in.AccountsPayable,
		AccruedExpenses:         in.AccruedExpenses,
		DeferredRevenue:         in.DeferredRevenue,
		TotalCurrentLiabilities: totalCurrentLiabilities,
		DebtBalance:             debt,
		TotalLiabilities:        totalLiabilities,
		RetainedEarnings:        in.RetainedEarnings,
		CurrentYearNetIncome:    in.CurrentYearNetIncome,
		TotalEquity:             totalEquity,
		BalanceDifference:       balanceDiff,
		Balanced:                balanced,
	}, events
}
