package statement

import (
	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
)

// CashFlowMode selects how ending cash is established.
type CashFlowMode int

const (
	// CashFlowProjected computes ending cash = beginning + CFO + CFI + CFF
	// and compares it against the balance-sheet cash supplied by the caller.
	CashFlowProjected CashFlowMode = iota

	// CashFlowHistorical takes actual ending cash as known and folds any
	// unexplained delta into financing as an untracked adjustment, so the
	// reconciliation difference is zero by definition.
	CashFlowHistorical
)

// CashFlowInput carries the line items for the indirect-method statement.
// Working-capital changes are signed as cash effects: an increase in a
// current asset is negative, an increase in a current liability is positive.
type CashFlowInput struct {
	Year int
	Mode CashFlowMode

	NetIncome    decimal.Decimal
	Depreciation decimal.Decimal

	AccountsReceivableChange decimal.Decimal
	PrepaidExpensesChange    decimal.Decimal
	AccountsPayableChange    decimal.Decimal
	AccruedExpensesChange    decimal.Decimal
	DeferredRevenueChange    decimal.Decimal

	// CapitalExpenditure must be <= 0 (a cash outflow).
	CapitalExpenditure decimal.Decimal

	DebtIssuance  decimal.Decimal
	DebtRepayment decimal.Decimal

	BeginningCash decimal.Decimal

	// BalanceSheetCash is the cash the balance sheet carries: the actual for
	// historical periods, the already-solved cash for projected periods.
	BalanceSheetCash decimal.Decimal
}

// BuildCashFlow assembles the indirect-method statement and reconciles it
// against the balance-sheet cash. Reconciliation deviations are surfaced as
// diagnostics and the Reconciled flag, never as errors.
func BuildCashFlow(ctx dec.Context, in CashFlowInput) (CashFlowStatement, diag.Events) {
	var events diag.Events

	operating := ctx.Sum(
		in.NetIncome,
		in.Depreciation,
		in.AccountsReceivableChange,
		in.PrepaidExpensesChange,
		in.AccountsPayableChange,
		in.AccruedExpensesChange,
		in.DeferredRevenueChange,
	)

	investing := in.CapitalExpenditure

	financing := ctx.Sub(in.DebtIssuance, in.DebtRepayment)

	untracked := decimal.Zero
	if in.Mode == CashFlowHistorical {
		// Actual cash movement is the source of truth; whatever CFO+CFI+CFF
		// cannot explain is carried as an untracked financing adjustment.
		actualChange := ctx.Sub(in.BalanceSheetCash, in.BeginningCash)
		explained := ctx.Sum(operating, investing, financing)
		untracked = ctx.Sub(actualChange, explained)
		if !ctx.IsEffectivelyZero(untracked) {
			events.Infof(diag.CodeUntrackedFinancing, in.Year,
				"historical cash movement has %s unexplained by operations; folded into financing",
				untracked.StringFixed(2))
		}
		financing = ctx.Add(financing, untracked)
	}

	netChange := ctx.Sum(operating, investing, financing)
	endingCash := ctx.Add(in.BeginningCash, netChange)

	reconDiff := ctx.Sub(endingCash, in.BalanceSheetCash)
	reconciled := ctx.IsEffectivelyZero(reconDiff)
	if !reconciled {
		events.Warningf(diag.CodeCashReconciliation, in.Year,
			"calculated ending cash %s differs from balance-sheet cash %s by %s",
			endingCash.StringFixed(2), in.BalanceSheetCash.StringFixed(2), reconDiff.StringFixed(2))
	}

	return CashFlowStatement{
		NetIncome:                in.NetIncome,
		Depreciation:             in.Depreciation,
		AccountsReceivableChange: in.AccountsReceivableChange,
		PrepaidExpensesChange:    in.PrepaidExpensesChange,
		AccountsPayableChange:    in.AccountsPayableChange,
		AccruedExpensesChange:    in.AccruedExpensesChange,
		DeferredRevenueChange:    in.DeferredRevenueChange,
		OperatingCashFlow:        operating,
		CapitalExpenditure:       in.CapitalExpenditure,
		InvestingCashFlow:        investing,
		DebtIssuance:             in.DebtIssuance,
		DebtRepayment:            in.DebtRepayment,
		UntrackedAdjustment:      untracked,
		FinancingCashFlow:        financing,
		NetCashChange:            netChange,
		BeginningCash:            in.BeginningCash,
		EndingCash:               endingCash,
		CashReconciliationDiff:   reconDiff,
		Reconciled:               reconciled,
	}, events
}
