package validation

import (
	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
	"github.com/edufin/proforma/pkg/statement"
)

// ValidateProfitLoss recomputes every derived P&L field from its stated
// inputs and reports any that drift outside tolerance.
func ValidateProfitLoss(ctx dec.Context, year int, pl statement.ProfitLossStatement) diag.Events {
	var events diag.Events

	check := func(field string, got, want dec.Decimal) {
		if !ctx.WithinTolerance(got, want) {
			events.Errorf(diag.CodeStatementMismatch, year,
				"profit & loss %s is %s, recomputed %s", field, got.StringFixed(2), want.StringFixed(2))
		}
	}

	check("totalRevenue", pl.TotalRevenue, ctx.Add(pl.TuitionRevenue, pl.OtherRevenue))
	check("totalOpex", pl.TotalOpex, ctx.Sum(pl.RentExpense, pl.StaffCosts, pl.OtherOpex))
	check("ebitda", pl.EBITDA, ctx.Sub(pl.TotalRevenue, pl.TotalOpex))
	check("ebit", pl.EBIT, ctx.Sub(pl.EBITDA, pl.Depreciation))
	check("ebt", pl.EBT, pl.InterestConvention.EBT(pl.EBIT, pl.NetInterest))
	check("netIncome", pl.NetIncome, ctx.Sub(pl.EBT, pl.ZakatExpense))

	return events
}

// ValidateBalanceSheet recomputes the balance-sheet subtotals and the
// balancing identity.
func ValidateBalanceSheet(ctx dec.Context, year int, bs statement.BalanceSheet) diag.Events {
	var events diag.Events

	check := func(field string, got, want dec.Decimal) {
		if !ctx.WithinTolerance(got, want) {
			events.Errorf(diag.CodeStatementMismatch, year,
				"balance sheet %s is %s, recomputed %s", field, got.StringFixed(2), want.StringFixed(2))
		}
	}

	check("totalCurrentAssets", bs.TotalCurrentAssets, ctx.Sum(bs.Cash, bs.AccountsReceivable, bs.PrepaidExpenses))
	check("propertyPlantEquipment", bs.PropertyPlantEquipment, ctx.Sub(bs.GrossPPE, bs.AccumulatedDepreciation))
	check("totalAssets", bs.TotalAssets, ctx.Add(bs.TotalCurrentAssets, bs.PropertyPlantEquipment))
	check("totalCurrentLiabilities", bs.TotalCurrentLiabilities, ctx.Sum(bs.AccountsPayable, bs.AccruedExpenses, bs.DeferredRevenue))
	check("totalLiabilities", bs.TotalLiabilities, ctx.Add(bs.TotalCurrentLiabilities, bs.DebtBalance))
	check("totalEquity", bs.TotalEquity, ctx.Add(bs.RetainedEarnings, bs.CurrentYearNetIncome))

	identity := ctx.Sub(bs.TotalAssets, ctx.Add(bs.TotalLiabilities, bs.TotalEquity))
	if !ctx.WithinTolerance(identity, dec.Zero) {
		events.Warningf(diag.CodeBalanceSheetImbalance, year,
			"assets differ from liabilities + equity by %s", identity.StringFixed(2))
	}

	return events
}

// ValidateCashFlow recomputes the cash-flow sections and the ending-cash
// identity.
func ValidateCashFlow(ctx dec.Context, year int, cf statement.CashFlowStatement) diag.Events {
	var events diag.Events

	check := func(field string, got, want dec.Decimal) {
		if !ctx.WithinTolerance(got, want) {
			events.Errorf(diag.CodeStatementMismatch, year,
				"cash flow %s is %s, recomputed %s", field, got.StringFixed(2), want.StringFixed(2))
		}
	}

	check("operatingCashFlow", cf.OperatingCashFlow, ctx.Sum(
		cf.NetIncome, cf.Depreciation,
		cf.AccountsReceivableChange, cf.PrepaidExpensesChange,
		cf.AccountsPayableChange, cf.AccruedExpensesChange, cf.DeferredRevenueChange))
	check("financingCashFlow", cf.FinancingCashFlow,
		ctx.Add(ctx.Sub(cf.DebtIssuance, cf.DebtRepayment), cf.UntrackedAdjustment))
	check("netCashChange", cf.NetCashChange, ctx.Sum(cf.OperatingCashFlow, cf.InvestingCashFlow, cf.FinancingCashFlow))
	check("endingCash", cf.EndingCash, ctx.Add(cf.BeginningCash, cf.NetCashChange))

	if cf.CapitalExpenditure.IsPositive() {
		events.Errorf(diag.CodeStatementMismatch, year,
			"capital expenditure must be a cash outflow (<= 0), got %s", cf.CapitalExpenditure.StringFixed(2))
	}

	return events
}

// ValidateCrossStatement checks the identities that tie the three statements
// of one period together.
func ValidateCrossStatement(ctx dec.Context, p statement.FinancialPeriod) diag.Events {
	var events diag.Events

	if !ctx.WithinTolerance(p.ProfitLoss.NetIncome, p.BalanceSheet.CurrentYearNetIncome) {
		events.Errorf(diag.CodeStatementMismatch, p.Year,
			"P&L net income %s differs from balance-sheet current-year net income %s",
			p.ProfitLoss.NetIncome.StringFixed(2), p.BalanceSheet.CurrentYearNetIncome.StringFixed(2))
	}
	if !ctx.WithinTolerance(p.ProfitLoss.NetIncome, p.CashFlow.NetIncome) {
		events.Errorf(diag.CodeStatementMismatch, p.Year,
			"P&L net income %s differs from cash-flow net income %s",
			p.ProfitLoss.NetIncome.StringFixed(2), p.CashFlow.NetIncome.StringFixed(2))
	}
	if !ctx.WithinTolerance(p.ProfitLoss.Depreciation, p.CashFlow.Depreciation) {
		events.Errorf(diag.CodeStatementMismatch, p.Year,
			"P&L depreciation %s differs from cash-flow depreciation %s",
			p.ProfitLoss.Depreciation.StringFixed(2), p.CashFlow.Depreciation.StringFixed(2))
	}

	return events
}

// ValidateLinkage checks the continuity identities between consecutive
// periods: cash, equity roll-forward, accumulated depreciation monotonicity,
// and debt continuity.
func ValidateLinkage(ctx dec.Context, prior, current statement.FinancialPeriod) diag.Events {
	var events diag.Events

	if !ctx.WithinTolerance(prior.CashFlow.EndingCash, current.CashFlow.BeginningCash) {
		events.Errorf(diag.CodeLinkageBreak, current.Year,
			"prior ending cash %s differs from current beginning cash %s",
			prior.CashFlow.EndingCash.StringFixed(2), current.CashFlow.BeginningCash.StringFixed(2))
	}

	if !ctx.WithinTolerance(prior.BalanceSheet.TotalEquity, current.BalanceSheet.RetainedEarnings) {
		events.Errorf(diag.CodeLinkageBreak, current.Year,
			"prior total equity %s differs from current retained earnings %s",
			prior.BalanceSheet.TotalEquity.StringFixed(2), current.BalanceSheet.RetainedEarnings.StringFixed(2))
	}

	if current.BalanceSheet.AccumulatedDepreciation.LessThan(prior.BalanceSheet.AccumulatedDepreciation) {
		events.Errorf(diag.CodeLinkageBreak, current.Year,
			"accumulated depreciation decreased from %s to %s",
			prior.BalanceSheet.AccumulatedDepreciation.StringFixed(2),
			current.BalanceSheet.AccumulatedDepreciation.StringFixed(2))
	}

	expectedDebt := ctx.Sub(
		ctx.Add(prior.BalanceSheet.DebtBalance, current.CashFlow.DebtIssuance),
		current.CashFlow.DebtRepayment)
	if !ctx.WithinTolerance(current.BalanceSheet.DebtBalance, expectedDebt) {
		events.Errorf(diag.CodeLinkageBreak, current.Year,
			"debt balance %s differs from prior debt + issuance - repayment = %s",
			current.BalanceSheet.DebtBalance.StringFixed(2), expectedDebt.StringFixed(2))
	}

	return events
}

// ValidatePeriod bundles the per-statement and cross-statement checks for a
// single period. Linkage checks require the prior period and run separately.
func ValidatePeriod(ctx dec.Context, p statement.FinancialPeriod) diag.Events {
	var events diag.Events
	events = append(events, ValidateProfitLoss(ctx, p.Year, p.ProfitLoss)...)
	events = append(events, ValidateBalanceSheet(ctx, p.Year, p.BalanceSheet)...)
	events = append(events, ValidateCashFlow(ctx, p.Year, p.CashFlow)...)
	events = append(events, ValidateCrossStatement(ctx, p)...)
	return events
}
