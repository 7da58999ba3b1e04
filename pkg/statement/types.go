// Package statement defines the three financial statements and the pure
// functions that build them from already-computed line items. Statement
// builders never read configuration or perform I/O; the period calculators
// in internal/projection assemble their inputs.
package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/diag"
)

// PeriodType identifies which calculator produced a period.
type PeriodType int

const (
	Historical PeriodType = iota
	Transition
	Dynamic
)

// String returns the uppercase period-type name.
func (p PeriodType) String() string {
	switch p {
	case Historical:
		return "HISTORICAL"
	case Transition:
		return "TRANSITION"
	case Dynamic:
		return "DYNAMIC"
	default:
		return fmt.Sprintf("PERIOD_TYPE(%d)", int(p))
	}
}

// IsProjected reports whether the period is ratio- or model-projected rather
// than recorded actuals.
func (p PeriodType) IsProjected() bool {
	return p == Transition || p == Dynamic
}

// InterestConvention selects the sign convention for the net-interest line.
// Historical actuals record income - expense; projected periods record
// expense - income. The convention is an explicit parameter of the P&L
// formula so the difference is visible rather than buried in a calculator.
type InterestConvention int

const (
	// IncomeMinusExpense stores netInterest = interestIncome - interestExpense
	// and computes EBT = EBIT + netInterest.
	IncomeMinusExpense InterestConvention = iota

	// ExpenseMinusIncome stores netInterest = interestExpense - interestIncome
	// and computes EBT = EBIT - netInterest.
	ExpenseMinusIncome
)

// NetInterest applies the convention to an income and expense pair.
func (ic InterestConvention) NetInterest(income, expense decimal.Decimal) decimal.Decimal {
	if ic == IncomeMinusExpense {
		return income.Sub(expense)
	}
	return expense.Sub(income)
}

// EBT applies the convention's EBT formula. Both conventions yield the same
// economic result: EBIT + income - expense.
func (ic InterestConvention) EBT(ebit, netInterest decimal.Decimal) decimal.Decimal {
	if ic == IncomeMinusExpense {
		return ebit.Add(netInterest)
	}
	return ebit.Sub(netInterest)
}

// ProfitLossStatement is one fiscal year's income statement.
type ProfitLossStatement struct {
	TuitionRevenue decimal.Decimal
	OtherRevenue   decimal.Decimal
	TotalRevenue   decimal.Decimal

	RentExpense decimal.Decimal
	StaffCosts  decimal.Decimal
	OtherOpex   decimal.Decimal
	TotalOpex   decimal.Decimal

	EBITDA       decimal.Decimal
	Depreciation decimal.Decimal
	EBIT         decimal.Decimal

	InterestConvention InterestConvention
	NetInterest        decimal.Decimal
	EBT                decimal.Decimal

	ZakatExpense decimal.Decimal
	NetIncome    decimal.Decimal
}

// BalanceSheet is one fiscal year's statement of financial position.
type BalanceSheet struct {
	Cash               decimal.Decimal
	AccountsReceivable decimal.Decimal
	PrepaidExpenses    decimal.Decimal
	TotalCurrentAssets decimal.Decimal

	GrossPPE                decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	PropertyPlantEquipment  decimal.Decimal
	TotalNonCurrentAssets   decimal.Decimal
	TotalAssets             decimal.Decimal

	AccountsPayable         decimal.Decimal
	AccruedExpenses         decimal.Decimal
	DeferredRevenue         decimal.Decimal
	TotalCurrentLiabilities decimal.Decimal

	DebtBalance      decimal.Decimal
	TotalLiabilities decimal.Decimal

	RetainedEarnings     decimal.Decimal
	CurrentYearNetIncome decimal.Decimal
	TotalEquity          decimal.Decimal

	// BalanceDifference is Assets - (Liabilities + Equity); within tolerance
	// of zero for a balanced sheet.
	BalanceDifference decimal.Decimal
	Balanced          bool
}

// CashFlowStatement is one fiscal year's indirect-method cash flow.
type CashFlowStatement struct {
	NetIncome                decimal.Decimal
	Depreciation             decimal.Decimal
	AccountsReceivableChange decimal.Decimal
	PrepaidExpensesChange    decimal.Decimal
	AccountsPayableChange    decimal.Decimal
	AccruedExpensesChange    decimal.Decimal
	DeferredRevenueChange    decimal.Decimal
	OperatingCashFlow        decimal.Decimal

	CapitalExpenditure decimal.Decimal
	InvestingCashFlow  decimal.Decimal

	DebtIssuance  decimal.Decimal
	DebtRepayment decimal.Decimal
	// UntrackedAdjustment absorbs the unexplained cash delta for historical
	// periods; always zero for projected periods.
	UntrackedAdjustment decimal.Decimal
	FinancingCashFlow   decimal.Decimal

	NetCashChange decimal.Decimal
	BeginningCash decimal.Decimal
	EndingCash    decimal.Decimal

	// CashReconciliationDiff is calculated ending cash minus balance-sheet
	// cash. Zero by construction for historical periods.
	CashReconciliationDiff decimal.Decimal
	Reconciled             bool
}

// FinancialPeriod is one fiscal year's complete result. It is immutable once
// produced; the only legal correction is re-running the calculator for the
// year with fixed inputs.
type FinancialPeriod struct {
	Year       int
	PeriodType PeriodType

	ProfitLoss   ProfitLossStatement
	BalanceSheet BalanceSheet
	CashFlow     CashFlowStatement

	Converged            bool
	BalanceSheetBalanced bool
	CashFlowReconciled   bool
	IterationsRequired   int

	Diagnostics diag.Events
}
