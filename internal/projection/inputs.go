// Package projection implements the multi-period financial projection
// engine: the historical, transition, and dynamic period calculators, the
// year chain that threads each period into the next, and the enrollment,
// tuition, staff-cost, and rent models the dynamic calculator drives.
package projection

import (
	"github.com/edufin/proforma/pkg/capex"
	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/statement"
)

// SystemConfig is the externally supplied configuration shared by every
// period calculator.
type SystemConfig struct {
	ZakatRate           dec.Decimal
	DebtInterestRate    dec.Decimal
	DepositInterestRate dec.Decimal
	MinimumCashBalance  dec.Decimal
}

// YearInput is one fiscal year's input record. The three concrete input
// types form a closed set; the calculator dispatches with an exhaustive type
// switch.
type YearInput interface {
	InputYear() int
	PeriodType() statement.PeriodType
}

// HistoricalProfitLoss carries one actual year's income-statement lines.
type HistoricalProfitLoss struct {
	TuitionRevenue  dec.Decimal
	OtherRevenue    dec.Decimal
	RentExpense     dec.Decimal
	StaffCosts      dec.Decimal
	OtherOpex       dec.Decimal
	Depreciation    dec.Decimal
	InterestIncome  dec.Decimal
	InterestExpense dec.Decimal
	ZakatExpense    dec.Decimal
}

// HistoricalBalanceSheet carries one actual year's balance-sheet lines.
// Debt is a recorded actual here, never a plug.
type HistoricalBalanceSheet struct {
	Cash                    dec.Decimal
	AccountsReceivable      dec.Decimal
	PrepaidExpenses         dec.Decimal
	GrossPPE                dec.Decimal
	AccumulatedDepreciation dec.Decimal
	AccountsPayable         dec.Decimal
	AccruedExpenses         dec.Decimal
	DeferredRevenue         dec.Decimal
	DebtBalance             dec.Decimal
	RetainedEarnings        dec.Decimal
}

// HistoricalInput is the input record for a recorded actual year.
type HistoricalInput struct {
	Year int

	// Confirmed marks the record immutable. Enforcement (refusing edits) is
	// the persistence collaborator's job; the engine only carries the flag.
	Confirmed bool

	// OpeningCash seeds the first year's cash flow statement when there is
	// no prior period to take a beginning balance from.
	OpeningCash dec.Decimal

	ProfitLoss   HistoricalProfitLoss
	BalanceSheet HistoricalBalanceSheet
}

func (h HistoricalInput) InputYear() int                   { return h.Year }
func (h HistoricalInput) PeriodType() statement.PeriodType { return statement.Historical }

// TransitionInput is the input record for a manually-adjusted transition
// year. With PreFill enabled, tuition grows from the prior year by
// TuitionGrowthRate; an explicit StudentCount x TuitionRate override wins
// regardless of PreFill, and with PreFill disabled and no override,
// TuitionRevenue is taken as entered.
type TransitionInput struct {
	Year int

	PreFill           bool
	TuitionRevenue    dec.Decimal
	TuitionGrowthRate dec.Decimal
	StudentCount      int
	TuitionRate       dec.Decimal

	// StaffCosts overrides the default carry-forward (prior year's staff
	// ratio of total revenue) when non-nil.
	StaffCosts *dec.Decimal

	// RentExpense overrides the prior year's rent when non-nil.
	RentExpense *dec.Decimal

	// OtherOpexGrowthRate escalates the prior year's other operating
	// expenses; zero carries them flat.
	OtherOpexGrowthRate dec.Decimal

	// CapExSpending are the manual capital spending entries for this year.
	CapExSpending []capex.SpendingEvent
}

func (t TransitionInput) InputYear() int                   { return t.Year }
func (t TransitionInput) PeriodType() statement.PeriodType { return statement.Transition }

// DynamicInput is the input record for a fully modeled year.
type DynamicInput struct {
	Year int

	Enrollment EnrollmentConfig
	Curriculum CurriculumConfig
	StaffCost  StaffCostConfig
	Rent       RentConfig
}

func (d DynamicInput) InputYear() int                   { return d.Year }
func (d DynamicInput) PeriodType() statement.PeriodType { return statement.Dynamic }

// CapExInputs is the capital-asset configuration threaded through the chain:
// the fixed existing assets, the category definitions, and the virtual-asset
// pool accumulated so far.
type CapExInputs struct {
	ExistingAssets []capex.Asset
	Categories     []capex.Category
	Pool           []capex.VirtualAsset
}

// Result is the outcome of calculating one year: the immutable period plus
// the virtual-asset pool to pass into the next year.
type Result struct {
	Period statement.FinancialPeriod
	Pool   []capex.VirtualAsset
}
