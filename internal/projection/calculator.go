package projection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/edufin/proforma/pkg/capex"
	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/statement"
	"github.com/edufin/proforma/pkg/validation"
	"github.com/edufin/proforma/pkg/workingcapital"
)

// Calculator produces one FinancialPeriod per year. It never reads beyond
// the prior period: evaluation is strictly left-to-right, single pass.
type Calculator struct {
	ctx    dec.Context
	system SystemConfig
	capex  *capex.Engine
	logger *zap.Logger
}

// NewCalculator creates a calculator. A nil logger falls back to a no-op
// logger.
func NewCalculator(ctx dec.Context, system SystemConfig, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		ctx:    ctx,
		system: system,
		capex:  capex.NewEngine(ctx, logger),
		logger: logger,
	}
}

// Calculate dispatches to the calculator matching the input's period type.
// Only the first historical year may run without a prior period.
func (c *Calculator) Calculate(in YearInput, prior *statement.FinancialPeriod, ratios workingcapital.Ratios, assets CapExInputs) (Result, error) {
	switch v := in.(type) {
	case HistoricalInput:
		return c.calculateHistorical(v, prior, assets)
	case TransitionInput:
		if prior == nil {
			return Result{}, fmt.Errorf("transition year %d requires a prior period", v.Year)
		}
		return c.calculateTransition(v, *prior, ratios, assets)
	case DynamicInput:
		if prior == nil {
			return Result{}, fmt.Errorf("dynamic year %d requires a prior period", v.Year)
		}
		return c.calculateDynamic(v, *prior, ratios, assets)
	default:
		return Result{}, fmt.Errorf("unknown year input type %T", in)
	}
}

// projectedLines are the operating line items a projected period has already
// modeled before statement assembly begins.
type projectedLines struct {
	TuitionRevenue dec.Decimal
	RentExpense    dec.Decimal
	StaffCosts     dec.Decimal
	OtherOpex      dec.Decimal

	CapExSpending []capex.SpendingEvent
}

// buildProjected assembles a transition or dynamic period from its modeled
// operating lines. The ordering matters: P&L depends on depreciation and
// interest, the cash solve depends on the full operating picture, and the
// balance sheet is built around the already-known cash so the debt plug and
// the financing section agree by construction.
func (c *Calculator) buildProjected(
	year int,
	ptype statement.PeriodType,
	lines projectedLines,
	prior statement.FinancialPeriod,
	ratios workingcapital.Ratios,
	assets CapExInputs,
) (Result, error) {
	ctx := c.ctx

	// Revenue: other revenue follows the locked ratio off the tuition driver.
	otherRevenue := ratios.ProjectOtherRevenue(ctx, lines.TuitionRevenue)
	totalRevenue := ctx.Add(lines.TuitionRevenue, otherRevenue)
	totalOpex := ctx.Sum(lines.RentExpense, lines.StaffCosts, lines.OtherOpex)

	// Capital assets: materialize spending, depreciate, roll PP&E forward
	// from the prior balance sheet.
	capexResult, err := c.capex.RunYear(
		year,
		assets.ExistingAssets,
		assets.Pool,
		assets.Categories,
		lines.CapExSpending,
		capex.RollForward{
			GrossPPE:                prior.BalanceSheet.GrossPPE,
			AccumulatedDepreciation: prior.BalanceSheet.AccumulatedDepreciation,
		},
	)
	if err != nil {
		return Result{}, fmt.Errorf("capex for year %d: %w", year, err)
	}
	netPPE := capexResult.RollForward.NetPPE(ctx)

	// Interest accrues on the prior year's closing balances.
	interestExpense := ctx.Round(ctx.Mul(prior.BalanceSheet.DebtBalance, c.system.DebtInterestRate))
	interestIncome := ctx.Round(ctx.Mul(prior.BalanceSheet.Cash, c.system.DepositInterestRate))

	// Zakat on estimated year-end equity net of non-current assets.
	ebitda := ctx.Sub(totalRevenue, totalOpex)
	ebit := ctx.Sub(ebitda, capexResult.Depreciation)
	netInterest := statement.ExpenseMinusIncome.NetInterest(interestIncome, interestExpense)
	ebt := statement.ExpenseMinusIncome.EBT(ebit, netInterest)
	zakat := statement.Zakat(ctx, ctx.Add(prior.BalanceSheet.TotalEquity, ebt), netPPE, c.system.ZakatRate)

	pl := statement.BuildProfitLoss(ctx, statement.ProfitLossInput{
		TuitionRevenue:  lines.TuitionRevenue,
		OtherRevenue:    otherRevenue,
		RentExpense:     lines.RentExpense,
		StaffCosts:      lines.StaffCosts,
		OtherOpex:       lines.OtherOpex,
		Depreciation:    capexResult.Depreciation,
		InterestIncome:  interestIncome,
		InterestExpense: interestExpense,
		Convention:      statement.ExpenseMinusIncome,
		ZakatExpense:    zakat,
	})

	// Working-capital lines from the locked ratios.
	wc := ratios.Apply(ctx, totalRevenue, totalOpex)

	// Operating cash flow pieces, signed as cash effects.
	arChange := ctx.Sub(prior.BalanceSheet.AccountsReceivable, wc.AccountsReceivable)
	prepaidChange := ctx.Sub(prior.BalanceSheet.PrepaidExpenses, wc.PrepaidExpenses)
	apChange := ctx.Sub(wc.AccountsPayable, prior.BalanceSheet.AccountsPayable)
	accruedChange := ctx.Sub(wc.AccruedExpenses, prior.BalanceSheet.AccruedExpenses)
	deferredChange := ctx.Sub(wc.DeferredRevenue, prior.BalanceSheet.DeferredRevenue)

	operating := ctx.Sum(pl.NetIncome, pl.Depreciation, arChange, prepaidChange, apChange, accruedChange, deferredChange)
	investing := capexResult.Spending.Neg()

	// Cash is the second plug, solved before the balance sheet. The debt
	// component of financing comes from the minimum-cash policy: shortfalls
	// against the minimum are funded by issuance, surpluses repay debt. The
	// balance-sheet plug then reproduces the same debt algebraically, so no
	// circular dependency exists between cash, debt, and equity.
	beginningCash := prior.BalanceSheet.Cash
	baseCash := ctx.Sum(beginningCash, operating, investing)

	issuance := dec.Zero
	repayment := dec.Zero
	var cash dec.Decimal
	surplus := ctx.Sub(baseCash, c.system.MinimumCashBalance)
	if surplus.IsNegative() {
		issuance = surplus.Neg()
		cash = c.system.MinimumCashBalance
	} else {
		repayment = ctx.Min(prior.BalanceSheet.DebtBalance, surplus)
		repayment = ctx.FloorZero(repayment)
		cash = ctx.Sub(baseCash, repayment)
	}

	bs, bsEvents := statement.BuildBalanceSheet(ctx, statement.BalanceSheetInput{
		Year:                    year,
		Cash:                    cash,
		AccountsReceivable:      wc.AccountsReceivable,
		PrepaidExpenses:         wc.PrepaidExpenses,
		GrossPPE:                capexResult.RollForward.GrossPPE,
		AccumulatedDepreciation: capexResult.RollForward.AccumulatedDepreciation,
		AccountsPayable:         wc.AccountsPayable,
		AccruedExpenses:         wc.AccruedExpenses,
		DeferredRevenue:         wc.DeferredRevenue,
		RetainedEarnings:        prior.BalanceSheet.TotalEquity,
		CurrentYearNetIncome:    pl.NetIncome,
		DebtPolicy:              statement.DebtPlug,
	})

	cf, cfEvents := statement.BuildCashFlow(ctx, statement.CashFlowInput{
		Year:                     year,
		Mode:                     statement.CashFlowProjected,
		NetIncome:                pl.NetIncome,
		Depreciation:             pl.Depreciation,
		AccountsReceivableChange: arChange,
		PrepaidExpensesChange:    prepaidChange,
		AccountsPayableChange:    apChange,
		AccruedExpensesChange:    accruedChange,
		DeferredRevenueChange:    deferredChange,
		CapitalExpenditure:       investing,
		DebtIssuance:             issuance,
		DebtRepayment:            repayment,
		BeginningCash:            beginningCash,
		BalanceSheetCash:         bs.Cash,
	})

	period := statement.FinancialPeriod{
		Year:                 year,
		PeriodType:           ptype,
		ProfitLoss:           pl,
		BalanceSheet:         bs,
		CashFlow:             cf,
		BalanceSheetBalanced: bs.Balanced,
		CashFlowReconciled:   cf.Reconciled,
		Converged:            bs.Balanced && cf.Reconciled,
		IterationsRequired:   1,
	}
	period.Diagnostics = append(period.Diagnostics, bsEvents...)
	period.Diagnostics = append(period.Diagnostics, cfEvents...)
	period.Diagnostics = append(period.Diagnostics, validation.ValidatePeriod(ctx, period)...)
	period.Diagnostics = append(period.Diagnostics, validation.ValidateLinkage(ctx, prior, period)...)

	c.logger.Debug("projected period computed",
		zap.String("op", "projection.buildProjected"),
		zap.Int("year", year),
		zap.String("periodType", ptype.String()),
		zap.String("netIncome", pl.NetIncome.StringFixed(2)),
		zap.String("cash", bs.Cash.StringFixed(2)),
		zap.String("debt", bs.DebtBalance.StringFixed(2)),
		zap.Bool("balanced", bs.Balanced),
		zap.Bool("reconciled", cf.Reconciled),
	)

	return Result{Period: period, Pool: capexResult.Pool}, nil
}
