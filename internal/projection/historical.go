package projection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/statement"
	"github.com/edufin/proforma/pkg/validation"
)

// calculateHistorical turns one recorded actual year into a FinancialPeriod.
// Nothing is solved: the P&L derives its subtotals from the recorded lines,
// the balance sheet takes debt as an actual and reports any imbalance for
// diagnosis, and the cash flow folds unexplained movement into financing so
// historical reconciliation holds by convention.
func (c *Calculator) calculateHistorical(in HistoricalInput, prior *statement.FinancialPeriod, assets CapExInputs) (Result, error) {
	ctx := c.ctx

	if prior != nil && prior.Year != in.Year-1 {
		return Result{}, fmt.Errorf("historical year %d follows prior year %d, expected %d", in.Year, prior.Year, in.Year-1)
	}

	pl := statement.BuildProfitLoss(ctx, statement.ProfitLossInput{
		TuitionRevenue:  in.ProfitLoss.TuitionRevenue,
		OtherRevenue:    in.ProfitLoss.OtherRevenue,
		RentExpense:     in.ProfitLoss.RentExpense,
		StaffCosts:      in.ProfitLoss.StaffCosts,
		OtherOpex:       in.ProfitLoss.OtherOpex,
		Depreciation:    in.ProfitLoss.Depreciation,
		InterestIncome:  in.ProfitLoss.InterestIncome,
		InterestExpense: in.ProfitLoss.InterestExpense,
		Convention:      statement.IncomeMinusExpense,
		ZakatExpense:    in.ProfitLoss.ZakatExpense,
	})

	bs, bsEvents := statement.BuildBalanceSheet(ctx, statement.BalanceSheetInput{
		Year:                    in.Year,
		Cash:                    in.BalanceSheet.Cash,
		AccountsReceivable:      in.BalanceSheet.AccountsReceivable,
		PrepaidExpenses:         in.BalanceSheet.PrepaidExpenses,
		GrossPPE:                in.BalanceSheet.GrossPPE,
		AccumulatedDepreciation: in.BalanceSheet.AccumulatedDepreciation,
		AccountsPayable:         in.BalanceSheet.AccountsPayable,
		AccruedExpenses:         in.BalanceSheet.AccruedExpenses,
		DeferredRevenue:         in.BalanceSheet.DeferredRevenue,
		RetainedEarnings:        in.BalanceSheet.RetainedEarnings,
		CurrentYearNetIncome:    pl.NetIncome,
		DebtPolicy:              statement.DebtActual,
		ActualDebt:              in.BalanceSheet.DebtBalance,
	})

	// Working-capital deltas, capex spending, and the debt movement come
	// from the prior actuals; the first year has none.
	var (
		beginningCash  = in.OpeningCash
		arChange       = dec.Zero
		prepaidChange  = dec.Zero
		apChange       = dec.Zero
		accruedChange  = dec.Zero
		deferredChange = dec.Zero
		capexSpend     = dec.Zero
		issuance       = dec.Zero
		repayment      = dec.Zero
	)
	if prior != nil {
		beginningCash = prior.BalanceSheet.Cash
		arChange = ctx.Sub(prior.BalanceSheet.AccountsReceivable, bs.AccountsReceivable)
		prepaidChange = ctx.Sub(prior.BalanceSheet.PrepaidExpenses, bs.PrepaidExpenses)
		apChange = ctx.Sub(bs.AccountsPayable, prior.BalanceSheet.AccountsPayable)
		accruedChange = ctx.Sub(bs.AccruedExpenses, prior.BalanceSheet.AccruedExpenses)
		deferredChange = ctx.Sub(bs.DeferredRevenue, prior.BalanceSheet.DeferredRevenue)
		capexSpend = ctx.FloorZero(ctx.Sub(bs.GrossPPE, prior.BalanceSheet.GrossPPE))

		debtChange := ctx.Sub(bs.DebtBalance, prior.BalanceSheet.DebtBalance)
		if debtChange.IsNegative() {
			repayment = debtChange.Neg()
		} else {
			issuance = debtChange
		}
	}

	cf, cfEvents := statement.BuildCashFlow(ctx, statement.CashFlowInput{
		Year:                     in.Year,
		Mode:                     statement.CashFlowHistorical,
		NetIncome:                pl.NetIncome,
		Depreciation:             pl.Depreciation,
		AccountsReceivableChange: arChange,
		PrepaidExpensesChange:    prepaidChange,
		AccountsPayableChange:    apChange,
		AccruedExpensesChange:    accruedChange,
		DeferredRevenueChange:    deferredChange,
		CapitalExpenditure:       capexSpend.Neg(),
		DebtIssuance:             issuance,
		DebtRepayment:            repayment,
		BeginningCash:            beginningCash,
		BalanceSheetCash:         bs.Cash,
	})

	period := statement.FinancialPeriod{
		Year:                 in.Year,
		PeriodType:           statement.Historical,
		ProfitLoss:           pl,
		BalanceSheet:         bs,
		CashFlow:             cf,
		BalanceSheetBalanced: bs.Balanced,
		CashFlowReconciled:   cf.Reconciled,
		Converged:            true,
		IterationsRequired:   0,
	}
	period.Diagnostics = append(period.Diagnostics, bsEvents...)
	period.Diagnostics = append(period.Diagnostics, cfEvents...)
	period.Diagnostics = append(period.Diagnostics, validation.ValidatePeriod(ctx, period)...)
	if prior != nil {
		period.Diagnostics = append(period.Diagnostics, validation.ValidateLinkage(ctx, *prior, period)...)
	}

	c.logger.Debug("historical period recorded",
		zap.String("op", "projection.calculateHistorical"),
		zap.Int("year", in.Year),
		zap.Bool("confirmed", in.Confirmed),
		zap.String("netIncome", pl.NetIncome.StringFixed(2)),
		zap.Bool("balanced", bs.Balanced),
	)

	// The virtual-asset pool passes through historical years untouched.
	return Result{Period: period, Pool: assets.Pool}, nil
}
