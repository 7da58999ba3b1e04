package projection

import (
	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/statement"
	"github.com/edufin/proforma/pkg/workingcapital"
)

// calculateTransition models one manually-adjusted transition year. A
// students x rate override wins whenever a student count is supplied;
// otherwise pre-fill grows the prior year's tuition, and with pre-fill off
// the explicit tuition figure is taken as entered. Staff cost carries the
// prior year's revenue ratio unless overridden, and rent and other opex
// carry forward from the prior year.
func (c *Calculator) calculateTransition(in TransitionInput, prior statement.FinancialPeriod, ratios workingcapital.Ratios, assets CapExInputs) (Result, error) {
	ctx := c.ctx

	tuition := in.TuitionRevenue
	switch {
	case in.StudentCount > 0:
		tuition = ctx.Round(ctx.Mul(dec.NewFromInt(int64(in.StudentCount)), in.TuitionRate))
	case in.PreFill:
		tuition = ctx.Round(ctx.Mul(prior.ProfitLoss.TuitionRevenue, ctx.Add(dec.New(1, 0), in.TuitionGrowthRate)))
	}

	otherRevenue := ratios.ProjectOtherRevenue(ctx, tuition)
	totalRevenue := ctx.Add(tuition, otherRevenue)

	var staff dec.Decimal
	if in.StaffCosts != nil {
		staff = *in.StaffCosts
	} else {
		staffRatio := ctx.SafeDiv(prior.ProfitLoss.StaffCosts, prior.ProfitLoss.TotalRevenue)
		staff = ctx.Round(ctx.Mul(totalRevenue, staffRatio))
	}

	rent := prior.ProfitLoss.RentExpense
	if in.RentExpense != nil {
		rent = *in.RentExpense
	}

	otherOpex := ctx.Round(ctx.Mul(prior.ProfitLoss.OtherOpex, ctx.Add(dec.New(1, 0), in.OtherOpexGrowthRate)))

	return c.buildProjected(in.Year, statement.Transition, projectedLines{
		TuitionRevenue: tuition,
		RentExpense:    rent,
		StaffCosts:     staff,
		OtherOpex:      otherOpex,
		CapExSpending:  in.CapExSpending,
	}, prior, ratios, assets)
}
