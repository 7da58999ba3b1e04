package projection

import (
	"github.com/edufin/proforma/pkg/statement"
	"github.com/edufin/proforma/pkg/workingcapital"
)

// calculateDynamic models one fully projected year: enrollment ramp,
// dual-curriculum tuition, the configured staff-cost and rent models, and
// category-driven capital spending. Other opex carries the prior year
// forward scaled by revenue, keeping the cost base proportional once the
// transition band has set it.
func (c *Calculator) calculateDynamic(in DynamicInput, prior statement.FinancialPeriod, ratios workingcapital.Ratios, assets CapExInputs) (Result, error) {
	ctx := c.ctx

	students := CalculateEnrollment(ctx, in.Enrollment, in.Year)
	tuition := CalculateTuitionRevenue(ctx, in.Curriculum, students, in.Year)

	otherRevenue := ratios.ProjectOtherRevenue(ctx, tuition)
	totalRevenue := ctx.Add(tuition, otherRevenue)

	rent := CalculateRent(ctx, in.Rent, totalRevenue, in.Year)
	staff := CalculateStaffCost(ctx, in.StaffCost, students, totalRevenue, in.Year)

	otherOpexRatio := ctx.SafeDiv(prior.ProfitLoss.OtherOpex, prior.ProfitLoss.TotalRevenue)
	otherOpex := ctx.Round(ctx.Mul(totalRevenue, otherOpexRatio))

	return c.buildProjected(in.Year, statement.Dynamic, projectedLines{
		TuitionRevenue: tuition,
		RentExpense:    rent,
		StaffCosts:     staff,
		OtherOpex:      otherOpex,
	}, prior, ratios, assets)
}
