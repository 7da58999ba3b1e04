package projection

import (
	"fmt"

	"github.com/edufin/proforma/pkg/dec"
)

// StaffCostModel selects one of the three mutually exclusive staff-cost
// models.
type StaffCostModel int

const (
	// StaffFixedVariable is a fixed base cost plus a variable cost per student.
	StaffFixedVariable StaffCostModel = iota

	// StaffPercentOfRevenue spends a fixed share of total revenue on staff.
	StaffPercentOfRevenue

	// StaffRatioBased derives teacher and admin headcount from enrollment and
	// escalates salaries with CPI.
	StaffRatioBased
)

// String returns the model name.
func (m StaffCostModel) String() string {
	switch m {
	case StaffFixedVariable:
		return "FIXED_VARIABLE"
	case StaffPercentOfRevenue:
		return "PERCENT_OF_REVENUE"
	case StaffRatioBased:
		return "RATIO_BASED"
	default:
		return fmt.Sprintf("STAFF_MODEL(%d)", int(m))
	}
}

// StaffCostConfig parameterizes the selected model. Only the fields of the
// selected model are consulted.
type StaffCostConfig struct {
	Model StaffCostModel

	// StaffFixedVariable
	FixedCost          dec.Decimal
	VariablePerStudent dec.Decimal

	// StaffPercentOfRevenue
	RevenuePercent dec.Decimal

	// StaffRatioBased
	StudentsPerTeacher int
	TeacherSalary      dec.Decimal
	AdminPerTeacher    dec.Decimal
	AdminSalary        dec.Decimal
	CPIRate            dec.Decimal
	BaseYear           int
}

// CalculateStaffCost computes the year's staff cost under the configured
// model.
func CalculateStaffCost(ctx dec.Context, cfg StaffCostConfig, students int, totalRevenue dec.Decimal, year int) dec.Decimal {
	switch cfg.Model {
	case StaffFixedVariable:
		variable := ctx.Mul(dec.NewFromInt(int64(students)), cfg.VariablePerStudent)
		return ctx.Round(ctx.Add(cfg.FixedCost, variable))

	case StaffPercentOfRevenue:
		return ctx.Round(ctx.Mul(totalRevenue, cfg.RevenuePercent))

	case StaffRatioBased:
		teachers := headcount(students, cfg.StudentsPerTeacher)
		admins := ctx.Mul(dec.NewFromInt(int64(teachers)), cfg.AdminPerTeacher).Ceil()
		base := ctx.Add(
			ctx.Mul(dec.NewFromInt(int64(teachers)), cfg.TeacherSalary),
			ctx.Mul(admins, cfg.AdminSalary),
		)
		yearsElapsed := year - cfg.BaseYear
		if yearsElapsed < 0 {
			yearsElapsed = 0
		}
		return ctx.Round(ctx.Mul(base, ctx.CompoundFactor(cfg.CPIRate, yearsElapsed)))

	default:
		panic(fmt.Sprintf("projection: unknown staff cost model %d", int(cfg.Model)))
	}
}

// headcount returns ceil(students / perHead), with zero staff for zero
// students.
func headcount(students, perHead int) int {
	if students <= 0 || perHead <= 0 {
		return 0
	}
	return (students + perHead - 1) / perHead
}
