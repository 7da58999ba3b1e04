package projection

import (
	"github.com/edufin/proforma/pkg/dec"
)

// CurriculumConfig describes the dual-curriculum tuition structure. When IB
// is disabled every student pays the national fee.
type CurriculumConfig struct {
	BaseYear int

	NationalFee        dec.Decimal
	NationalGrowthRate dec.Decimal

	IBEnabled    bool
	IBShare      dec.Decimal // fraction of students in the IB stream
	IBFee        dec.Decimal
	IBGrowthRate dec.Decimal

	// GrowthFrequency is the number of years between fee increases.
	// Each stream compounds independently as
	// fee x (1+rate)^floor((year-baseYear)/frequency).
	GrowthFrequency int
}

// escalatedFee applies the periodic compounding growth to a base fee.
func escalatedFee(ctx dec.Context, fee, rate dec.Decimal, baseYear, frequency, year int) dec.Decimal {
	if frequency < 1 {
		frequency = 1
	}
	if year <= baseYear {
		return fee
	}
	steps := (year - baseYear) / frequency
	return ctx.Mul(fee, ctx.CompoundFactor(rate, steps))
}

// CalculateTuitionRevenue computes the year's tuition revenue for the given
// enrollment, splitting students between the national and IB streams.
func CalculateTuitionRevenue(ctx dec.Context, cfg CurriculumConfig, students, year int) dec.Decimal {
	if students <= 0 {
		return dec.Zero
	}

	total := dec.NewFromInt(int64(students))
	nationalFee := escalatedFee(ctx, cfg.NationalFee, cfg.NationalGrowthRate, cfg.BaseYear, cfg.GrowthFrequency, year)

	if !cfg.IBEnabled {
		return ctx.Round(ctx.Mul(total, nationalFee))
	}

	ibStudents := ctx.Mul(total, cfg.IBShare).Round(0)
	nationalStudents := ctx.Sub(total, ibStudents)
	ibFee := escalatedFee(ctx, cfg.IBFee, cfg.IBGrowthRate, cfg.BaseYear, cfg.GrowthFrequency, year)

	return ctx.Round(ctx.Add(
		ctx.Mul(nationalStudents, nationalFee),
		ctx.Mul(ibStudents, ibFee),
	))
}
