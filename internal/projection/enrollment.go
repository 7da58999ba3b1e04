package projection

import (
	"github.com/edufin/proforma/pkg/dec"
)

// EnrollmentConfig describes the ramp toward steady-state enrollment.
type EnrollmentConfig struct {
	RampStartYear  int
	RampEndYear    int
	TargetStudents int

	// RampPercentages, when supplied, are discrete fractions of the target
	// indexed by year offset from RampStartYear, overriding the linear
	// interpolation.
	RampPercentages []dec.Decimal
}

// CalculateEnrollment returns the student count for a year. Linear ramp
// progress is (yearsElapsed+1)/(totalRampYears+1); discrete ramp percentages
// index directly by year offset. Years past the ramp end are steady state at
// the target; years before the ramp start enroll nobody.
func CalculateEnrollment(ctx dec.Context, cfg EnrollmentConfig, year int) int {
	if year < cfg.RampStartYear || cfg.TargetStudents <= 0 {
		return 0
	}

	target := dec.NewFromInt(int64(cfg.TargetStudents))
	offset := year - cfg.RampStartYear

	if len(cfg.RampPercentages) > 0 {
		if offset >= len(cfg.RampPercentages) {
			return cfg.TargetStudents
		}
		return int(ctx.Mul(target, cfg.RampPercentages[offset]).Round(0).IntPart())
	}

	totalRampYears := cfg.RampEndYear - cfg.RampStartYear
	if totalRampYears <= 0 || offset >= totalRampYears {
		return cfg.TargetStudents
	}

	progress := ctx.Div(
		dec.NewFromInt(int64(offset+1)),
		dec.NewFromInt(int64(totalRampYears+1)),
	)
	return int(ctx.Mul(target, progress).Round(0).IntPart())
}
