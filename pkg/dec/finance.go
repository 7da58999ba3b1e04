package dec

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Financial primitives shared by the projection engine and the metrics layer.

const (
	irrMaxIterations = 100
	irrInitialGuess  = "0.1"
)

// NPV returns the net present value of cashflows discounted at rate, with
// cashflows[0] occurring at time zero (undiscounted).
func (c Context) NPV(rate decimal.Decimal, cashflows []decimal.Decimal) decimal.Decimal {
	one := decimal.New(1, 0)
	base := one.Add(rate)
	npv := decimal.Zero
	for t, cf := range cashflows {
		npv = npv.Add(c.Div(cf, c.PowInt(base, t)))
	}
	return npv
}

// IRR solves for the internal rate of return of cashflows using
// Newton-Raphson. cashflows[0] is the time-zero flow (usually a negative
// investment). It returns an error when the iteration fails to converge or
// the derivative vanishes; both indicate cashflows without a meaningful IRR
// rather than a defect.
func (c Context) IRR(cashflows []decimal.Decimal) (decimal.Decimal, error) {
	if len(cashflows) < 2 {
		return decimal.Zero, fmt.Errorf("IRR requires at least two cashflows, got %d", len(cashflows))
	}

	one := decimal.New(1, 0)
	epsilon := decimal.New(1, -7)
	rate := decimal.RequireFromString(irrInitialGuess)

	for i := 0; i < irrMaxIterations; i++ {
		base := one.Add(rate)
		if base.IsZero() {
			return decimal.Zero, fmt.Errorf("IRR iteration reached rate of -100%%")
		}

		// npv(rate) and its derivative d(npv)/d(rate).
		npv := decimal.Zero
		derivative := decimal.Zero
		for t, cf := range cashflows {
			npv = npv.Add(c.Div(cf, c.PowInt(base, t)))
			if t > 0 {
				term := c.Div(cf.Mul(decimal.New(int64(t), 0)), c.PowInt(base, t+1))
				derivative = derivative.Sub(term)
			}
		}

		if npv.Abs().LessThanOrEqual(epsilon) {
			return rate, nil
		}
		if derivative.IsZero() {
			return decimal.Zero, fmt.Errorf("IRR derivative vanished after %d iterations", i)
		}

		next := rate.Sub(c.Div(npv, derivative))
		if next.Sub(rate).Abs().LessThanOrEqual(epsilon) {
			return next, nil
		}
		rate = next
	}

	return decimal.Zero, fmt.Errorf("IRR did not converge within %d iterations", irrMaxIterations)
}

// CompoundFactor returns (1 + rate)^periods, the growth factor applied to a
// value escalated at rate over the given number of whole periods.
func (c Context) CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return c.PowInt(decimal.New(1, 0).Add(rate), periods)
}

// AnnualizationFactor converts a periodic rate into its effective annual
// rate: (1 + periodicRate)^periodsPerYear - 1.
func (c Context) AnnualizationFactor(periodicRate decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return c.CompoundFactor(periodicRate, periodsPerYear).Sub(decimal.New(1, 0))
}
