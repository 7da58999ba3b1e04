// Package dec provides the arbitrary-precision decimal arithmetic used by
// every calculation in the projection engine: safe elementary operations,
// aggregates, tolerance comparisons, and financial primitives. All operations
// take an explicit Context so precision and rounding are never ambient
// package-level state.
package dec

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal aliases the underlying arbitrary-precision decimal type so
// downstream packages depend on this layer rather than the library directly.
type Decimal = decimal.Decimal

// Zero is the zero value shared by callers that need an explicit decimal zero.
var Zero = decimal.Zero

// New returns value * 10^exp.
func New(value int64, exp int32) decimal.Decimal { return decimal.New(value, exp) }

// NewFromInt returns the decimal for an integer value.
func NewFromInt(value int64) decimal.Decimal { return decimal.NewFromInt(value) }

// NewFromFloat converts a float to its shortest exact decimal representation.
func NewFromFloat(value float64) decimal.Decimal { return decimal.NewFromFloat(value) }

// RequireFromString parses a decimal literal, panicking on malformed input.
func RequireFromString(value string) decimal.Decimal { return decimal.RequireFromString(value) }

// Context carries the precision and rounding policy for a chain of
// calculations. A Context is a plain value; copying it is cheap and safe.
type Context struct {
	// DivisionPrecision is the number of significant decimal digits kept by
	// Div and the iterative financial primitives.
	DivisionPrecision int32

	// CurrencyScale is the number of fractional digits monetary amounts are
	// rounded to (half-up).
	CurrencyScale int32

	// Tolerance is the maximum absolute difference under which two monetary
	// amounts are considered equal.
	Tolerance decimal.Decimal
}

// DefaultContext returns the engine-wide numeric contract: 20 digits of
// division precision, currency rounded half-up to cents, and a comparison
// tolerance of 0.01 currency units.
func DefaultContext() Context {
	return Context{
		DivisionPrecision: 20,
		CurrencyScale:     2,
		Tolerance:         decimal.New(1, -2),
	}
}

// Add returns a + b.
func (c Context) Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b.
func (c Context) Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Mul returns a * b.
func (c Context) Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Div returns a / b at the context's division precision. Division by zero
// panics: it indicates a logic defect in the caller, not bad model input.
func (c Context) Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		panic(fmt.Sprintf("dec: division by zero (%s / 0)", a))
	}
	return a.DivRound(b, c.DivisionPrecision)
}

// SafeDiv returns a / b, or zero when b is zero. It exists for ratio
// derivations where a zero denominator is a defined input condition rather
// than a defect.
func (c Context) SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, c.DivisionPrecision)
}

// Round rounds a monetary amount half-up to the context's currency scale.
func (c Context) Round(a decimal.Decimal) decimal.Decimal {
	return a.Round(c.CurrencyScale)
}

// Sum returns the sum of all values, or zero for no values.
func (c Context) Sum(values ...decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(values[0], values[1:]...)
}

// Min returns the smallest of the given values. It panics when called with
// no values.
func (c Context) Min(values ...decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		panic("dec: Min of no values")
	}
	return decimal.Min(values[0], values[1:]...)
}

// Max returns the largest of the given values. It panics when called with
// no values.
func (c Context) Max(values ...decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		panic("dec: Max of no values")
	}
	return decimal.Max(values[0], values[1:]...)
}

// FloorZero clamps a to be non-negative.
func (c Context) FloorZero(a decimal.Decimal) decimal.Decimal {
	if a.IsNegative() {
		return decimal.Zero
	}
	return a
}

// WithinTolerance reports whether |a - b| is within the context tolerance.
func (c Context) WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(c.Tolerance)
}

// IsEffectivelyZero reports whether |a| is within the context tolerance of zero.
func (c Context) IsEffectivelyZero(a decimal.Decimal) bool {
	return a.Abs().LessThanOrEqual(c.Tolerance)
}

// PowInt returns base^exp for a non-negative integer exponent.
func (c Context) PowInt(base decimal.Decimal, exp int) decimal.Decimal {
	if exp < 0 {
		panic(fmt.Sprintf("dec: PowInt with negative exponent %d", exp))
	}
	result := decimal.New(1, 0)
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	return result
}

// Sqrt returns the square root of a via Newton's method at the context's
// division precision. A negative argument panics: it indicates a logic
// defect upstream.
func (c Context) Sqrt(a decimal.Decimal) decimal.Decimal {
	if a.IsNegative() {
		panic(fmt.Sprintf("dec: square root of negative value %s", a))
	}
	if a.IsZero() {
		return decimal.Zero
	}
	two := decimal.New(2, 0)
	guess := a.DivRound(two, c.DivisionPrecision)
	if guess.IsZero() {
		guess = a
	}
	epsilon := decimal.New(1, -c.DivisionPrecision)
	for i := 0; i < 64; i++ {
		next := guess.Add(a.DivRound(guess, c.DivisionPrecision)).DivRound(two, c.DivisionPrecision)
		if next.Sub(guess).Abs().LessThanOrEqual(epsilon) {
			return next
		}
		guess = next
	}
	return guess
}
