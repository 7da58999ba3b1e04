package statement

import (
	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

// ProfitLossInput carries the already-computed line items a P&L is built
// from. Interest is supplied as a raw income/expense pair; the convention
// decides how the pair is folded into the statement.
type ProfitLossInput struct {
	TuitionRevenue decimal.Decimal
	OtherRevenue   decimal.Decimal

	RentExpense decimal.Decimal
	StaffCosts  decimal.Decimal
	OtherOpex   decimal.Decimal

	Depreciation decimal.Decimal

	InterestIncome  decimal.Decimal
	InterestExpense decimal.Decimal
	Convention      InterestConvention

	ZakatExpense decimal.Decimal
}

// BuildProfitLoss derives the full income statement from its line items.
// Every derived field equals the stated formula of its inputs exactly; the
// 0.01 tolerance only matters to validators comparing statements produced by
// different paths.
func BuildProfitLoss(ctx dec.Context, in ProfitLossInput) ProfitLossStatement {
	totalRevenue := ctx.Add(in.TuitionRevenue, in.OtherRevenue)
	totalOpex := ctx.Sum(in.RentExpense, in.StaffCosts, in.OtherOpex)

	ebitda := ctx.Sub(totalRevenue, totalOpex)
	ebit := ctx.Sub(ebitda, in.Depreciation)

	netInterest := in.Convention.NetInterest(in.InterestIncome, in.InterestExpense)
	ebt := in.Convention.EBT(ebit, netInterest)

	netIncome := ctx.Sub(ebt, in.ZakatExpense)

	return ProfitLossStatement{
		TuitionRevenue:     in.TuitionRevenue,
		OtherRevenue:       in.OtherRevenue,
		TotalRevenue:       totalRevenue,
		RentExpense:        in.RentExpense,
		StaffCosts:         in.StaffCosts,
		OtherOpex:          in.OtherOpex,
		TotalOpex:          totalOpex,
		EBITDA:             ebitda,
		Depreciation:       in.Depreciation,
		EBIT:               ebit,
		InterestConvention: in.Convention,
		NetInterest:        netInterest,
		EBT:                ebt,
		ZakatExpense:       in.ZakatExpense,
		NetIncome:          netIncome,
	}
}

// Zakat computes the wealth levy on (equity - nonCurrentAssets) * rate,
// floored at zero when the base is non-positive.
func Zakat(ctx dec.Context, equity, nonCurrentAssets, rate decimal.Decimal) decimal.Decimal {
	base := ctx.Sub(equity, nonCurrentAssets)
	if !base.IsPositive() {
		return decimal.Zero
	}
	return ctx.Round(ctx.Mul(base, rate))
}
