package projection

import (
	"fmt"

	"github.com/edufin/proforma/pkg/dec"
)

// RentModel selects one of the three mutually exclusive rent models.
type RentModel int

const (
	// RentFixedEscalation is a base rent escalated periodically.
	RentFixedEscalation RentModel = iota

	// RentRevenueShare pays the landlord a fixed share of total revenue.
	RentRevenueShare

	// RentPartnerYield pays a yield on a partner's capital investment, with
	// the yield growing periodically.
	RentPartnerYield
)

// String returns the model name.
func (m RentModel) String() string {
	switch m {
	case RentFixedEscalation:
		return "FIXED_ESCALATION"
	case RentRevenueShare:
		return "REVENUE_SHARE"
	case RentPartnerYield:
		return "PARTNER_YIELD"
	default:
		return fmt.Sprintf("RENT_MODEL(%d)", int(m))
	}
}

// RentConfig parameterizes the selected model.
type RentConfig struct {
	Model    RentModel
	BaseYear int

	// RentFixedEscalation
	BaseRent            dec.Decimal
	EscalationRate      dec.Decimal
	EscalationFrequency int

	// RentRevenueShare
	RevenueShare dec.Decimal

	// RentPartnerYield
	PartnerInvestment    dec.Decimal
	YieldRate            dec.Decimal
	YieldGrowthRate      dec.Decimal
	YieldGrowthFrequency int
}

// CalculateRent computes the year's rent expense under the configured model.
func CalculateRent(ctx dec.Context, cfg RentConfig, totalRevenue dec.Decimal, year int) dec.Decimal {
	switch cfg.Model {
	case RentFixedEscalation:
		return ctx.Round(escalatedFee(ctx, cfg.BaseRent, cfg.EscalationRate, cfg.BaseYear, cfg.EscalationFrequency, year))

	case RentRevenueShare:
		return ctx.Round(ctx.Mul(totalRevenue, cfg.RevenueShare))

	case RentPartnerYield:
		yield := escalatedFee(ctx, cfg.YieldRate, cfg.YieldGrowthRate, cfg.BaseYear, cfg.YieldGrowthFrequency, year)
		return ctx.Round(ctx.Mul(cfg.PartnerInvestment, yield))

	default:
		panic(fmt.Sprintf("projection: unknown rent model %d", int(cfg.Model)))
	}
}
