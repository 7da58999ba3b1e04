package projection

import (
	"testing"

	"github.com/edufin/proforma/pkg/dec"
)

func TestCalculateRentFixedEscalation(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := RentConfig{
		Model:               RentFixedEscalation,
		BaseYear:            2026,
		BaseRent:            d("1500000"),
		EscalationRate:      d("0.05"),
		EscalationFrequency: 3,
	}

	tests := []struct {
		year     int
		expected string
	}{
		{2026, "1500000"},
		{2028, "1500000"},
		{2029, "1575000"},
		{2032, "1653750"},
	}
	for _, tt := range tests {
		if got := CalculateRent(ctx, cfg, dec.Zero, tt.year); !got.Equal(d(tt.expected)) {
			t.Errorf("rent(%d) = %s, expected %s", tt.year, got, tt.expected)
		}
	}
}

func TestCalculateRentRevenueShare(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := RentConfig{
		Model:        RentRevenueShare,
		RevenueShare: d("0.12"),
	}

	got := CalculateRent(ctx, cfg, d("15000000"), 2029)
	if !got.Equal(d("1800000")) {
		t.Errorf("rent = %s, expected 1800000", got)
	}
	if got := CalculateRent(ctx, cfg, dec.Zero, 2029); !got.IsZero() {
		t.Errorf("no revenue should mean no rent, got %s", got)
	}
}

func TestCalculateRentPartnerYield(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := RentConfig{
		Model:                RentPartnerYield,
		BaseYear:             2026,
		PartnerInvestment:    d("20000000"),
		YieldRate:            d("0.08"),
		YieldGrowthRate:      d("0.1"),
		YieldGrowthFrequency: 5,
	}

	// Base year: 20M * 8% = 1.6M.
	if got := CalculateRent(ctx, cfg, dec.Zero, 2026); !got.Equal(d("1600000")) {
		t.Errorf("rent(2026) = %s, expected 1600000", got)
	}

	// One growth step: yield 8% * 1.1 = 8.8%, rent 1.76M.
	if got := CalculateRent(ctx, cfg, dec.Zero, 2031); !got.Equal(d("1760000")) {
		t.Errorf("rent(2031) = %s, expected 1760000", got)
	}
}
