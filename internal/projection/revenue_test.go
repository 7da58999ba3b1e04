package projection

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateTuitionRevenueSingleStream(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := CurriculumConfig{
		BaseYear:           2028,
		NationalFee:        d("15000"),
		NationalGrowthRate: d("0.03"),
		GrowthFrequency:    2,
	}

	// Base year, no escalation yet.
	if got := CalculateTuitionRevenue(ctx, cfg, 1000, 2028); !got.Equal(d("15000000")) {
		t.Errorf("tuition(1000, 2028) = %s, expected 15000000", got)
	}

	// One year in, still inside the first escalation window.
	if got := CalculateTuitionRevenue(ctx, cfg, 1000, 2029); !got.Equal(d("15000000")) {
		t.Errorf("tuition(1000, 2029) = %s, expected 15000000", got)
	}

	// Two years in, one escalation step: 15000 * 1.03 = 15450.
	if got := CalculateTuitionRevenue(ctx, cfg, 1000, 2030); !got.Equal(d("15450000")) {
		t.Errorf("tuition(1000, 2030) = %s, expected 15450000", got)
	}

	// Four years in, two steps: 15000 * 1.0609 = 15913.50.
	if got := CalculateTuitionRevenue(ctx, cfg, 1000, 2032); !got.Equal(d("15913500")) {
		t.Errorf("tuition(1000, 2032) = %s, expected 15913500", got)
	}
}

func TestCalculateTuitionRevenueDualStream(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := CurriculumConfig{
		BaseYear:           2028,
		NationalFee:        d("15000"),
		NationalGrowthRate: d("0.03"),
		IBEnabled:          true,
		IBShare:            d("0.25"),
		IBFee:              d("25000"),
		IBGrowthRate:       d("0.04"),
		GrowthFrequency:    2,
	}

	// 1000 students: 250 IB at 25000, 750 national at 15000.
	got := CalculateTuitionRevenue(ctx, cfg, 1000, 2028)
	if !got.Equal(d("17500000")) {
		t.Errorf("dual-stream tuition = %s, expected 17500000", got)
	}

	// Streams escalate independently: 2030 national 15450, IB 26000.
	got = CalculateTuitionRevenue(ctx, cfg, 1000, 2030)
	expected := d("18087500") // 750*15450 + 250*26000
	if !got.Equal(expected) {
		t.Errorf("escalated dual-stream tuition = %s, expected %s", got, expected)
	}
}

func TestCalculateTuitionRevenueZeroStudents(t *testing.T) {
	ctx := dec.DefaultContext()
	cfg := CurriculumConfig{BaseYear: 2028, NationalFee: d("15000")}

	if got := CalculateTuitionRevenue(ctx, cfg, 0, 2028); !got.IsZero() {
		t.Errorf("zero students should yield zero revenue, got %s", got)
	}
}

func TestEscalatedFee(t *testing.T) {
	ctx := dec.DefaultContext()

	tests := []struct {
		name      string
		fee       string
		rate      string
		baseYear  int
		frequency int
		year      int
		expected  string
	}{
		{"Base year", "15000", "0.03", 2028, 2, 2028, "15000"},
		{"Before base year", "15000", "0.03", 2028, 2, 2025, "15000"},
		{"Partial window", "15000", "0.03", 2028, 2, 2029, "15000"},
		{"One step", "15000", "0.03", 2028, 2, 2030, "15450"},
		{"Two steps", "15000", "0.03", 2028, 2, 2032, "15913.5"},
		{"Annual frequency", "1000", "0.1", 2028, 1, 2031, "1331"},
		{"Zero frequency treated as annual", "1000", "0.1", 2028, 0, 2030, "1210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escalatedFee(ctx, d(tt.fee), d(tt.rate), tt.baseYear, tt.frequency, tt.year)
			if !got.Equal(d(tt.expected)) {
				t.Errorf("escalatedFee = %s, expected %s", got, tt.expected)
			}
		})
	}
}
