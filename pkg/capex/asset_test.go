package capex

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStraightLineSchedule(t *testing.T) {
	ctx := dec.DefaultContext()
	asset := Asset{
		Name:           "Building",
		PurchaseYear:   2026,
		PurchaseAmount: d("10000000"),
		UsefulLife:     20,
		Method:         StraightLine,
	}

	// Purchase year: one year of depreciation under either convention.
	st := StateAt(ctx, asset, 2026, PoolDepreciation{})
	if !st.AnnualExpense.Equal(d("500000")) {
		t.Errorf("purchase-year expense = %s, expected 500000", st.AnnualExpense)
	}
	if !st.NetBookValue.Equal(d("9500000")) {
		t.Errorf("purchase-year NBV = %s, expected 9500000", st.NetBookValue)
	}
	if st.FullyDepreciated {
		t.Errorf("asset should not be fully depreciated in the purchase year")
	}

	// Final service year exhausts the asset.
	st = StateAt(ctx, asset, 2045, PoolDepreciation{})
	if !st.AnnualExpense.Equal(d("500000")) {
		t.Errorf("final-year expense = %s, expected 500000", st.AnnualExpense)
	}
	if !st.NetBookValue.IsZero() {
		t.Errorf("final-year NBV = %s, expected 0", st.NetBookValue)
	}
	if !st.FullyDepreciated {
		t.Errorf("asset should be fully depreciated after useful life")
	}

	// Year 21: no further expense, accumulated stays capped.
	st = StateAt(ctx, asset, 2046, PoolDepreciation{})
	if !st.AnnualExpense.IsZero() {
		t.Errorf("post-life expense = %s, expected 0", st.AnnualExpense)
	}
	if !st.AccumulatedDepreciation.Equal(d("10000000")) {
		t.Errorf("post-life accumulated = %s, expected 10000000", st.AccumulatedDepreciation)
	}
	if !st.FullyDepreciated {
		t.Errorf("asset should stay fully depreciated")
	}
}

func TestAgeConventions(t *testing.T) {
	tests := []struct {
		name       string
		conv       Depreciator
		year       int
		usefulLife int
		inService  bool
	}{
		{"Pool purchase year", PoolDepreciation{}, 2026, 5, true},
		{"Pool final year", PoolDepreciation{}, 2030, 5, true},
		{"Pool after life", PoolDepreciation{}, 2031, 5, false},
		{"Pool before purchase", PoolDepreciation{}, 2025, 5, false},
		{"Category purchase year", CategoryDepreciation{}, 2026, 5, true},
		{"Category final year", CategoryDepreciation{}, 2030, 5, true},
		{"Category after life", CategoryDepreciation{}, 2031, 5, false},
		{"Category before purchase", CategoryDepreciation{}, 2025, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := tt.conv.Age(2026, tt.year)
			if got := tt.conv.InService(age, tt.usefulLife); got != tt.inService {
				t.Errorf("InService(age %d, life %d) = %v, expected %v", age, tt.usefulLife, got, tt.inService)
			}
		})
	}

	// The conventions count age differently even when service status agrees.
	if got := (PoolDepreciation{}).Age(2026, 2026); got != 1 {
		t.Errorf("pool age in purchase year = %d, expected 1", got)
	}
	if got := (CategoryDepreciation{}).Age(2026, 2026); got != 0 {
		t.Errorf("category age in purchase year = %d, expected 0", got)
	}
}

func TestStateAtIdempotent(t *testing.T) {
	ctx := dec.DefaultContext()
	asset := Asset{
		Name:           "Lab equipment",
		PurchaseYear:   2027,
		PurchaseAmount: d("400000"),
		UsefulLife:     5,
		Method:         StraightLine,
	}

	first := StateAt(ctx, asset, 2029, CategoryDepreciation{})
	second := StateAt(ctx, asset, 2029, CategoryDepreciation{})

	if !first.AccumulatedDepreciation.Equal(second.AccumulatedDepreciation) ||
		!first.NetBookValue.Equal(second.NetBookValue) ||
		!first.AnnualExpense.Equal(second.AnnualExpense) {
		t.Errorf("StateAt should be pure: %+v vs %+v", first, second)
	}
	if !first.AccumulatedDepreciation.Equal(d("240000")) {
		t.Errorf("accumulated after 3 service years = %s, expected 240000", first.AccumulatedDepreciation)
	}
}

func TestDepreciateCapsAtPurchaseAmount(t *testing.T) {
	ctx := dec.DefaultContext()
	asset := Asset{
		Name:           "Bus",
		PurchaseYear:   2026,
		PurchaseAmount: d("300000"),
		UsefulLife:     3,
		Method:         StraightLine,
	}

	prior := decimal.Zero
	for year := 2026; year <= 2030; year++ {
		st := Depreciate(ctx, asset, year, prior, PoolDepreciation{})
		if st.AccumulatedDepreciation.LessThan(prior) {
			t.Errorf("accumulated depreciation decreased at %d: %s < %s", year, st.AccumulatedDepreciation, prior)
		}
		if st.AccumulatedDepreciation.GreaterThan(asset.PurchaseAmount) {
			t.Errorf("accumulated depreciation exceeds cost at %d: %s", year, st.AccumulatedDepreciation)
		}
		prior = st.AccumulatedDepreciation
	}
	if !prior.Equal(d("300000")) {
		t.Errorf("accumulated after life = %s, expected 300000", prior)
	}
}

func TestDecliningBalanceInert(t *testing.T) {
	ctx := dec.DefaultContext()
	asset := Asset{
		Name:           "Vehicles",
		PurchaseYear:   2026,
		PurchaseAmount: d("500000"),
		UsefulLife:     5,
		Method:         DecliningBalance,
		DecliningRate:  d("0.3"),
	}

	st := StateAt(ctx, asset, 2027, PoolDepreciation{})
	if !st.AnnualExpense.IsZero() || !st.AccumulatedDepreciation.IsZero() {
		t.Errorf("declining balance should compute zero until implemented, got expense %s accumulated %s",
			st.AnnualExpense, st.AccumulatedDepreciation)
	}
	if !st.NetBookValue.Equal(d("500000")) {
		t.Errorf("NBV = %s, expected full cost 500000", st.NetBookValue)
	}
}
