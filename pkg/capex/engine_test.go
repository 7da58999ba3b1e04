package capex

import (
	"testing"

	"github.com/edufin/proforma/pkg/dec"
)

func TestReinvestmentDue(t *testing.T) {
	cat := Category{
		Name:                  "equipment",
		StartYear:             2026,
		UsefulLife:            5,
		ReinvestmentFrequency: 5,
		ReinvestmentAmount:    d("400000"),
	}

	tests := []struct {
		year int
		due  bool
	}{
		{2025, false},
		{2026, false}, // start year never fires
		{2027, false},
		{2031, true},
		{2032, false},
		{2036, true},
	}
	for _, tt := range tests {
		if got := cat.ReinvestmentDue(tt.year); got != tt.due {
			t.Errorf("ReinvestmentDue(%d) = %v, expected %v", tt.year, got, tt.due)
		}
	}

	disabled := Category{Name: "land", StartYear: 2026, ReinvestmentFrequency: 0}
	if disabled.ReinvestmentDue(2031) {
		t.Errorf("zero frequency must never fire")
	}
}

func TestRunYearSpendingAndDepreciation(t *testing.T) {
	ctx := dec.DefaultContext()
	engine := NewEngine(ctx, nil)

	existing := []Asset{
		{Name: "Building", PurchaseYear: 2024, PurchaseAmount: d("12000000"), UsefulLife: 20, Method: StraightLine},
	}
	categories := []Category{
		{Name: "equipment", StartYear: 2026, UsefulLife: 5, ReinvestmentFrequency: 5, ReinvestmentAmount: d("400000")},
	}
	spending := []SpendingEvent{
		{Category: "equipment", Year: 2026, Amount: d("500000")},
	}

	result, err := engine.RunYear(2026, existing, nil, categories, spending, RollForward{
		GrossPPE:                d("12000000"),
		AccumulatedDepreciation: d("1200000"),
	})
	if err != nil {
		t.Fatalf("RunYear returned error: %v", err)
	}

	if !result.Spending.Equal(d("500000")) {
		t.Errorf("Spending = %s, expected 500000", result.Spending)
	}
	// Existing: 12M/20 = 600000. Virtual: 500000/5 = 100000 starting in the
	// spending year under the category convention.
	if !result.Depreciation.Equal(d("700000")) {
		t.Errorf("Depreciation = %s, expected 700000", result.Depreciation)
	}
	if len(result.NewAssets) != 1 || result.NewAssets[0].Source != SourceSpending {
		t.Errorf("expected one spending-sourced asset, got %+v", result.NewAssets)
	}
	if !result.RollForward.GrossPPE.Equal(d("12500000")) {
		t.Errorf("GrossPPE = %s, expected 12500000", result.RollForward.GrossPPE)
	}
	if !result.RollForward.AccumulatedDepreciation.Equal(d("1900000")) {
		t.Errorf("AccumulatedDepreciation = %s, expected 1900000", result.RollForward.AccumulatedDepreciation)
	}
	if !result.RollForward.NetPPE(ctx).Equal(d("10600000")) {
		t.Errorf("NetPPE = %s, expected 10600000", result.RollForward.NetPPE(ctx))
	}
}

func TestRunYearPoolGrowsMonotonically(t *testing.T) {
	ctx := dec.DefaultContext()
	engine := NewEngine(ctx, nil)

	categories := []Category{
		{Name: "equipment", StartYear: 2026, UsefulLife: 5, ReinvestmentFrequency: 5, ReinvestmentAmount: d("400000")},
	}
	spending := []SpendingEvent{
		{Category: "equipment", Year: 2026, Amount: d("500000")},
	}

	var pool []VirtualAsset
	roll := RollForward{}
	sizes := make([]int, 0, 7)
	for year := 2026; year <= 2032; year++ {
		result, err := engine.RunYear(year, nil, pool, categories, spending, roll)
		if err != nil {
			t.Fatalf("RunYear(%d) returned error: %v", year, err)
		}
		sizes = append(sizes, len(result.Pool))
		pool = result.Pool
		roll = result.RollForward
	}

	// 2026 spending creates one asset; 2031 reinvestment a second. The pool
	// never shrinks, even once assets stop depreciating.
	expected := []int{1, 1, 1, 1, 1, 2, 2}
	for i, want := range expected {
		if sizes[i] != want {
			t.Errorf("pool size in %d = %d, expected %d", 2026+i, sizes[i], want)
		}
	}
}

func TestRunYearDoesNotMutatePriorPool(t *testing.T) {
	ctx := dec.DefaultContext()
	engine := NewEngine(ctx, nil)

	categories := []Category{
		{Name: "equipment", StartYear: 2026, UsefulLife: 5, ReinvestmentFrequency: 5, ReinvestmentAmount: d("400000")},
	}

	prior := []VirtualAsset{
		NewVirtualAsset(categories[0], 2026, d("500000"), SourceSpending),
	}
	priorLen := len(prior)

	result, err := engine.RunYear(2031, nil, prior, categories, nil, RollForward{})
	if err != nil {
		t.Fatalf("RunYear returned error: %v", err)
	}
	if len(prior) != priorLen {
		t.Errorf("prior pool length changed to %d", len(prior))
	}
	if len(result.Pool) != 2 {
		t.Errorf("result pool length = %d, expected 2", len(result.Pool))
	}
	if &result.Pool[0] == &prior[0] {
		t.Errorf("result pool must be a fresh slice, not the prior backing array")
	}
}

func TestRunYearUnknownCategory(t *testing.T) {
	ctx := dec.DefaultContext()
	engine := NewEngine(ctx, nil)

	spending := []SpendingEvent{
		{Category: "furniture", Year: 2026, Amount: d("100000")},
	}
	_, err := engine.RunYear(2026, nil, nil, nil, spending, RollForward{})
	if err == nil {
		t.Fatalf("expected unknown-category error")
	}
}

func TestRunYearIgnoresOtherYearSpending(t *testing.T) {
	ctx := dec.DefaultContext()
	engine := NewEngine(ctx, nil)

	categories := []Category{
		{Name: "equipment", StartYear: 2026, UsefulLife: 5},
	}
	spending := []SpendingEvent{
		{Category: "equipment", Year: 2028, Amount: d("100000")},
	}

	result, err := engine.RunYear(2026, nil, nil, categories, spending, RollForward{})
	if err != nil {
		t.Fatalf("RunYear returned error: %v", err)
	}
	if !result.Spending.IsZero() {
		t.Errorf("Spending = %s, expected 0 for out-of-year events", result.Spending)
	}
	if len(result.NewAssets) != 0 {
		t.Errorf("expected no new assets, got %d", len(result.NewAssets))
	}
}
