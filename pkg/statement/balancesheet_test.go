package statement

import (
	"testing"

	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
)

func TestSolveDebtPlug(t *testing.T) {
	ctx := dec.DefaultContext()

	tests := []struct {
		name        string
		assets      string
		liabilities string
		equity      string
		expected    string
	}{
		{"Positive plug", "11100000", "2445000", "4900000", "3755000"},
		{"Zero plug", "7345000", "2445000", "4900000", "0"},
		{"Negative plug clamps", "7000000", "2445000", "4900000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plug := SolveDebtPlug(ctx, d(tt.assets), d(tt.liabilities), d(tt.equity))
			if !plug.Equal(d(tt.expected)) {
				t.Errorf("SolveDebtPlug = %s, expected %s", plug, tt.expected)
			}
		})
	}
}

func TestBuildBalanceSheetPlug(t *testing.T) {
	ctx := dec.DefaultContext()

	bs, events := BuildBalanceSheet(ctx, BalanceSheetInput{
		Year:                    2025,
		Cash:                    d("1500000"),
		AccountsReceivable:      d("750000"),
		PrepaidExpenses:         d("250000"),
		GrossPPE:                d("12000000"),
		AccumulatedDepreciation: d("3400000"),
		AccountsPayable:         d("600000"),
		AccruedExpenses:         d("645000"),
		DeferredRevenue:         d("1200000"),
		RetainedEarnings:        d("3430000"),
		CurrentYearNetIncome:    d("1470000"),
		DebtPolicy:              DebtPlug,
	})

	if !bs.TotalAssets.Equal(d("11100000")) {
		t.Errorf("TotalAssets = %s, expected 11100000", bs.TotalAssets)
	}
	if !bs.DebtBalance.Equal(d("3755000")) {
		t.Errorf("DebtBalance = %s, expected 3755000", bs.DebtBalance)
	}
	if !bs.Balanced {
		t.Errorf("sheet should balance by construction, difference %s", bs.BalanceDifference)
	}
	if len(events) != 0 {
		t.Errorf("expected no diagnostics, got %v", events)
	}
}

func TestBuildBalanceSheetNegativePlug(t *testing.T) {
	ctx := dec.DefaultContext()

	// Equity alone exceeds assets, so the solved plug is negative and must be
	// clamped to zero with a warning; the sheet then carries the residual.
	bs, events := BuildBalanceSheet(ctx, BalanceSheetInput{
		Year:                 2026,
		Cash:                 d("1000000"),
		RetainedEarnings:     d("2000000"),
		CurrentYearNetIncome: d("0"),
		DebtPolicy:           DebtPlug,
	})

	if !bs.DebtBalance.IsZero() {
		t.Errorf("DebtBalance = %s, expected clamped zero", bs.DebtBalance)
	}
	if bs.Balanced {
		t.Errorf("sheet should not balance after clamping a negative plug")
	}
	if !bs.BalanceDifference.Equal(d("-1000000")) {
		t.Errorf("BalanceDifference = %s, expected -1000000", bs.BalanceDifference)
	}

	var sawClamp, sawImbalance bool
	for _, ev := range events {
		switch ev.Code {
		case diag.CodeNegativeDebtPlug:
			sawClamp = true
		case diag.CodeBalanceSheetImbalance:
			sawImbalance = true
		}
	}
	if !sawClamp || !sawImbalance {
		t.Errorf("expected negative-plug and imbalance diagnostics, got %v", events)
	}
}

func TestBuildBalanceSheetActualDebt(t *testing.T) {
	ctx := dec.DefaultContext()

	bs, events := BuildBalanceSheet(ctx, BalanceSheetInput{
		Year:                 2024,
		Cash:                 d("500000"),
		RetainedEarnings:     d("300000"),
		CurrentYearNetIncome: d("100000"),
		DebtPolicy:           DebtActual,
		ActualDebt:           d("50000"),
	})

	if !bs.DebtBalance.Equal(d("50000")) {
		t.Errorf("DebtBalance = %s, expected recorded 50000", bs.DebtBalance)
	}
	if bs.Balanced {
		t.Errorf("recorded debt should leave the imbalance visible")
	}
	if !bs.BalanceDifference.Equal(d("50000")) {
		t.Errorf("BalanceDifference = %s, expected 50000", bs.BalanceDifference)
	}
	if len(events) != 1 || events[0].Code != diag.CodeBalanceSheetImbalance {
		t.Errorf("expected a single imbalance diagnostic, got %v", events)
	}
}
