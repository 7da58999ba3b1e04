package statement

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBuildProfitLoss(t *testing.T) {
	ctx := dec.DefaultContext()

	in := ProfitLossInput{
		TuitionRevenue:  d("15000000"),
		OtherRevenue:    d("500000"),
		RentExpense:     d("1800000"),
		StaffCosts:      d("6500000"),
		OtherOpex:       d("1200000"),
		Depreciation:    d("700000"),
		InterestIncome:  d("50000"),
		InterestExpense: d("200000"),
		Convention:      ExpenseMinusIncome,
		ZakatExpense:    d("120000"),
	}

	pl := BuildProfitLoss(ctx, in)

	if !pl.TotalRevenue.Equal(d("15500000")) {
		t.Errorf("TotalRevenue = %s, expected 15500000", pl.TotalRevenue)
	}
	if !pl.TotalOpex.Equal(d("9500000")) {
		t.Errorf("TotalOpex = %s, expected 9500000", pl.TotalOpex)
	}
	if !pl.EBITDA.Equal(d("6000000")) {
		t.Errorf("EBITDA = %s, expected 6000000", pl.EBITDA)
	}
	if !pl.EBIT.Equal(d("5300000")) {
		t.Errorf("EBIT = %s, expected 5300000", pl.EBIT)
	}
	if !pl.NetInterest.Equal(d("150000")) {
		t.Errorf("NetInterest = %s, expected 150000", pl.NetInterest)
	}
	if !pl.EBT.Equal(d("5150000")) {
		t.Errorf("EBT = %s, expected 5150000", pl.EBT)
	}
	if !pl.NetIncome.Equal(d("5030000")) {
		t.Errorf("NetIncome = %s, expected 5030000", pl.NetIncome)
	}
}

func TestInterestConventionsAgree(t *testing.T) {
	// Both conventions must produce the same EBT for the same raw pair, only
	// the stored sign of net interest differs.
	income := d("50000")
	expense := d("200000")
	ebit := d("5300000")

	netIME := IncomeMinusExpense.NetInterest(income, expense)
	netEMI := ExpenseMinusIncome.NetInterest(income, expense)

	if !netIME.Equal(d("-150000")) {
		t.Errorf("IncomeMinusExpense net interest = %s, expected -150000", netIME)
	}
	if !netEMI.Equal(d("150000")) {
		t.Errorf("ExpenseMinusIncome net interest = %s, expected 150000", netEMI)
	}

	ebtIME := IncomeMinusExpense.EBT(ebit, netIME)
	ebtEMI := ExpenseMinusIncome.EBT(ebit, netEMI)
	if !ebtIME.Equal(ebtEMI) {
		t.Errorf("conventions disagree on EBT: %s vs %s", ebtIME, ebtEMI)
	}
	if !ebtIME.Equal(d("5150000")) {
		t.Errorf("EBT = %s, expected 5150000", ebtIME)
	}
}

func TestZakat(t *testing.T) {
	ctx := dec.DefaultContext()

	tests := []struct {
		name             string
		equity           string
		nonCurrentAssets string
		rate             string
		expected         string
	}{
		{
			name:             "Positive base",
			equity:           "1000000",
			nonCurrentAssets: "500000",
			rate:             "0.025",
			expected:         "12500",
		},
		{
			name:             "Zero base",
			equity:           "500000",
			nonCurrentAssets: "500000",
			rate:             "0.025",
			expected:         "0",
		},
		{
			name:             "Negative base floors to zero",
			equity:           "400000",
			nonCurrentAssets: "500000",
			rate:             "0.025",
			expected:         "0",
		},
		{
			name:             "Rounded to currency scale",
			equity:           "1000001",
			nonCurrentAssets: "0",
			rate:             "0.025",
			expected:         "25000.03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Zakat(ctx, d(tt.equity), d(tt.nonCurrentAssets), d(tt.rate))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("Zakat = %s, expected %s", result, tt.expected)
			}
		})
	}
}
