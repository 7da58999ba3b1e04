package validation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
	"github.com/edufin/proforma/pkg/statement"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildCleanPL(ctx dec.Context) statement.ProfitLossStatement {
	return statement.BuildProfitLoss(ctx, statement.ProfitLossInput{
		TuitionRevenue:  d("15000000"),
		OtherRevenue:    d("500000"),
		RentExpense:     d("1800000"),
		StaffCosts:      d("6500000"),
		OtherOpex:       d("1200000"),
		Depreciation:    d("700000"),
		InterestExpense: d("200000"),
		Convention:      statement.ExpenseMinusIncome,
		ZakatExpense:    d("120000"),
	})
}

func TestValidateProfitLoss(t *testing.T) {
	ctx := dec.DefaultContext()

	pl := buildCleanPL(ctx)
	if events := ValidateProfitLoss(ctx, 2027, pl); len(events) != 0 {
		t.Errorf("clean statement should produce no diagnostics, got %v", events)
	}

	// Corrupt a derived field beyond tolerance.
	pl.EBITDA = pl.EBITDA.Add(d("1"))
	events := ValidateProfitLoss(ctx, 2027, pl)
	if !events.HasErrors() {
		t.Fatalf("expected a mismatch error, got %v", events)
	}
	if events[0].Code != diag.CodeStatementMismatch {
		t.Errorf("expected %s, got %s", diag.CodeStatementMismatch, events[0].Code)
	}

	// Within the 0.01 tolerance nothing fires.
	pl = buildCleanPL(ctx)
	pl.EBITDA = pl.EBITDA.Add(d("0.005"))
	if events := ValidateProfitLoss(ctx, 2027, pl); len(events) != 0 {
		t.Errorf("sub-tolerance drift should pass, got %v", events)
	}
}

func TestValidateBalanceSheet(t *testing.T) {
	ctx := dec.DefaultContext()

	bs, _ := statement.BuildBalanceSheet(ctx, statement.BalanceSheetInput{
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
		DebtPolicy:              statement.DebtPlug,
	})
	if events := ValidateBalanceSheet(ctx, 2025, bs); len(events) != 0 {
		t.Errorf("clean sheet should produce no diagnostics, got %v", events)
	}

	bs.TotalAssets = bs.TotalAssets.Add(d("100"))
	events := ValidateBalanceSheet(ctx, 2025, bs)
	if !events.HasErrors() {
		t.Errorf("expected mismatch errors after corrupting total assets, got %v", events)
	}
	var sawImbalance bool
	for _, ev := range events {
		if ev.Code == diag.CodeBalanceSheetImbalance {
			sawImbalance = true
		}
	}
	if !sawImbalance {
		t.Errorf("expected the balancing identity to fire too, got %v", events)
	}
}

func TestValidateCashFlow(t *testing.T) {
	ctx := dec.DefaultContext()

	cf, _ := statement.BuildCashFlow(ctx, statement.CashFlowInput{
		Year:               2027,
		Mode:               statement.CashFlowProjected,
		NetIncome:          d("1200000"),
		Depreciation:       d("700000"),
		CapitalExpenditure: d("-500000"),
		DebtRepayment:      d("300000"),
		BeginningCash:      d("1000000"),
		BalanceSheetCash:   d("2100000"),
	})
	if events := ValidateCashFlow(ctx, 2027, cf); len(events) != 0 {
		t.Errorf("clean statement should produce no diagnostics, got %v", events)
	}

	cf.CapitalExpenditure = d("500000")
	events := ValidateCashFlow(ctx, 2027, cf)
	if !events.HasErrors() {
		t.Errorf("positive capex should be rejected, got %v", events)
	}
}

func TestValidateCrossStatement(t *testing.T) {
	ctx := dec.DefaultContext()

	pl := buildCleanPL(ctx)
	period := statement.FinancialPeriod{
		Year:       2027,
		ProfitLoss: pl,
		BalanceSheet: statement.BalanceSheet{
			CurrentYearNetIncome: pl.NetIncome,
		},
		CashFlow: statement.CashFlowStatement{
			NetIncome:    pl.NetIncome,
			Depreciation: pl.Depreciation,
		},
	}
	// Only the tie-out identities run here, so the sparse statements pass.
	if events := ValidateCrossStatement(ctx, period); len(events) != 0 {
		t.Errorf("consistent period should produce no diagnostics, got %v", events)
	}

	period.CashFlow.NetIncome = period.CashFlow.NetIncome.Add(d("5"))
	events := ValidateCrossStatement(ctx, period)
	if !events.HasErrors() {
		t.Errorf("expected a net-income tie-out error, got %v", events)
	}
}

func TestValidateLinkage(t *testing.T) {
	ctx := dec.DefaultContext()

	prior := statement.FinancialPeriod{
		Year: 2026,
		BalanceSheet: statement.BalanceSheet{
			TotalEquity:             d("4900000"),
			AccumulatedDepreciation: d("3400000"),
			DebtBalance:             d("3755000"),
		},
		CashFlow: statement.CashFlowStatement{EndingCash: d("1500000")},
	}
	current := statement.FinancialPeriod{
		Year: 2027,
		BalanceSheet: statement.BalanceSheet{
			RetainedEarnings:        d("4900000"),
			AccumulatedDepreciation: d("4100000"),
			DebtBalance:             d("3455000"),
		},
		CashFlow: statement.CashFlowStatement{
			BeginningCash: d("1500000"),
			DebtRepayment: d("300000"),
		},
	}

	if events := ValidateLinkage(ctx, prior, current); len(events) != 0 {
		t.Errorf("linked periods should produce no diagnostics, got %v", events)
	}

	tests := []struct {
		name   string
		mutate func(*statement.FinancialPeriod)
	}{
		{
			name: "Cash discontinuity",
			mutate: func(p *statement.FinancialPeriod) {
				p.CashFlow.BeginningCash = d("1400000")
			},
		},
		{
			name: "Equity roll-forward break",
			mutate: func(p *statement.FinancialPeriod) {
				p.BalanceSheet.RetainedEarnings = d("5000000")
			},
		},
		{
			name: "Accumulated depreciation decreased",
			mutate: func(p *statement.FinancialPeriod) {
				p.BalanceSheet.AccumulatedDepreciation = d("3000000")
			},
		},
		{
			name: "Debt continuity break",
			mutate: func(p *statement.FinancialPeriod) {
				p.BalanceSheet.DebtBalance = d("3755000")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := current
			tt.mutate(&mutated)
			events := ValidateLinkage(ctx, prior, mutated)
			if !events.HasErrors() {
				t.Errorf("expected a linkage error, got %v", events)
			}
			for _, ev := range events {
				if ev.Code != diag.CodeLinkageBreak {
					t.Errorf("unexpected code %s", ev.Code)
				}
			}
		})
	}
}

func TestValidatePeriodBundles(t *testing.T) {
	ctx := dec.DefaultContext()

	pl := buildCleanPL(ctx)
	pl.NetIncome = pl.NetIncome.Add(d("10"))

	period := statement.FinancialPeriod{Year: 2027, ProfitLoss: pl}
	events := ValidatePeriod(ctx, period)
	if !events.HasErrors() {
		t.Errorf("expected the bundled validators to surface the corruption")
	}
}
