package config

import (
	"github.com/edufin/proforma/internal/projection"
	"github.com/edufin/proforma/pkg/capex"
	"github.com/edufin/proforma/pkg/dec"
)

// Adapters converting the YAML-facing configuration types into the engine's
// decimal input records. YAML carries plain numbers; decimals enter the
// system here and never leave it.

// EngineScenarios adapts every configured scenario into engine form.
func (c *Configuration) EngineScenarios() []projection.Scenario {
	system := projection.SystemConfig{
		ZakatRate:           dec.NewFromFloat(c.System.ZakatRate),
		DebtInterestRate:    dec.NewFromFloat(c.System.DebtInterestRate),
		DepositInterestRate: dec.NewFromFloat(c.System.DepositInterestRate),
		MinimumCashBalance:  dec.NewFromFloat(c.System.MinimumCashBalance),
	}

	out := make([]projection.Scenario, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		out = append(out, adaptScenario(s, system))
	}
	return out
}

func adaptScenario(s ScenarioConfig, system projection.SystemConfig) projection.Scenario {
	scenario := projection.Scenario{
		Name:                       s.Name,
		Active:                     s.Active,
		System:                     system,
		WorkingCapitalBaselineYear: s.WorkingCapitalBaselineYear,
	}

	for _, h := range s.Historical {
		scenario.Historical = append(scenario.Historical, projection.HistoricalInput{
			Year:        h.Year,
			Confirmed:   h.Confirmed,
			OpeningCash: dec.NewFromFloat(h.OpeningCash),
			ProfitLoss: projection.HistoricalProfitLoss{
				TuitionRevenue:  dec.NewFromFloat(h.ProfitLoss.TuitionRevenue),
				OtherRevenue:    dec.NewFromFloat(h.ProfitLoss.OtherRevenue),
				RentExpense:     dec.NewFromFloat(h.ProfitLoss.RentExpense),
				StaffCosts:      dec.NewFromFloat(h.ProfitLoss.StaffCosts),
				OtherOpex:       dec.NewFromFloat(h.ProfitLoss.OtherOpex),
				Depreciation:    dec.NewFromFloat(h.ProfitLoss.Depreciation),
				InterestIncome:  dec.NewFromFloat(h.ProfitLoss.InterestIncome),
				InterestExpense: dec.NewFromFloat(h.ProfitLoss.InterestExpense),
				ZakatExpense:    dec.NewFromFloat(h.ProfitLoss.ZakatExpense),
			},
			BalanceSheet: projection.HistoricalBalanceSheet{
				Cash:                    dec.NewFromFloat(h.BalanceSheet.Cash),
				AccountsReceivable:      dec.NewFromFloat(h.BalanceSheet.AccountsReceivable),
				PrepaidExpenses:         dec.NewFromFloat(h.BalanceSheet.PrepaidExpenses),
				GrossPPE:                dec.NewFromFloat(h.BalanceSheet.GrossPPE),
				AccumulatedDepreciation: dec.NewFromFloat(h.BalanceSheet.AccumulatedDepreciation),
				AccountsPayable:         dec.NewFromFloat(h.BalanceSheet.AccountsPayable),
				AccruedExpenses:         dec.NewFromFloat(h.BalanceSheet.AccruedExpenses),
				DeferredRevenue:         dec.NewFromFloat(h.BalanceSheet.DeferredRevenue),
				DebtBalance:             dec.NewFromFloat(h.BalanceSheet.DebtBalance),
				RetainedEarnings:        dec.NewFromFloat(h.BalanceSheet.RetainedEarnings),
			},
		})
	}

	for _, t := range s.Transition {
		in := projection.TransitionInput{
			Year:                t.Year,
			PreFill:             t.PreFill,
			TuitionRevenue:      dec.NewFromFloat(t.TuitionRevenue),
			TuitionGrowthRate:   dec.NewFromFloat(t.TuitionGrowthRate),
			StudentCount:        t.StudentCount,
			TuitionRate:         dec.NewFromFloat(t.TuitionRate),
			OtherOpexGrowthRate: dec.NewFromFloat(t.OtherOpexGrowthRate),
		}
		if t.StaffCosts != nil {
			v := dec.NewFromFloat(*t.StaffCosts)
			in.StaffCosts = &v
		}
		if t.RentExpense != nil {
			v := dec.NewFromFloat(*t.RentExpense)
			in.RentExpense = &v
		}
		for _, sp := range t.CapExSpending {
			in.CapExSpending = append(in.CapExSpending, capex.SpendingEvent{
				Category: sp.Category,
				Year:     t.Year,
				Amount:   dec.NewFromFloat(sp.Amount),
			})
		}
		scenario.Transition = append(scenario.Transition, in)
	}

	if s.Dynamic != nil {
		enrollment := projection.EnrollmentConfig{
			RampStartYear:  s.Dynamic.Enrollment.RampStartYear,
			RampEndYear:    s.Dynamic.Enrollment.RampEndYear,
			TargetStudents: s.Dynamic.Enrollment.TargetStudents,
		}
		for _, p := range s.Dynamic.Enrollment.RampPercentages {
			enrollment.RampPercentages = append(enrollment.RampPercentages, dec.NewFromFloat(p))
		}

		curriculum := projection.CurriculumConfig{
			BaseYear:           s.Dynamic.Curriculum.BaseYear,
			NationalFee:        dec.NewFromFloat(s.Dynamic.Curriculum.NationalFee),
			NationalGrowthRate: dec.NewFromFloat(s.Dynamic.Curriculum.NationalGrowthRate),
			GrowthFrequency:    s.Dynamic.Curriculum.GrowthFrequency,
			IBEnabled:          s.Dynamic.Curriculum.IBEnabled,
			IBShare:            dec.NewFromFloat(s.Dynamic.Curriculum.IBShare),
			IBFee:              dec.NewFromFloat(s.Dynamic.Curriculum.IBFee),
			IBGrowthRate:       dec.NewFromFloat(s.Dynamic.Curriculum.IBGrowthRate),
		}

		staff := adaptStaffCost(s.Dynamic.StaffCost)
		rent := adaptRent(s.Dynamic.Rent)

		for year := s.Dynamic.StartYear; year <= s.Dynamic.EndYear; year++ {
			scenario.Dynamic = append(scenario.Dynamic, projection.DynamicInput{
				Year:       year,
				Enrollment: enrollment,
				Curriculum: curriculum,
				StaffCost:  staff,
				Rent:       rent,
			})
		}
	}

	adapted := adaptCapEx(s.CapEx)
	scenario.ExistingAssets = adapted.ExistingAssets
	scenario.Categories = adapted.Categories

	return scenario
}

func adaptStaffCost(c StaffCostConfig) projection.StaffCostConfig {
	out := projection.StaffCostConfig{
		FixedCost:          dec.NewFromFloat(c.FixedCost),
		VariablePerStudent: dec.NewFromFloat(c.VariablePerStudent),
		RevenuePercent:     dec.NewFromFloat(c.RevenuePercent),
		StudentsPerTeacher: c.StudentsPerTeacher,
		TeacherSalary:      dec.NewFromFloat(c.TeacherSalary),
		AdminPerTeacher:    dec.NewFromFloat(c.AdminPerTeacher),
		AdminSalary:        dec.NewFromFloat(c.AdminSalary),
		CPIRate:            dec.NewFromFloat(c.CPIRate),
		BaseYear:           c.BaseYear,
	}
	switch c.Model {
	case "percentOfRevenue":
		out.Model = projection.StaffPercentOfRevenue
	case "ratioBased":
		out.Model = projection.StaffRatioBased
	default:
		out.Model = projection.StaffFixedVariable
	}
	return out
}

func adaptRent(c RentConfig) projection.RentConfig {
	out := projection.RentConfig{
		BaseYear:             c.BaseYear,
		BaseRent:             dec.NewFromFloat(c.BaseRent),
		EscalationRate:       dec.NewFromFloat(c.EscalationRate),
		EscalationFrequency:  c.EscalationFrequency,
		RevenueShare:         dec.NewFromFloat(c.RevenueShare),
		PartnerInvestment:    dec.NewFromFloat(c.PartnerInvestment),
		YieldRate:            dec.NewFromFloat(c.YieldRate),
		YieldGrowthRate:      dec.NewFromFloat(c.YieldGrowthRate),
		YieldGrowthFrequency: c.YieldGrowthFrequency,
	}
	switch c.Model {
	case "revenueShare":
		out.Model = projection.RentRevenueShare
	case "partnerYield":
		out.Model = projection.RentPartnerYield
	default:
		out.Model = projection.RentFixedEscalation
	}
	return out
}

type adaptedCapEx struct {
	ExistingAssets []capex.Asset
	Categories     []capex.Category
}

func adaptCapEx(c CapExConfig) adaptedCapEx {
	var out adaptedCapEx
	for _, a := range c.ExistingAssets {
		method := capex.StraightLine
		if a.Method == "decliningBalance" {
			method = capex.DecliningBalance
		}
		out.ExistingAssets = append(out.ExistingAssets, capex.Asset{
			Name:           a.Name,
			PurchaseYear:   a.PurchaseYear,
			PurchaseAmount: dec.NewFromFloat(a.PurchaseAmount),
			UsefulLife:     a.UsefulLife,
			Method:         method,
			DecliningRate:  dec.NewFromFloat(a.DecliningRate),
		})
	}
	for _, cat := range c.Categories {
		out.Categories = append(out.Categories, capex.Category{
			Name:                  cat.Name,
			StartYear:             cat.StartYear,
			UsefulLife:            cat.UsefulLife,
			ReinvestmentFrequency: cat.ReinvestmentFrequency,
			ReinvestmentAmount:    dec.NewFromFloat(cat.ReinvestmentAmount),
		})
	}
	return out
}
