package projection

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edufin/proforma/pkg/capex"
	"github.com/edufin/proforma/pkg/dec"
	"github.com/edufin/proforma/pkg/diag"
	"github.com/edufin/proforma/pkg/statement"
	"github.com/edufin/proforma/pkg/workingcapital"
)

// Scenario is one complete model: the shared system configuration, the input
// records for every year, and the capital-asset setup.
type Scenario struct {
	Name   string
	Active bool

	System SystemConfig

	Historical []HistoricalInput
	Transition []TransitionInput
	Dynamic    []DynamicInput

	// WorkingCapitalBaselineYear designates the historical year the ratios
	// are derived from; zero means the last historical year.
	WorkingCapitalBaselineYear int

	ExistingAssets []capex.Asset
	Categories     []capex.Category
}

// Clone returns a structurally independent copy: every slice is reallocated
// and every pointer field re-pointed, so concurrent scenario runs never
// share mutable state.
func (s Scenario) Clone() Scenario {
	out := s

	out.Historical = append([]HistoricalInput(nil), s.Historical...)
	out.Dynamic = append([]DynamicInput(nil), s.Dynamic...)
	out.ExistingAssets = append([]capex.Asset(nil), s.ExistingAssets...)
	out.Categories = append([]capex.Category(nil), s.Categories...)

	out.Transition = make([]TransitionInput, len(s.Transition))
	for i, t := range s.Transition {
		c := t
		if t.StaffCosts != nil {
			v := *t.StaffCosts
			c.StaffCosts = &v
		}
		if t.RentExpense != nil {
			v := *t.RentExpense
			c.RentExpense = &v
		}
		c.CapExSpending = append([]capex.SpendingEvent(nil), t.CapExSpending...)
		out.Transition[i] = c
	}

	for i := range out.Dynamic {
		e := out.Dynamic[i].Enrollment
		e.RampPercentages = append([]dec.Decimal(nil), e.RampPercentages...)
		out.Dynamic[i].Enrollment = e
	}

	return out
}

// years flattens the scenario's inputs in chain order.
func (s Scenario) years() []YearInput {
	inputs := make([]YearInput, 0, len(s.Historical)+len(s.Transition)+len(s.Dynamic))
	for _, h := range s.Historical {
		inputs = append(inputs, h)
	}
	for _, t := range s.Transition {
		inputs = append(inputs, t)
	}
	for _, d := range s.Dynamic {
		inputs = append(inputs, d)
	}
	return inputs
}

// ScenarioResult is one scenario's complete chain plus derived metrics.
type ScenarioResult struct {
	RunID uuid.UUID
	Name  string

	Periods []statement.FinancialPeriod

	// NPV discounts each year's free cash flow (operating + investing) at
	// the debt interest rate. IRR solves the same stream; IRRConverged is
	// false when the stream has no meaningful IRR.
	NPV          dec.Decimal
	IRR          dec.Decimal
	IRRConverged bool

	// Diagnostics aggregates every period's events for convenience.
	Diagnostics diag.Events
}

// Run executes one scenario's full sequential chain. Years are processed
// strictly in order; each period's calculation reads only the immutable
// result of the previous year.
func Run(logger *zap.Logger, ctx dec.Context, s Scenario) (ScenarioResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := ScenarioResult{RunID: uuid.New(), Name: s.Name}
	inputs := s.years()
	if len(inputs) == 0 {
		return result, fmt.Errorf("scenario %q has no year inputs", s.Name)
	}
	for i := 1; i < len(inputs); i++ {
		if inputs[i].InputYear() != inputs[i-1].InputYear()+1 {
			return result, fmt.Errorf("scenario %q: year %d follows year %d, chain must be contiguous",
				s.Name, inputs[i].InputYear(), inputs[i-1].InputYear())
		}
	}

	calc := NewCalculator(ctx, s.System, logger)

	var (
		prior  *statement.FinancialPeriod
		ratios workingcapital.Ratios
		pool   []capex.VirtualAsset
	)

	for _, in := range inputs {
		// Ratios lock once the historical band ends, immediately before the
		// first projected year consumes them.
		if in.PeriodType().IsProjected() && !ratios.Locked {
			baseline, err := baselinePeriod(result.Periods, s.WorkingCapitalBaselineYear)
			if err != nil {
				return result, fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			ratios = workingcapital.Derive(ctx, workingcapital.Baseline{
				Year:               baseline.Year,
				TotalRevenue:       baseline.ProfitLoss.TotalRevenue,
				TotalOpex:          baseline.ProfitLoss.TotalOpex,
				AccountsReceivable: baseline.BalanceSheet.AccountsReceivable,
				PrepaidExpenses:    baseline.BalanceSheet.PrepaidExpenses,
				AccountsPayable:    baseline.BalanceSheet.AccountsPayable,
				AccruedExpenses:    baseline.BalanceSheet.AccruedExpenses,
				DeferredRevenue:    baseline.BalanceSheet.DeferredRevenue,
				OtherRevenue:       baseline.ProfitLoss.OtherRevenue,
			}).Lock()
			logger.Debug("working capital ratios locked",
				zap.String("op", "projection.Run"),
				zap.String("scenario", s.Name),
				zap.Int("baselineYear", baseline.Year),
			)
		}

		res, err := calc.Calculate(in, prior, ratios, CapExInputs{
			ExistingAssets: s.ExistingAssets,
			Categories:     s.Categories,
			Pool:           pool,
		})
		if err != nil {
			return result, fmt.Errorf("scenario %q year %d: %w", s.Name, in.InputYear(), err)
		}

		result.Periods = append(result.Periods, res.Period)
		result.Diagnostics = append(result.Diagnostics, res.Period.Diagnostics...)
		p := res.Period
		prior = &p
		pool = res.Pool
	}

	// Project-level metrics over the free cash flow stream.
	flows := make([]dec.Decimal, 0, len(result.Periods))
	for _, p := range result.Periods {
		flows = append(flows, ctx.Add(p.CashFlow.OperatingCashFlow, p.CashFlow.InvestingCashFlow))
	}
	result.NPV = ctx.NPV(s.System.DebtInterestRate, flows)
	if irr, err := ctx.IRR(flows); err == nil {
		result.IRR = irr
		result.IRRConverged = true
	} else {
		logger.Debug("IRR not available for scenario",
			zap.String("op", "projection.Run"),
			zap.String("scenario", s.Name),
			zap.Error(err),
		)
	}

	return result, nil
}

// baselinePeriod finds the computed period the working-capital ratios derive
// from: the designated year, or the last period computed so far.
func baselinePeriod(periods []statement.FinancialPeriod, year int) (statement.FinancialPeriod, error) {
	if len(periods) == 0 {
		return statement.FinancialPeriod{}, fmt.Errorf("no historical period available for working-capital baseline")
	}
	if year == 0 {
		return periods[len(periods)-1], nil
	}
	for _, p := range periods {
		if p.Year == year {
			return p, nil
		}
	}
	return statement.FinancialPeriod{}, fmt.Errorf("working-capital baseline year %d not found in computed periods", year)
}

// RunAll executes every active scenario. Scenarios are independent: each
// runs on a deep clone of its inputs, so fanning out across goroutines is
// safe even though years within a scenario stay strictly sequential.
func RunAll(logger *zap.Logger, ctx dec.Context, scenarios []Scenario) ([]ScenarioResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	type slot struct {
		set    bool
		result ScenarioResult
	}
	slots := make([]slot, len(scenarios))

	var g errgroup.Group
	for i, s := range scenarios {
		if !s.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", s.Name),
				zap.String("op", "projection.RunAll"),
			)
			continue
		}
		i, cloned := i, s.Clone()
		g.Go(func() error {
			res, err := Run(logger, ctx, cloned)
			if err != nil {
				return err
			}
			slots[i] = slot{set: true, result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sl := range slots {
		if sl.set {
			results = append(results, sl.result)
		}
	}
	return results, nil
}
