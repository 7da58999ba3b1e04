package capex

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/edufin/proforma/pkg/dec"
)

// Engine runs one fiscal year of capital-asset accounting: it materializes
// new virtual assets from spending and reinvestment schedules, depreciates
// both asset representations, and rolls PP&E forward.
type Engine struct {
	ctx    dec.Context
	logger *zap.Logger

	pool     PoolDepreciation
	category CategoryDepreciation
}

// NewEngine creates an engine. A nil logger falls back to a no-op logger.
func NewEngine(ctx dec.Context, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{ctx: ctx, logger: logger}
}

// RollForward is the PP&E position carried between years.
type RollForward struct {
	GrossPPE                decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
}

// NetPPE returns gross PP&E net of accumulated depreciation.
func (r RollForward) NetPPE(ctx dec.Context) decimal.Decimal {
	return ctx.Sub(r.GrossPPE, r.AccumulatedDepreciation)
}

// YearResult is the outcome of one year of capital-asset accounting.
type YearResult struct {
	Year int

	// Spending is the total capital spent this year (non-negative; the cash
	// flow statement signs it as an outflow).
	Spending decimal.Decimal

	// Depreciation is the total expense across existing and virtual assets.
	Depreciation decimal.Decimal

	// Pool is the virtual-asset pool to thread into the next year: the prior
	// pool plus this year's additions, in a freshly allocated slice. Pool
	// growth is monotonic; assets are never pruned.
	Pool []VirtualAsset

	// NewAssets are the virtual assets created this year.
	NewAssets []VirtualAsset

	// ExistingStates and VirtualStates report each asset's position.
	ExistingStates []AssetState
	VirtualStates  []AssetState

	RollForward RollForward
}

// RunYear computes one year. existing assets depreciate under the pool
// convention; virtual assets (the prior pool plus this year's additions)
// under the category convention. Unknown spending categories are an input
// defect and return an error.
func (e *Engine) RunYear(
	year int,
	existing []Asset,
	pool []VirtualAsset,
	categories []Category,
	spending []SpendingEvent,
	prior RollForward,
) (YearResult, error) {
	byName := make(map[string]Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}

	var created []VirtualAsset

	for _, ev := range spending {
		if ev.Year != year {
			continue
		}
		cat, ok := byName[ev.Category]
		if !ok {
			return YearResult{}, fmt.Errorf("spending event in year %d references unknown category %q", ev.Year, ev.Category)
		}
		created = append(created, NewVirtualAsset(cat, year, ev.Amount, SourceSpending))
		e.logger.Debug("capex spending event materialized",
			zap.String("op", "capex.RunYear"),
			zap.String("category", ev.Category),
			zap.Int("year", year),
			zap.String("amount", ev.Amount.StringFixed(2)),
		)
	}

	for _, c := range categories {
		if !c.ReinvestmentDue(year) {
			continue
		}
		created = append(created, NewVirtualAsset(c, year, c.ReinvestmentAmount, SourceReinvestment))
		e.logger.Debug("capex auto-reinvestment fired",
			zap.String("op", "capex.RunYear"),
			zap.String("category", c.Name),
			zap.Int("year", year),
			zap.String("amount", c.ReinvestmentAmount.StringFixed(2)),
		)
	}

	// Fresh slice: the prior pool is never mutated in place.
	nextPool := make([]VirtualAsset, 0, len(pool)+len(created))
	nextPool = append(nextPool, pool...)
	nextPool = append(nextPool, created...)

	spendingTotal := decimal.Zero
	for _, a := range created {
		spendingTotal = e.ctx.Add(spendingTotal, a.PurchaseAmount)
	}

	totalDepreciation := decimal.Zero
	existingStates := make([]AssetState, 0, len(existing))
	for _, a := range existing {
		st := StateAt(e.ctx, a, year, e.pool)
		existingStates = append(existingStates, st)
		totalDepreciation = e.ctx.Add(totalDepreciation, st.AnnualExpense)
	}

	virtualStates := make([]AssetState, 0, len(nextPool))
	for _, v := range nextPool {
		st := StateAt(e.ctx, v.Asset, year, e.category)
		virtualStates = append(virtualStates, st)
		totalDepreciation = e.ctx.Add(totalDepreciation, st.AnnualExpense)
	}

	roll := RollForward{
		GrossPPE:                e.ctx.Add(prior.GrossPPE, spendingTotal),
		AccumulatedDepreciation: e.ctx.Add(prior.AccumulatedDepreciation, totalDepreciation),
	}

	return YearResult{
		Year:           year,
		Spending:       spendingTotal,
		Depreciation:   totalDepreciation,
		Pool:           nextPool,
		NewAssets:      created,
		ExistingStates: existingStates,
		VirtualStates:  virtualStates,
		RollForward:    roll,
	}, nil
}
