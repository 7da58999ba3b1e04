package capex

import (
	"github.com/shopspring/decimal"
)

// Category scopes virtual assets created from spending events and schedules
// automatic reinvestment.
type Category struct {
	Name       string
	StartYear  int
	UsefulLife int

	// ReinvestmentFrequency is the number of years between automatic
	// repurchases; zero disables auto-reinvestment for the category.
	ReinvestmentFrequency int

	// ReinvestmentAmount is the purchase amount of each auto-created asset.
	ReinvestmentAmount decimal.Decimal
}

// ReinvestmentDue reports whether the category fires an automatic
// reinvestment in the given year: (year - startYear) mod frequency == 0 and
// strictly after the start year.
func (c Category) ReinvestmentDue(year int) bool {
	if c.ReinvestmentFrequency <= 0 {
		return false
	}
	if year <= c.StartYear {
		return false
	}
	return (year-c.StartYear)%c.ReinvestmentFrequency == 0
}

// VirtualAssetSource records how a virtual asset came to exist.
type VirtualAssetSource int

const (
	// SourceSpending marks assets created from an explicit spending event.
	SourceSpending VirtualAssetSource = iota

	// SourceReinvestment marks assets created by the category's automatic
	// reinvestment schedule.
	SourceReinvestment
)

// VirtualAsset is a depreciable unit created implicitly from category
// spending rather than explicitly configured. Virtual assets use the
// CategoryDepreciation age convention.
type VirtualAsset struct {
	Asset

	Category string
	Source   VirtualAssetSource
}

// SpendingEvent is a manual capital-spending entry (used during the
// transition band) that materializes as a virtual asset in its category.
type SpendingEvent struct {
	Category string
	Year     int
	Amount   decimal.Decimal
}

// NewVirtualAsset creates the virtual asset a spending event or reinvestment
// firing produces, dated at the spending year with the category's useful life.
func NewVirtualAsset(c Category, year int, amount decimal.Decimal, source VirtualAssetSource) VirtualAsset {
	return VirtualAsset{
		Asset: Asset{
			Name:           c.Name,
			PurchaseYear:   year,
			PurchaseAmount: amount,
			UsefulLife:     c.UsefulLife,
			Method:         StraightLine,
		},
		Category: c.Name,
		Source:   source,
	}
}
