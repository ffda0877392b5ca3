package domain

import "github.com/shopspring/decimal"

// CostCategory is a bucket in the categorized cost breakdown.
type CostCategory string

const (
	CategoryHotels    CostCategory = "HOTELS"
	CategoryItinerary CostCategory = "ITINERARY"
	CategoryTransport CostCategory = "TRANSPORT"
	CategoryGuides    CostCategory = "GUIDES"
	CategoryMeals     CostCategory = "MEALS"
	CategoryExtras    CostCategory = "EXTRAS"
)

// CostCategories lists every category in presentation order.
var CostCategories = []CostCategory{
	CategoryHotels,
	CategoryItinerary,
	CategoryTransport,
	CategoryGuides,
	CategoryMeals,
	CategoryExtras,
}

// CategoryAmount is one slice of the breakdown view.
type CategoryAmount struct {
	Category CostCategory    `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CostBreakdown is the result of valuing a document: one amount per category
// plus the grand total. The total always includes every category, even ones
// excluded from the presentation view for being exactly zero.
type CostBreakdown struct {
	PerCategory map[CostCategory]decimal.Decimal `json:"perCategory"`
	Total       decimal.Decimal                  `json:"total"`
}
