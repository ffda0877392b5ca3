package services

import (
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValuationService derives the categorized cost breakdown for a document.
// Stateless apart from the configured transport flat rate; Compute is pure.
type ValuationService struct {
	transportFlatRate decimal.Decimal
}

// NewValuationService creates a valuation engine. transportFlatRate is the
// placeholder amount reported for the transport category; per-movement
// costing is not implemented and transport line items are deliberately not
// summed (changing that would change every historical quote total).
func NewValuationService(transportFlatRate decimal.Decimal) *ValuationService {
	return &ValuationService{transportFlatRate: transportFlatRate}
}

// Compute values the document category by category. Total and pure: absent
// collections contribute zero, lifecycle status never gates inclusion
// (cancelled services are still summed), and well-formed input cannot produce
// negative partial sums.
func (s *ValuationService) Compute(request domain.InboundRequest) domain.CostBreakdown {
	pax := decimal.NewFromInt(int64(request.PaxCount))

	hotels := decimal.Zero
	for _, booking := range request.Hotels {
		for _, room := range booking.Rooms {
			hotels = hotels.Add(room.Cost.Mul(decimal.NewFromInt(int64(room.Count))))
		}
	}

	// Base costs are summed as entered. CostUnit is stored but PER_PERSON
	// days are NOT multiplied by pax; quoted totals depend on this.
	itinerary := decimal.Zero
	for _, row := range request.Itinerary {
		itinerary = itinerary.Add(row.BaseCost)
	}

	guides := decimal.Zero
	for _, guide := range request.Guides {
		guides = guides.Add(guide.Cost)
	}

	meals := decimal.Zero
	for _, meal := range request.Meals {
		meals = meals.Add(meal.CostPerPerson.Mul(pax))
	}

	// Optional extras and cash expenses merge into a single bucket.
	extras := decimal.Zero
	for _, extra := range request.OptionalExtras {
		extras = extras.Add(extra.CostPerPerson.Mul(pax))
	}
	for _, expense := range request.CashExpenses {
		extras = extras.Add(expense.Amount)
	}

	perCategory := map[domain.CostCategory]decimal.Decimal{
		domain.CategoryHotels:    hotels,
		domain.CategoryItinerary: itinerary,
		domain.CategoryTransport: s.transportFlatRate,
		domain.CategoryGuides:    guides,
		domain.CategoryMeals:     meals,
		domain.CategoryExtras:    extras,
	}

	total := decimal.Zero
	for _, amount := range perCategory {
		total = total.Add(amount)
	}

	return domain.CostBreakdown{PerCategory: perCategory, Total: total}
}

// Chart flattens a breakdown into ordered presentation slices, dropping
// categories whose amount is exactly zero. The grand total is unaffected.
func (s *ValuationService) Chart(breakdown domain.CostBreakdown) []domain.CategoryAmount {
	slices := make([]domain.CategoryAmount, 0, len(domain.CostCategories))
	for _, category := range domain.CostCategories {
		amount, ok := breakdown.PerCategory[category]
		if !ok || amount.IsZero() {
			continue
		}
		slices = append(slices, domain.CategoryAmount{Category: category, Amount: amount})
	}
	return slices
}
