package services_test

import (
	"testing"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ValuationServiceTestSuite struct {
	suite.Suite
	service *services.ValuationService
}

func (suite *ValuationServiceTestSuite) SetupTest() {
	suite.service = services.NewValuationService(decimal.NewFromInt(450))
}

func (suite *ValuationServiceTestSuite) TestCompute_BootstrapDocument() {
	request := domain.BootstrapRequest()

	breakdown := suite.service.Compute(*request)

	// 6 Double rooms at 180
	suite.True(breakdown.PerCategory[domain.CategoryHotels].Equal(decimal.NewFromInt(1080)))
	// Base costs summed as entered: 0 + 150 + 200
	suite.True(breakdown.PerCategory[domain.CategoryItinerary].Equal(decimal.NewFromInt(350)))
	// Flat rate, independent of the single transport line item
	suite.True(breakdown.PerCategory[domain.CategoryTransport].Equal(decimal.NewFromInt(450)))
	suite.True(breakdown.PerCategory[domain.CategoryGuides].Equal(decimal.NewFromInt(150)))
	// Lunch at 25 per person for 12 pax
	suite.True(breakdown.PerCategory[domain.CategoryMeals].Equal(decimal.NewFromInt(300)))
	suite.True(breakdown.PerCategory[domain.CategoryExtras].IsZero())

	suite.True(breakdown.Total.Equal(decimal.NewFromInt(2330)),
		"expected 2330, got %s", breakdown.Total)
}

func (suite *ValuationServiceTestSuite) TestCompute_EmptyDocument() {
	breakdown := suite.service.Compute(domain.InboundRequest{})

	// Absent collections contribute zero; the transport flat rate still applies.
	suite.True(breakdown.PerCategory[domain.CategoryHotels].IsZero())
	suite.True(breakdown.PerCategory[domain.CategoryItinerary].IsZero())
	suite.True(breakdown.PerCategory[domain.CategoryTransport].Equal(decimal.NewFromInt(450)))
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(450)))
}

func (suite *ValuationServiceTestSuite) TestCompute_AbsentAndEmptyCollectionsAgree() {
	absent := domain.InboundRequest{PaxCount: 4}
	empty := domain.InboundRequest{PaxCount: 4}
	empty.Normalize()

	fromAbsent := suite.service.Compute(absent)
	fromEmpty := suite.service.Compute(empty)

	suite.True(fromAbsent.Total.Equal(fromEmpty.Total))
	for _, category := range domain.CostCategories {
		suite.True(fromAbsent.PerCategory[category].Equal(fromEmpty.PerCategory[category]))
	}
}

func (suite *ValuationServiceTestSuite) TestCompute_CancelledServicesStillSummed() {
	request := domain.InboundRequest{
		PaxCount: 10,
		Guides: []domain.GuideService{
			{Name: "Ahmed", Cost: decimal.NewFromInt(150), Status: domain.ServiceCancelled},
			{Name: "Laila", Cost: decimal.NewFromInt(120), Status: domain.ServiceConfirmed},
		},
		Hotels: []domain.HotelBooking{
			{
				Name:   "W Amman",
				Status: domain.BookingCancelled,
				Rooms: []domain.HotelRoom{
					{Type: "Double", Count: 2, Cost: decimal.NewFromInt(100), Status: domain.BookingCancelled},
				},
			},
		},
	}

	breakdown := suite.service.Compute(request)

	suite.True(breakdown.PerCategory[domain.CategoryGuides].Equal(decimal.NewFromInt(270)))
	suite.True(breakdown.PerCategory[domain.CategoryHotels].Equal(decimal.NewFromInt(200)))
}

func (suite *ValuationServiceTestSuite) TestCompute_PerPersonItineraryNotScaled() {
	request := domain.InboundRequest{
		PaxCount: 30,
		Itinerary: []domain.ItineraryRow{
			{Day: 1, BaseCost: decimal.NewFromInt(100), CostUnit: domain.PerPerson},
			{Day: 2, BaseCost: decimal.NewFromInt(50), CostUnit: domain.PerGroup},
		},
	}

	breakdown := suite.service.Compute(request)

	// Quoted totals rely on base costs being summed as entered.
	suite.True(breakdown.PerCategory[domain.CategoryItinerary].Equal(decimal.NewFromInt(150)))
}

func (suite *ValuationServiceTestSuite) TestCompute_ExtrasBucket() {
	request := domain.InboundRequest{
		PaxCount: 5,
		OptionalExtras: []domain.OptionalExtra{
			{Name: "Turkish Bath", CostPerPerson: decimal.NewFromInt(20)},
		},
		CashExpenses: []domain.CashExpense{
			{Category: "Tips", Amount: decimal.NewFromInt(35)},
			{Category: "Entrance Fees", Amount: decimal.NewFromInt(15)},
		},
	}

	breakdown := suite.service.Compute(request)

	// 5 * 20 per person, plus flat cash amounts of 35 and 15.
	suite.True(breakdown.PerCategory[domain.CategoryExtras].Equal(decimal.NewFromInt(150)))
}

func (suite *ValuationServiceTestSuite) TestCompute_Pure() {
	request := domain.BootstrapRequest()
	snapshot := request.Clone()

	first := suite.service.Compute(*request)
	second := suite.service.Compute(*request)

	suite.Equal(snapshot, request)
	suite.True(first.Total.Equal(second.Total))
}

func (suite *ValuationServiceTestSuite) TestChart_ExcludesZeroCategories() {
	request := domain.InboundRequest{
		PaxCount: 2,
		Guides: []domain.GuideService{
			{Name: "Ahmed", Cost: decimal.NewFromInt(100)},
		},
	}

	breakdown := suite.service.Compute(request)
	chart := suite.service.Chart(breakdown)

	require.Len(suite.T(), chart, 2)
	suite.Equal(domain.CategoryTransport, chart[0].Category)
	suite.Equal(domain.CategoryGuides, chart[1].Category)

	// Exclusion from the view never affects the total.
	suite.True(breakdown.Total.Equal(decimal.NewFromInt(550)))
}

func (suite *ValuationServiceTestSuite) TestChart_PresentationOrder() {
	breakdown := suite.service.Compute(*domain.BootstrapRequest())
	chart := suite.service.Chart(breakdown)

	require.Len(suite.T(), chart, 5)
	want := []domain.CostCategory{
		domain.CategoryHotels,
		domain.CategoryItinerary,
		domain.CategoryTransport,
		domain.CategoryGuides,
		domain.CategoryMeals,
	}
	for i, slice := range chart {
		suite.Equal(want[i], slice.Category)
	}
}

func TestValuationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}

func TestValuationService_ZeroFlatRate(t *testing.T) {
	service := services.NewValuationService(decimal.Zero)

	breakdown := service.Compute(domain.InboundRequest{})

	assert.True(t, breakdown.Total.IsZero())
	assert.Empty(t, service.Chart(breakdown))
}
