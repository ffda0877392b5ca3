package domain_test

import (
	"testing"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundRequest_Normalize_NilCollections(t *testing.T) {
	r := domain.InboundRequest{RequestNumber: "IN-01-0001"}
	r.Normalize()

	assert.NotNil(t, r.Itinerary)
	assert.NotNil(t, r.Hotels)
	assert.NotNil(t, r.Transport)
	assert.NotNil(t, r.Guides)
	assert.NotNil(t, r.Meals)
	assert.NotNil(t, r.ArrivalsDepartures)
	assert.NotNil(t, r.OptionalExtras)
	assert.NotNil(t, r.CashExpenses)

	assert.Empty(t, r.Itinerary)
	assert.Empty(t, r.Hotels)
}

func TestInboundRequest_Normalize_BackfillsIDs(t *testing.T) {
	r := domain.InboundRequest{
		Itinerary: []domain.ItineraryRow{
			{Day: 1, Description: "Arrival"},
			{ID: "keep-me", Day: 2},
		},
		Hotels: []domain.HotelBooking{
			{
				Name: "W Amman",
				Rooms: []domain.HotelRoom{
					{Type: "Double", Count: 2},
				},
			},
		},
		Guides: []domain.GuideService{
			{Name: "Ahmed"},
		},
	}
	r.Normalize()

	assert.NotEmpty(t, r.Itinerary[0].ID)
	assert.Equal(t, "keep-me", r.Itinerary[1].ID)
	assert.NotEmpty(t, r.Hotels[0].ID)
	assert.NotEmpty(t, r.Hotels[0].Rooms[0].ID)
	assert.NotEmpty(t, r.Guides[0].ID)

	// Nil flag lists become empty so consumers can range without nil checks.
	assert.NotNil(t, r.Itinerary[0].Flags)
}

func TestInboundRequest_Normalize_Idempotent(t *testing.T) {
	r := domain.BootstrapRequest()
	before := r.Clone()
	r.Normalize()
	assert.Equal(t, before, r)
}

func TestInboundRequest_Clone_Independence(t *testing.T) {
	original := domain.BootstrapRequest()
	cp := original.Clone()

	require.Equal(t, original, cp)

	cp.PaxCount = 99
	cp.Itinerary[0].Description = "changed"
	cp.Itinerary[1].Flags[0] = domain.FlagDrive
	cp.Hotels[0].Rooms[0].Count = 1
	cp.Guides[0].Cost = decimal.NewFromInt(999)

	assert.Equal(t, 12, original.PaxCount)
	assert.Equal(t, "Arrival at QAIA, Transfer to Amman", original.Itinerary[0].Description)
	assert.Equal(t, domain.FlagGuide, original.Itinerary[1].Flags[0])
	assert.Equal(t, 6, original.Hotels[0].Rooms[0].Count)
	assert.True(t, original.Guides[0].Cost.Equal(decimal.NewFromInt(150)))
}

func TestInboundRequest_DayCount(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		want      int
	}{
		{name: "inclusive range", startDate: "2025-12-26", endDate: "2025-12-30", want: 5},
		{name: "single day", startDate: "2025-12-26", endDate: "2025-12-26", want: 1},
		{name: "end before start", startDate: "2025-12-30", endDate: "2025-12-26", want: 0},
		{name: "missing start", startDate: "", endDate: "2025-12-26", want: 0},
		{name: "unparseable end", startDate: "2025-12-26", endDate: "not-a-date", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.InboundRequest{StartDate: tt.startDate, EndDate: tt.endDate}
			assert.Equal(t, tt.want, r.DayCount())
		})
	}
}

func TestNewLineItemID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := domain.NewLineItemID()
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestBootstrapRequest(t *testing.T) {
	r := domain.BootstrapRequest()

	assert.Equal(t, "IN-12-0042", r.RequestNumber)
	assert.Equal(t, domain.StageRequest, r.Status)
	assert.Equal(t, 12, r.PaxCount)
	assert.Len(t, r.Itinerary, 3)
	assert.Len(t, r.Hotels, 1)
	assert.Len(t, r.Hotels[0].Rooms, 1)
	assert.Len(t, r.Transport, 1)
	assert.Len(t, r.Guides, 1)
	assert.Len(t, r.Meals, 1)
	assert.Len(t, r.ArrivalsDepartures, 1)
	assert.Equal(t, 5, r.DayCount())

	// Seed documents are fully normalized: every line item carries an ID.
	for _, row := range r.Itinerary {
		assert.NotEmpty(t, row.ID)
	}
	assert.NotEmpty(t, r.Hotels[0].Rooms[0].ID)
}
