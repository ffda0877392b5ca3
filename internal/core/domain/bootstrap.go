package domain

import "github.com/shopspring/decimal"

// BootstrapRequest returns the seed document adopted when the store holds no
// persisted copy yet (first run of a fresh installation). Mirrors the sample
// inbound file the operations team starts new agents on.
func BootstrapRequest() *InboundRequest {
	r := &InboundRequest{
		RequestNumber:    "IN-12-0042",
		DocumentSequence: "INB-12-0042",
		Status:           StageRequest,
		TripMonth:        "2025-12",
		StartDate:        "2025-12-26",
		EndDate:          "2025-12-30",
		CustomerType:     CustomerAgency,
		ContactName:      "John Doe",
		AgentReference:   "AGT-REF-9988",
		PaxCount:         12,
		Nationality:      "Germany",
		PricingMode:      PricingItemized,
		SpecialNotes:     "VIP Group, Vegetarian meals required.",
		Itinerary: []ItineraryRow{
			{
				ID:          NewLineItemID(),
				Day:         1,
				Date:        "2025-12-26",
				Description: "Arrival at QAIA, Transfer to Amman",
				Flags:       []ServiceFlag{FlagAirport, FlagTransport, FlagHotel},
				BaseCost:    decimal.Zero,
				CostUnit:    PerGroup,
			},
			{
				ID:          NewLineItemID(),
				Day:         2,
				Date:        "2025-12-27",
				Description: "Amman City Tour & Jerash",
				Restaurant:  "Um Khalil",
				Flags:       []ServiceFlag{FlagGuide, FlagTransport, FlagMeal, FlagHotel},
				BaseCost:    decimal.NewFromInt(150),
				CostUnit:    PerPerson,
			},
			{
				ID:          NewLineItemID(),
				Day:         3,
				Date:        "2025-12-28",
				Description: "Petra Full Day",
				Restaurant:  "Basin Restaurant",
				Flags:       []ServiceFlag{FlagGuide, FlagTransport, FlagMeal, FlagHotel},
				BaseCost:    decimal.NewFromInt(200),
				CostUnit:    PerPerson,
			},
		},
		Hotels: []HotelBooking{
			{
				ID:       NewLineItemID(),
				Name:     "W Amman",
				Location: "Amman",
				Category: "5 Star",
				MealPlan: "BB",
				CheckIn:  "2025-12-26",
				CheckOut: "2025-12-28",
				Status:   BookingRequest,
				Rooms: []HotelRoom{
					{
						ID:       NewLineItemID(),
						Type:     "Double",
						Count:    6,
						Cost:     decimal.NewFromInt(180),
						Supplier: "W Amman",
						Status:   BookingRequest,
					},
				},
			},
		},
		Transport: []TransportService{
			{
				ID:              NewLineItemID(),
				Date:            "2025-12-26",
				Pax:             12,
				VehicleType:     "Bus (50 PAX)",
				Supplier:        "Jett Transport",
				DriverName:      "Mahmoud",
				DriverPhone:     "+962 79 000 0000",
				PickupLocation:  "Airport",
				PickupTime:      "14:00",
				DropoffLocation: "W Amman",
				Notes:           "Meet with sign board",
				Status:          ServiceConfirmed,
			},
		},
		Guides: []GuideService{
			{
				ID:          NewLineItemID(),
				Date:        "2025-12-27",
				Name:        "Ahmed Khalil",
				Phone:       "+962 79 111 2222",
				Language:    "German",
				NationalID:  "9981010101",
				ServiceType: "Tour Guide",
				MeetingTime: "08:30",
				Cost:        decimal.NewFromInt(150),
				Status:      ServiceConfirmed,
			},
		},
		Meals: []MealService{
			{
				ID:            NewLineItemID(),
				Date:          "2025-12-27",
				MealType:      "Lunch",
				MealTime:      "13:00",
				Restaurant:    "Artemis Jerash",
				CostPerPerson: decimal.NewFromInt(25),
				Status:        ServiceRequested,
			},
		},
		ArrivalsDepartures: []ArrivalDepartureBatch{
			{
				ID:                 NewLineItemID(),
				Type:               "ARRIVAL",
				BatchName:          "Group A - Main",
				PaxCount:           10,
				Date:               "2025-12-26",
				Location:           "Queen Alia Airport",
				Time:               "14:30",
				FlightNumber:       "RJ 123",
				DriverName:         "Mahmoud",
				MeetAndAssist:      true,
				RepresentativeName: "Sami",
				VisaStatus:         "INCLUDED",
			},
		},
	}
	r.Normalize()
	return r
}
