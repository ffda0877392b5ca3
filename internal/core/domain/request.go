package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkflowStage is a document lifecycle label. The stages form an ordered
// progression but the core never enforces transitions; presentation happens
// above this layer.
type WorkflowStage string

const (
	StageRequest           WorkflowStage = "REQUEST"
	StageQuoted            WorkflowStage = "QUOTED"
	StageSupplierConfirmed WorkflowStage = "SUPPLIER_CONFIRMED"
	StageConfirmed         WorkflowStage = "CONFIRMED"
	StageInvoice           WorkflowStage = "INVOICE"
	StageProcessing        WorkflowStage = "PROCESSING"
	StageCompleted         WorkflowStage = "COMPLETED"
)

// CustomerType classifies the booking party.
type CustomerType string

const (
	CustomerAgency    CustomerType = "AGENCY"
	CustomerGroup     CustomerType = "GROUP"
	CustomerCompany   CustomerType = "COMPANY"
	CustomerCorporate CustomerType = "CORPORATE"
)

// PricingMode indicates how the request is quoted. Informational only; it
// does not alter valuation.
type PricingMode string

const (
	PricingItemized PricingMode = "ITEMIZED"
	PricingLumpsum  PricingMode = "LUMPSUM"
)

// CostUnit denominates an itinerary day's base cost.
type CostUnit string

const (
	PerPerson CostUnit = "PER_PERSON"
	PerGroup  CostUnit = "PER_GROUP"
)

// ServiceFlag tags an itinerary day with the services it depends on.
// Informational linkage only, not enforced referential integrity.
type ServiceFlag string

const (
	FlagHotel     ServiceFlag = "HOTEL"
	FlagGuide     ServiceFlag = "GUIDE"
	FlagTransport ServiceFlag = "TRANSPORT"
	FlagMeal      ServiceFlag = "MEAL"
	FlagAirport   ServiceFlag = "AIRPORT"
	FlagDrive     ServiceFlag = "DRIVE"
)

// BookingStatus is the lifecycle of a hotel booking or room allocation.
type BookingStatus string

const (
	BookingRequest   BookingStatus = "REQUEST"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ServiceStatus is the lifecycle of transport, guide and meal services.
// Status never gates inclusion in valuation; cancelled items are still
// summed.
type ServiceStatus string

const (
	ServiceRequested ServiceStatus = "REQUESTED"
	ServiceConfirmed ServiceStatus = "CONFIRMED"
	ServiceCancelled ServiceStatus = "CANCELLED"
)

// ItineraryRow is a single day of the trip programme.
type ItineraryRow struct {
	ID          string          `json:"id"`
	Day         int             `json:"day"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
	Restaurant  string          `json:"restaurant"`
	Flags       []ServiceFlag   `json:"flags"`
	BaseCost    decimal.Decimal `json:"baseCost"`
	CostUnit    CostUnit        `json:"costUnit"`
	Comments    string          `json:"comments"`
}

// HotelRoom is a room allocation within a hotel booking.
type HotelRoom struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"` // Single, Double, Triple, Other
	Count    int             `json:"count"`
	Cost     decimal.Decimal `json:"cost"` // unit rate
	Supplier string          `json:"supplier"`
	Status   BookingStatus   `json:"status"`
}

// HotelBooking is a lodging line item owning a nested room allocation list.
type HotelBooking struct {
	ID       string        `json:"id"`
	Name     string        `json:"hotelName"`
	Location string        `json:"location"`
	Category string        `json:"category"`
	MealPlan string        `json:"mealPlan"` // BB, HB, FB, AI, RO
	CheckIn  string        `json:"checkIn"`
	CheckOut string        `json:"checkOut"`
	Rooms    []HotelRoom   `json:"rooms"`
	Status   BookingStatus `json:"status"`
}

// TransportService is a single vehicle movement.
type TransportService struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"`
	Pax             int           `json:"pax"`
	VehicleType     string        `json:"vehicleType"`
	Supplier        string        `json:"supplier"`
	DriverName      string        `json:"driverName"`
	DriverPhone     string        `json:"driverPhone"`
	PickupLocation  string        `json:"pickupLocation"`
	PickupTime      string        `json:"pickupTime"`
	DropoffLocation string        `json:"dropoffLocation"`
	Notes           string        `json:"notes"`
	Status          ServiceStatus `json:"status"`
}

// GuideService is a guiding engagement for one day.
type GuideService struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Language    string          `json:"language"`
	NationalID  string          `json:"nationalId"`
	ServiceType string          `json:"serviceType"` // Meet & Greet, Tour Guide, Driver Guide
	MeetingTime string          `json:"meetingTime"`
	Cost        decimal.Decimal `json:"cost"`
	Status      ServiceStatus   `json:"status"`
}

// MealService is a restaurant booking priced per person.
type MealService struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	MealType      string          `json:"mealType"` // Breakfast, Lunch, Dinner
	MealTime      string          `json:"mealTime"`
	Restaurant    string          `json:"restaurant"`
	CostPerPerson decimal.Decimal `json:"costPerPerson"`
	Status        ServiceStatus   `json:"status"`
}

// ArrivalDepartureBatch groups travellers on the same arrival or departure
// movement. Carries logistics only; valuation-inert.
type ArrivalDepartureBatch struct {
	ID                 string `json:"id"`
	Type               string `json:"type"` // ARRIVAL or DEPARTURE
	BatchName          string `json:"batchName"`
	PaxCount           int    `json:"paxCount"`
	Date               string `json:"date"`
	Location           string `json:"location"`
	Time               string `json:"time"`
	FlightNumber       string `json:"flightNumber"`
	DriverName         string `json:"driverName"`
	MeetAndAssist      bool   `json:"meetAndAssist"`
	RepresentativeName string `json:"representativeName"`
	VisaStatus         string `json:"visaStatus,omitempty"`   // VISA_FREE, RESTRICTED, INCLUDED, NOT_INCLUDED
	DepartureTax       string `json:"departureTax,omitempty"` // INCLUDED, NOT_INCLUDED
}

// OptionalExtra is an add-on activity priced per person.
type OptionalExtra struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	Supplier      string          `json:"supplier"`
	CostPerPerson decimal.Decimal `json:"costPerPerson"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// CashExpense is an out-of-pocket amount handed to drivers or guides.
type CashExpense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"` // Tips, Entrance Fees, Parking, Misc
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PerPerson   bool            `json:"perPerson"`
	DriverName  string          `json:"driverName"`
}

// InboundRequest is the root travel-booking aggregate: header fields plus
// eight independently editable line-item collections. The document is created
// once per editing session and replaced wholesale on every mutation; field
// level editing happens above this layer.
type InboundRequest struct {
	RequestNumber    string        `json:"requestNumber"`
	DocumentSequence string        `json:"documentSequence"`
	Status           WorkflowStage `json:"status"`
	TripMonth        string        `json:"tripMonth"`
	StartDate        string        `json:"startDate"` // YYYY-MM-DD
	EndDate          string        `json:"endDate"`   // YYYY-MM-DD
	CustomerType     CustomerType  `json:"customerType"`
	ContactName      string        `json:"contactName"`
	AgentReference   string        `json:"agentReference"`
	PaxCount         int           `json:"paxCount"`
	Nationality      string        `json:"nationality"`
	PricingMode      PricingMode   `json:"pricingMode"`
	SpecialNotes     string        `json:"specialNotes"`

	Itinerary          []ItineraryRow          `json:"itinerary"`
	Hotels             []HotelBooking          `json:"hotels"`
	Transport          []TransportService      `json:"transport"`
	Guides             []GuideService          `json:"guides"`
	Meals              []MealService           `json:"meals"`
	ArrivalsDepartures []ArrivalDepartureBatch `json:"arrivalsDepartures"`
	OptionalExtras     []OptionalExtra         `json:"optionalExtras"`
	CashExpenses       []CashExpense           `json:"cashExpenses"`
}

// Normalize makes the document total for every consumer: nil collections
// become empty slices (absence and emptiness both mean "contributes zero")
// and line items missing an identifier get one allocated. External payloads
// routinely omit both.
func (r *InboundRequest) Normalize() {
	if r.Itinerary == nil {
		r.Itinerary = []ItineraryRow{}
	}
	if r.Hotels == nil {
		r.Hotels = []HotelBooking{}
	}
	if r.Transport == nil {
		r.Transport = []TransportService{}
	}
	if r.Guides == nil {
		r.Guides = []GuideService{}
	}
	if r.Meals == nil {
		r.Meals = []MealService{}
	}
	if r.ArrivalsDepartures == nil {
		r.ArrivalsDepartures = []ArrivalDepartureBatch{}
	}
	if r.OptionalExtras == nil {
		r.OptionalExtras = []OptionalExtra{}
	}
	if r.CashExpenses == nil {
		r.CashExpenses = []CashExpense{}
	}

	for i := range r.Itinerary {
		if r.Itinerary[i].ID == "" {
			r.Itinerary[i].ID = NewLineItemID()
		}
		if r.Itinerary[i].Flags == nil {
			r.Itinerary[i].Flags = []ServiceFlag{}
		}
	}
	for i := range r.Hotels {
		if r.Hotels[i].ID == "" {
			r.Hotels[i].ID = NewLineItemID()
		}
		if r.Hotels[i].Rooms == nil {
			r.Hotels[i].Rooms = []HotelRoom{}
		}
		for j := range r.Hotels[i].Rooms {
			if r.Hotels[i].Rooms[j].ID == "" {
				r.Hotels[i].Rooms[j].ID = NewLineItemID()
			}
		}
	}
	for i := range r.Transport {
		if r.Transport[i].ID == "" {
			r.Transport[i].ID = NewLineItemID()
		}
	}
	for i := range r.Guides {
		if r.Guides[i].ID == "" {
			r.Guides[i].ID = NewLineItemID()
		}
	}
	for i := range r.Meals {
		if r.Meals[i].ID == "" {
			r.Meals[i].ID = NewLineItemID()
		}
	}
	for i := range r.ArrivalsDepartures {
		if r.ArrivalsDepartures[i].ID == "" {
			r.ArrivalsDepartures[i].ID = NewLineItemID()
		}
	}
	for i := range r.OptionalExtras {
		if r.OptionalExtras[i].ID == "" {
			r.OptionalExtras[i].ID = NewLineItemID()
		}
	}
	for i := range r.CashExpenses {
		if r.CashExpenses[i].ID == "" {
			r.CashExpenses[i].ID = NewLineItemID()
		}
	}
}

// Clone returns a deep copy. The synchronization controller owns the working
// document exclusively and hands copies to readers and to the gateway.
func (r *InboundRequest) Clone() *InboundRequest {
	cp := *r

	cp.Itinerary = make([]ItineraryRow, len(r.Itinerary))
	copy(cp.Itinerary, r.Itinerary)
	for i := range cp.Itinerary {
		cp.Itinerary[i].Flags = make([]ServiceFlag, len(r.Itinerary[i].Flags))
		copy(cp.Itinerary[i].Flags, r.Itinerary[i].Flags)
	}

	cp.Hotels = make([]HotelBooking, len(r.Hotels))
	copy(cp.Hotels, r.Hotels)
	for i := range cp.Hotels {
		cp.Hotels[i].Rooms = make([]HotelRoom, len(r.Hotels[i].Rooms))
		copy(cp.Hotels[i].Rooms, r.Hotels[i].Rooms)
	}

	cp.Transport = make([]TransportService, len(r.Transport))
	copy(cp.Transport, r.Transport)
	cp.Guides = make([]GuideService, len(r.Guides))
	copy(cp.Guides, r.Guides)
	cp.Meals = make([]MealService, len(r.Meals))
	copy(cp.Meals, r.Meals)
	cp.ArrivalsDepartures = make([]ArrivalDepartureBatch, len(r.ArrivalsDepartures))
	copy(cp.ArrivalsDepartures, r.ArrivalsDepartures)
	cp.OptionalExtras = make([]OptionalExtra, len(r.OptionalExtras))
	copy(cp.OptionalExtras, r.OptionalExtras)
	cp.CashExpenses = make([]CashExpense, len(r.CashExpenses))
	copy(cp.CashExpenses, r.CashExpenses)

	return &cp
}

// DayCount returns the inclusive number of trip days, or zero when either
// date is missing or unparseable. EndDate >= StartDate is assumed, not
// enforced.
func (r *InboundRequest) DayCount() int {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}
