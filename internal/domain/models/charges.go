package models

import "time"

// AdvanceMode is the tender used for an advance payment.
type AdvanceMode string

const (
	AdvanceModeCash         AdvanceMode = "Cash"
	AdvanceModeCard         AdvanceMode = "Card"
	AdvanceModeUPI          AdvanceMode = "UPI"
	AdvanceModeBankTransfer AdvanceMode = "BankTransfer"
	AdvanceModeOnline       AdvanceMode = "Online"
)

// OrderStatus of an ancillary order. Anything other than cancelled counts as active.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// RoomSelection is one room on the booking with its nightly rate.
type RoomSelection struct {
	RoomNumber        string     `json:"roomNumber"`
	BaseRate          float64    `json:"baseRate"`
	CustomRate        *float64   `json:"customRate,omitempty"`
	HasExtraBed       bool       `json:"hasExtraBed"`
	ExtraBedStartDate *time.Time `json:"extraBedStartDate,omitempty"`

	// ExtraBedFromToday starts the extra bed on ChargeInput.Today when no start date is set.
	ExtraBedFromToday bool `json:"extraBedFromToday,omitempty"`
}

// EffectiveRate is the custom rate when one is set, otherwise the base rate.
func (r RoomSelection) EffectiveRate() float64 {
	if r.CustomRate != nil {
		return *r.CustomRate
	}
	return r.BaseRate
}

type StayPeriod struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type LineItem struct {
	Name          string  `json:"name,omitempty"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	NonChargeable bool    `json:"nonChargeable"`
}

// AncillaryOrder has the same shape for room service, restaurant and laundry.
type AncillaryOrder struct {
	ID                 string      `json:"id,omitempty"`
	LineItems          []LineItem  `json:"lineItems"`
	OrderNonChargeable bool        `json:"orderNonChargeable"`
	Status             OrderStatus `json:"status"`
}

func (o AncillaryOrder) Cancelled() bool {
	return o.Status == OrderStatusCancelled
}

type AdvancePayment struct {
	Amount    float64     `json:"amount"`
	Mode      AdvanceMode `json:"mode,omitempty"`
	Date      *time.Time  `json:"date,omitempty"`
	Reference string      `json:"reference,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

// ChargeRates carries tax, discount and extra-bed pricing for one booking.
type ChargeRates struct {
	CGSTPercent         float64 `json:"cgstPercent" validate:"gte=0,lte=50"`
	SGSTPercent         float64 `json:"sgstPercent" validate:"gte=0,lte=50"`
	DiscountPercent     float64 `json:"discountPercent" validate:"gte=0,lte=100"`
	ExtraBedDailyCharge float64 `json:"extraBedDailyCharge" validate:"gte=0"`
	NonChargeable       bool    `json:"nonChargeable"`
}

// ChargeInput is everything the calculator reads. Today is the caller's notion of the current date.
type ChargeInput struct {
	Rooms       []RoomSelection  `json:"rooms"`
	Stay        StayPeriod       `json:"stay"`
	Rates       ChargeRates      `json:"rates"`
	RoomService []AncillaryOrder `json:"roomServiceOrders"`
	Restaurant  []AncillaryOrder `json:"restaurantOrders"`
	Laundry     []AncillaryOrder `json:"laundryOrders"`
	Advances    []AdvancePayment `json:"advances"`
	Today       time.Time        `json:"today"`
}

// ChargeBreakdown is fully derived from a ChargeInput and never stored.
type ChargeBreakdown struct {
	RoomNights             int     `json:"roomNights"`
	RoomSubtotal           float64 `json:"roomSubtotal"`
	ExtraBedSubtotal       float64 `json:"extraBedSubtotal"`
	DiscountAmount         float64 `json:"discountAmount"`
	DiscountedRoomSubtotal float64 `json:"discountedRoomSubtotal"`
	RoomServiceTotal       float64 `json:"roomServiceTotal"`
	RestaurantTotal        float64 `json:"restaurantTotal"`
	LaundryTotal           float64 `json:"laundryTotal"`
	TaxableAmount          float64 `json:"taxableAmount"`
	CGSTAmount             float64 `json:"cgstAmount"`
	SGSTAmount             float64 `json:"sgstAmount"`
	RoundOff               float64 `json:"roundOff"`
	GrandTotal             float64 `json:"grandTotal"`
	TotalAdvance           float64 `json:"totalAdvance"`
	BalanceDue             float64 `json:"balanceDue"`
	Rounded                bool    `json:"rounded"`
	Unavailable            bool    `json:"unavailable"`
}
