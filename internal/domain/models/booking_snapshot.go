package models

import "frontdesk/internal/utils"

// SnapshotRoom is a room entry as the booking backend stores it.
type SnapshotRoom struct {
	RoomNumber   Text           `json:"roomNumber"`
	Rate         Amount         `json:"rate"`
	CustomRate   OptionalAmount `json:"customRate"`
	ExtraBed     Flag           `json:"extraBed"`
	ExtraBedFrom OptionalDate   `json:"extraBedFrom"`
}

// BookingSnapshot is the upstream booking record with its embedded orders and advances.
// TotalAmount is a previously persisted figure and is only compared, never used.
type BookingSnapshot struct {
	ID                Text             `json:"id"`
	LegacyID          Text             `json:"_id"`
	GRCNo             Text             `json:"grcNo"`
	GuestName         string           `json:"name"`
	CheckInDate       Date             `json:"checkInDate"`
	CheckOutDate      Date             `json:"checkOutDate"`
	Rooms             []SnapshotRoom   `json:"rooms"`
	DiscountPercent   Amount           `json:"discountPercent"`
	CGSTRate          OptionalAmount   `json:"cgstRate"`
	SGSTRate          OptionalAmount   `json:"sgstRate"`
	ExtraBedCharge    OptionalAmount   `json:"extraBedCharge"`
	NonChargeable     Flag             `json:"nonChargeable"`
	AdvancePayments   []AdvancePayload `json:"advancePayments"`
	RoomServiceOrders []OrderPayload   `json:"roomServiceOrders"`
	RestaurantOrders  []OrderPayload   `json:"restaurantOrders"`
	LaundryOrders     []OrderPayload   `json:"laundryOrders"`
	TotalAmount       OptionalAmount   `json:"totalAmount"`
}

// BookingID prefers id and falls back to _id.
func (b BookingSnapshot) BookingID() string {
	if id := utils.TrimOrEmpty(b.ID.String()); id != "" {
		return id
	}
	return utils.TrimOrEmpty(b.LegacyID.String())
}

// ToInput maps the stored booking into calculator input. Missing tax and extra-bed rates fall back to defaults.
func (b BookingSnapshot) ToInput(defaults BillingSettings) ChargeInput {
	rooms := make([]RoomSelection, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rooms = append(rooms, RoomSelection{
			RoomNumber:        utils.NormalizeSpace(r.RoomNumber.String()),
			BaseRate:          r.Rate.Float(),
			CustomRate:        r.CustomRate.Ptr(),
			HasExtraBed:       bool(r.ExtraBed),
			ExtraBedStartDate: r.ExtraBedFrom.Ptr(),
		})
	}
	return ChargeInput{
		Rooms: rooms,
		Stay:  StayPeriod{CheckIn: b.CheckInDate.Time, CheckOut: b.CheckOutDate.Time},
		Rates: ChargeRates{
			CGSTPercent:         b.CGSTRate.Or(defaults.CGSTPercent),
			SGSTPercent:         b.SGSTRate.Or(defaults.SGSTPercent),
			DiscountPercent:     b.DiscountPercent.Float(),
			ExtraBedDailyCharge: b.ExtraBedCharge.Or(defaults.ExtraBedDailyCharge),
			NonChargeable:       bool(b.NonChargeable),
		},
		RoomService: ToOrders(b.RoomServiceOrders),
		Restaurant:  ToOrders(b.RestaurantOrders),
		Laundry:     ToOrders(b.LaundryOrders),
		Advances:    ToAdvances(b.AdvancePayments),
	}
}
