package models

import (
	"strings"

	"frontdesk/internal/utils"
)

type RoomPayload struct {
	RoomNumber        Text           `json:"roomNumber"`
	BaseRate          Amount         `json:"baseRate"`
	CustomRate        OptionalAmount `json:"customRate"`
	HasExtraBed       Flag           `json:"hasExtraBed"`
	ExtraBedStartDate OptionalDate   `json:"extraBedStartDate"`
	ExtraBedFromToday Flag           `json:"extraBedFromToday"`
}

type LineItemPayload struct {
	Name          string `json:"name"`
	Quantity      Amount `json:"quantity"`
	UnitPrice     Amount `json:"unitPrice"`
	NonChargeable Flag   `json:"nonChargeable"`
}

type OrderPayload struct {
	ID                 Text              `json:"id"`
	LineItems          []LineItemPayload `json:"lineItems"`
	OrderNonChargeable Flag              `json:"orderNonChargeable"`
	Status             string            `json:"status"`
}

type AdvancePayload struct {
	Amount    Amount       `json:"amount"`
	Mode      string       `json:"mode"`
	Date      OptionalDate `json:"date"`
	Reference string       `json:"reference"`
	Notes     string       `json:"notes"`
}

// RatesPayload leaves tax and extra-bed fields optional so stored defaults can fill them.
type RatesPayload struct {
	CGSTPercent         OptionalAmount `json:"cgstPercent"`
	SGSTPercent         OptionalAmount `json:"sgstPercent"`
	DiscountPercent     Amount         `json:"discountPercent"`
	ExtraBedDailyCharge OptionalAmount `json:"extraBedDailyCharge"`
	NonChargeable       Flag           `json:"nonChargeable"`
}

type StayPayload struct {
	CheckIn  Date `json:"checkIn"`
	CheckOut Date `json:"checkOut"`
}

// PreviewRequest is the body of POST /api/pricing/preview.
type PreviewRequest struct {
	Rooms             []RoomPayload    `json:"rooms"`
	CheckIn           Date             `json:"checkIn"`
	CheckOut          Date             `json:"checkOut"`
	Stay              *StayPayload     `json:"stay"`
	Rates             RatesPayload     `json:"rates"`
	RoomServiceOrders []OrderPayload   `json:"roomServiceOrders"`
	RestaurantOrders  []OrderPayload   `json:"restaurantOrders"`
	LaundryOrders     []OrderPayload   `json:"laundryOrders"`
	Advances          []AdvancePayload `json:"advances"`
	Today             OptionalDate     `json:"today"`
	Rounding          Flag             `json:"rounding"`
	Strict            Flag             `json:"strict"`
}

// ToInput resolves the request into calculator input, taking absent rates from defaults.
func (r PreviewRequest) ToInput(defaults BillingSettings) ChargeInput {
	stay := StayPeriod{CheckIn: r.CheckIn.Time, CheckOut: r.CheckOut.Time}
	if r.Stay != nil {
		if stay.CheckIn.IsZero() {
			stay.CheckIn = r.Stay.CheckIn.Time
		}
		if stay.CheckOut.IsZero() {
			stay.CheckOut = r.Stay.CheckOut.Time
		}
	}

	rooms := make([]RoomSelection, 0, len(r.Rooms))
	for _, p := range r.Rooms {
		rooms = append(rooms, p.toRoom())
	}

	return ChargeInput{
		Rooms: rooms,
		Stay:  stay,
		Rates: ChargeRates{
			CGSTPercent:         r.Rates.CGSTPercent.Or(defaults.CGSTPercent),
			SGSTPercent:         r.Rates.SGSTPercent.Or(defaults.SGSTPercent),
			DiscountPercent:     r.Rates.DiscountPercent.Float(),
			ExtraBedDailyCharge: r.Rates.ExtraBedDailyCharge.Or(defaults.ExtraBedDailyCharge),
			NonChargeable:       bool(r.Rates.NonChargeable),
		},
		RoomService: ToOrders(r.RoomServiceOrders),
		Restaurant:  ToOrders(r.RestaurantOrders),
		Laundry:     ToOrders(r.LaundryOrders),
		Advances:    ToAdvances(r.Advances),
		Today:       r.Today.Time,
	}
}

func (p RoomPayload) toRoom() RoomSelection {
	return RoomSelection{
		RoomNumber:        utils.NormalizeSpace(p.RoomNumber.String()),
		BaseRate:          p.BaseRate.Float(),
		CustomRate:        p.CustomRate.Ptr(),
		HasExtraBed:       bool(p.HasExtraBed),
		ExtraBedStartDate: p.ExtraBedStartDate.Ptr(),
		ExtraBedFromToday: bool(p.ExtraBedFromToday),
	}
}

// ToOrders maps order payloads, treating "cancelled" and "canceled" alike.
func ToOrders(in []OrderPayload) []AncillaryOrder {
	out := make([]AncillaryOrder, 0, len(in))
	for _, o := range in {
		items := make([]LineItem, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, LineItem{
				Name:          utils.NormalizeSpace(li.Name),
				Quantity:      li.Quantity.Float(),
				UnitPrice:     li.UnitPrice.Float(),
				NonChargeable: bool(li.NonChargeable),
			})
		}
		out = append(out, AncillaryOrder{
			ID:                 o.ID.String(),
			LineItems:          items,
			OrderNonChargeable: bool(o.OrderNonChargeable),
			Status:             normalizeStatus(o.Status),
		})
	}
	return out
}

func ToAdvances(in []AdvancePayload) []AdvancePayment {
	out := make([]AdvancePayment, 0, len(in))
	for _, a := range in {
		out = append(out, AdvancePayment{
			Amount:    a.Amount.Float(),
			Mode:      NormalizeAdvanceMode(a.Mode),
			Date:      a.Date.Ptr(),
			Reference: utils.TrimOrEmpty(a.Reference),
			Notes:     utils.TrimOrEmpty(a.Notes),
		})
	}
	return out
}

func normalizeStatus(s string) OrderStatus {
	switch strings.ToLower(utils.TrimOrEmpty(s)) {
	case "cancelled", "canceled":
		return OrderStatusCancelled
	default:
		return OrderStatusActive
	}
}

// NormalizeAdvanceMode maps free-form tender names onto the known modes. Unknown values pass through.
func NormalizeAdvanceMode(s string) AdvanceMode {
	key := strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s))
	switch key {
	case "cash":
		return AdvanceModeCash
	case "card", "creditcard", "debitcard":
		return AdvanceModeCard
	case "upi":
		return AdvanceModeUPI
	case "banktransfer", "neft", "rtgs", "imps":
		return AdvanceModeBankTransfer
	case "online":
		return AdvanceModeOnline
	case "":
		return ""
	default:
		return AdvanceMode(utils.TrimOrEmpty(s))
	}
}
