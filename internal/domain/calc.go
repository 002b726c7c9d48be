package domain

import (
	"math"
	"time"

	"frontdesk/internal/domain/models"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var hundred = decimal.NewFromInt(100)

// CalcOptions selects how a breakdown is produced.
// Rounding is off for the live edit form and on for invoices.
// Strict rejects out-of-range tax and discount rates instead of computing with them.
type CalcOptions struct {
	Rounding bool
	Strict   bool
}

// ComputeBreakdown derives every charge of a booking from its inputs.
// It never reads the clock; in.Today is the only notion of "now".
// The only error is a ValidationError when opts.Strict is set.
func ComputeBreakdown(in models.ChargeInput, opts CalcOptions) (models.ChargeBreakdown, error) {
	if opts.Strict {
		if err := ValidateStruct(in.Rates); err != nil {
			return models.ChargeBreakdown{}, err
		}
	}

	nights := Nights(in.Stay.CheckIn, in.Stay.CheckOut)
	advance := sumAdvances(in.Advances)

	if in.Rates.NonChargeable {
		out := models.ChargeBreakdown{RoomNights: nights, Rounded: opts.Rounding}
		out.TotalAdvance = advance.InexactFloat64()
		out.BalanceDue = balance(decimal.Zero, advance).InexactFloat64()
		return out, nil
	}

	roomSubtotal, extraBed := decimal.Zero, decimal.Zero
	if nights > 0 {
		rateSum := decimal.Zero
		for _, r := range in.Rooms {
			rateSum = rateSum.Add(amount(r.EffectiveRate()))
		}
		roomSubtotal = rateSum.Mul(decimal.NewFromInt(int64(nights)))

		perDay := amount(in.Rates.ExtraBedDailyCharge)
		for _, r := range in.Rooms {
			days := ExtraBedDays(r, in.Stay, in.Today)
			extraBed = extraBed.Add(perDay.Mul(decimal.NewFromInt(int64(days))))
		}
	}

	roomLevel := roomSubtotal.Add(extraBed)
	discount := percentOf(roomLevel, in.Rates.DiscountPercent)
	discounted := roomLevel.Sub(discount)

	roomService := sumOrders(in.RoomService)
	restaurant := sumOrders(in.Restaurant)
	laundry := sumOrders(in.Laundry)

	taxable := discounted.Add(roomService).Add(restaurant).Add(laundry)
	cgst := percentOf(taxable, in.Rates.CGSTPercent)
	sgst := percentOf(taxable, in.Rates.SGSTPercent)
	grand := taxable.Add(cgst).Add(sgst)

	roundOff := decimal.Zero
	if opts.Rounding {
		rounded := grand.Round(0)
		roundOff = rounded.Sub(grand)
		grand = rounded
	}

	return models.ChargeBreakdown{
		RoomNights:             nights,
		RoomSubtotal:           roomSubtotal.InexactFloat64(),
		ExtraBedSubtotal:       extraBed.InexactFloat64(),
		DiscountAmount:         discount.InexactFloat64(),
		DiscountedRoomSubtotal: discounted.InexactFloat64(),
		RoomServiceTotal:       roomService.InexactFloat64(),
		RestaurantTotal:        restaurant.InexactFloat64(),
		LaundryTotal:           laundry.InexactFloat64(),
		TaxableAmount:          taxable.InexactFloat64(),
		CGSTAmount:             cgst.InexactFloat64(),
		SGSTAmount:             sgst.InexactFloat64(),
		RoundOff:               roundOff.InexactFloat64(),
		GrandTotal:             grand.InexactFloat64(),
		TotalAdvance:           advance.InexactFloat64(),
		BalanceDue:             balance(grand, advance).InexactFloat64(),
		Rounded:                opts.Rounding,
	}, nil
}

// UnavailableBreakdown is the all-zero result shown when a breakdown could not be produced.
func UnavailableBreakdown() models.ChargeBreakdown {
	return models.ChargeBreakdown{Unavailable: true}
}

// Finite reports whether every monetary field is a real number.
func Finite(b models.ChargeBreakdown) bool {
	for _, v := range []float64{
		b.RoomSubtotal, b.ExtraBedSubtotal, b.DiscountAmount, b.DiscountedRoomSubtotal,
		b.RoomServiceTotal, b.RestaurantTotal, b.LaundryTotal, b.TaxableAmount,
		b.CGSTAmount, b.SGSTAmount, b.RoundOff, b.GrandTotal, b.TotalAdvance, b.BalanceDue,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Nights counts started 24h periods between check-in and check-out; inverted or missing dates give 0.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0
	}
	return ceilDays(checkOut.Sub(checkIn))
}

// ExtraBedDays is the number of billable extra-bed days for a room.
// The bed starts on its own start date, else on today when flagged, else on check-in.
func ExtraBedDays(r models.RoomSelection, stay models.StayPeriod, today time.Time) int {
	if !r.HasExtraBed || stay.CheckOut.IsZero() {
		return 0
	}
	start := stay.CheckIn
	switch {
	case r.ExtraBedStartDate != nil && !r.ExtraBedStartDate.IsZero():
		start = *r.ExtraBedStartDate
	case r.ExtraBedFromToday && !today.IsZero():
		start = today
	}
	if start.IsZero() || !start.Before(stay.CheckOut) {
		return 0
	}
	return ceilDays(stay.CheckOut.Sub(start))
}

// OrderTotal sums chargeable line items; cancelled and order-level NC orders total 0.
func OrderTotal(o models.AncillaryOrder) float64 {
	return orderTotal(o).InexactFloat64()
}

func TotalAdvance(advances []models.AdvancePayment) float64 {
	return sumAdvances(advances).InexactFloat64()
}

func orderTotal(o models.AncillaryOrder) decimal.Decimal {
	if o.Cancelled() || o.OrderNonChargeable {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, li := range o.LineItems {
		if li.NonChargeable {
			continue
		}
		sum = sum.Add(amount(li.Quantity).Mul(amount(li.UnitPrice)))
	}
	return sum
}

func sumOrders(orders []models.AncillaryOrder) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(orderTotal(o))
	}
	return sum
}

func sumAdvances(advances []models.AdvancePayment) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range advances {
		sum = sum.Add(amount(a.Amount))
	}
	return sum
}

func balance(grand, advance decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, grand.Sub(advance))
}

func percentOf(base decimal.Decimal, pct float64) decimal.Decimal {
	return base.Mul(amount(pct)).Div(hundred)
}

func ceilDays(d time.Duration) int {
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

// amount turns NaN and infinities into 0 so they cannot poison a total.
func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
