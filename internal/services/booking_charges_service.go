package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/domain/models"
	"frontdesk/internal/utils"
)

// BookingFetcher loads a booking from the booking backend.
type BookingFetcher interface {
	GetBooking(ctx context.Context, id string) (models.BookingSnapshot, error)
}

// BookingChargesService re-derives charges for stored bookings. Persisted totals are compared, never trusted.
type BookingChargesService struct {
	Bookings  BookingFetcher
	Pricing   PricingService
	RequestID string
}

// Charges returns the live (unrounded) breakdown as shown on the edit form.
func (s BookingChargesService) Charges(ctx context.Context, bookingID string, today time.Time) (models.BookingCharges, error) {
	snap, in, err := s.load(ctx, bookingID, today)
	if err != nil {
		return models.BookingCharges{}, err
	}

	bd, err := s.Pricing.Compute("booking_charges", in, domain.CalcOptions{})
	if err != nil {
		return models.BookingCharges{}, err
	}

	out := models.BookingCharges{
		BookingID: firstNonEmpty(snap.BookingID(), bookingID),
		GRCNo:     snap.GRCNo.String(),
		Breakdown: bd,
	}
	if snap.TotalAmount.Valid && !bd.Unavailable {
		diff := snap.TotalAmount.Value - bd.GrandTotal
		if math.Abs(diff) >= 0.01 {
			out.Drift = &models.ChargeDrift{
				PersistedTotal: snap.TotalAmount.Value,
				DerivedTotal:   bd.GrandTotal,
				Difference:     math.Round(diff*100) / 100,
			}
			utils.LogEvent(s.RequestID, "booking_charges", "drift", fmt.Sprintf("booking_id=%s persisted=%s derived=%s",
				out.BookingID, utils.FormatMoney(snap.TotalAmount.Value), utils.FormatMoney(bd.GrandTotal)))
		}
	}
	return out, nil
}

// Invoice returns the rounded breakdown with display-ready lines for the printable invoice.
func (s BookingChargesService) Invoice(ctx context.Context, bookingID string, today time.Time) (models.InvoiceView, error) {
	snap, in, err := s.load(ctx, bookingID, today)
	if err != nil {
		return models.InvoiceView{}, err
	}

	bd, err := s.Pricing.Compute("invoice", in, domain.CalcOptions{Rounding: true})
	if err != nil {
		return models.InvoiceView{}, err
	}

	view := models.InvoiceView{
		BookingID: firstNonEmpty(snap.BookingID(), bookingID),
		GRCNo:     snap.GRCNo.String(),
		GuestName: utils.NormalizeSpace(snap.GuestName),
		Rooms:     make([]string, 0, len(in.Rooms)),
		Lines:     InvoiceLines(bd, in.Rates),
		Advances:  make([]models.InvoiceAdvance, 0, len(in.Advances)),
		Breakdown: bd,
	}
	if !in.Stay.CheckIn.IsZero() {
		view.CheckIn = utils.FormatDate(in.Stay.CheckIn)
	}
	if !in.Stay.CheckOut.IsZero() {
		view.CheckOut = utils.FormatDate(in.Stay.CheckOut)
	}
	for _, r := range in.Rooms {
		view.Rooms = append(view.Rooms, r.RoomNumber)
	}
	for _, a := range in.Advances {
		adv := models.InvoiceAdvance{
			Mode:      string(a.Mode),
			Reference: a.Reference,
			Amount:    a.Amount,
			Display:   utils.FormatRupee(a.Amount),
		}
		if a.Date != nil {
			adv.Date = utils.FormatDate(*a.Date)
		}
		view.Advances = append(view.Advances, adv)
	}
	return view, nil
}

func (s BookingChargesService) load(ctx context.Context, bookingID string, today time.Time) (models.BookingSnapshot, models.ChargeInput, error) {
	if s.Bookings == nil {
		return models.BookingSnapshot{}, models.ChargeInput{}, domain.InternalError{Msg: "booking backend not configured"}
	}
	snap, err := s.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		s.Pricing.Metrics.UpstreamFetch("error")
		return models.BookingSnapshot{}, models.ChargeInput{}, err
	}
	s.Pricing.Metrics.UpstreamFetch("ok")

	in := snap.ToInput(s.Pricing.ResolveSettings(ctx))
	in.Today = today
	return snap, in, nil
}

// InvoiceLines lays out the breakdown in invoice order. Optional lines are omitted when zero.
func InvoiceLines(bd models.ChargeBreakdown, rates models.ChargeRates) []models.InvoiceLine {
	lines := []models.InvoiceLine{}
	add := func(key, label string, amount float64) {
		lines = append(lines, models.InvoiceLine{Key: key, Label: label, Amount: amount, Display: utils.FormatRupee(amount)})
	}
	addNonZero := func(key, label string, amount float64) {
		if amount != 0 {
			add(key, label, amount)
		}
	}

	nightLabel := "nights"
	if bd.RoomNights == 1 {
		nightLabel = "night"
	}
	add("room", fmt.Sprintf("Room charges (%d %s)", bd.RoomNights, nightLabel), bd.RoomSubtotal)
	addNonZero("extra_bed", "Extra bed", bd.ExtraBedSubtotal)
	if bd.DiscountAmount != 0 {
		add("discount", fmt.Sprintf("Discount (%s%%)", percent(rates.DiscountPercent)), -bd.DiscountAmount)
	}
	addNonZero("room_service", "Room service", bd.RoomServiceTotal)
	addNonZero("restaurant", "Restaurant", bd.RestaurantTotal)
	addNonZero("laundry", "Laundry", bd.LaundryTotal)
	add("taxable", "Taxable amount", bd.TaxableAmount)
	add("cgst", fmt.Sprintf("CGST @ %s%%", percent(rates.CGSTPercent)), bd.CGSTAmount)
	add("sgst", fmt.Sprintf("SGST @ %s%%", percent(rates.SGSTPercent)), bd.SGSTAmount)
	addNonZero("round_off", "Round off", bd.RoundOff)
	add("grand_total", "Grand total", bd.GrandTotal)
	addNonZero("advance", "Advance received", bd.TotalAdvance)
	add("balance_due", "Balance due", bd.BalanceDue)
	return lines
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = utils.TrimOrEmpty(v); v != "" {
			return v
		}
	}
	return ""
}
