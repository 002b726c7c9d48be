package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/domain/models"
)

type fakeBookings struct {
	snap models.BookingSnapshot
	err  error
	ids  []string
}

func (f *fakeBookings) GetBooking(ctx context.Context, id string) (models.BookingSnapshot, error) {
	f.ids = append(f.ids, id)
	return f.snap, f.err
}

func snapshotFrom(t *testing.T, body string) models.BookingSnapshot {
	t.Helper()
	var snap models.BookingSnapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snap
}

const storedBooking = `{
	"_id": "b-77",
	"grcNo": "GRC-77",
	"name": "Asha  Rao",
	"checkInDate": "2024-01-01",
	"checkOutDate": "2024-01-03",
	"rooms": [{"roomNumber": "101", "rate": 2000}],
	"discountPercent": 10,
	"cgstRate": 6,
	"sgstRate": 6,
	"advancePayments": [{"amount": 1000, "mode": "Cash", "date": "2024-01-01"}],
	"laundryOrders": [{"status": "cancelled", "lineItems": [{"quantity": 2, "unitPrice": 100}]}],
	"totalAmount": 4480
}`

func TestBookingChargesRederivesAndFlagsDrift(t *testing.T) {
	fetcher := &fakeBookings{snap: snapshotFrom(t, storedBooking)}
	svc := BookingChargesService{Bookings: fetcher}

	out, err := svc.Charges(context.Background(), "b-77", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Charges error: %v", err)
	}
	if out.BookingID != "b-77" || out.GRCNo != "GRC-77" {
		t.Fatalf("unexpected ids: %+v", out)
	}
	if out.Breakdown.GrandTotal != 4032 || out.Breakdown.BalanceDue != 3032 || out.Breakdown.LaundryTotal != 0 {
		t.Fatalf("unexpected breakdown: %+v", out.Breakdown)
	}
	if out.Drift == nil || out.Drift.PersistedTotal != 4480 || out.Drift.DerivedTotal != 4032 || out.Drift.Difference != 448 {
		t.Fatalf("expected drift against persisted total, got %+v", out.Drift)
	}
	if len(fetcher.ids) != 1 || fetcher.ids[0] != "b-77" {
		t.Fatalf("unexpected fetches: %v", fetcher.ids)
	}
}

func TestBookingChargesNoDriftWhenTotalsMatch(t *testing.T) {
	snap := snapshotFrom(t, storedBooking)
	snap.TotalAmount = models.OptionalAmount{Value: 4032, Valid: true}
	svc := BookingChargesService{Bookings: &fakeBookings{snap: snap}}

	out, err := svc.Charges(context.Background(), "b-77", time.Time{})
	if err != nil {
		t.Fatalf("Charges error: %v", err)
	}
	if out.Drift != nil {
		t.Fatalf("expected no drift, got %+v", out.Drift)
	}
}

func TestBookingChargesPropagatesFetchErrors(t *testing.T) {
	svc := BookingChargesService{Bookings: &fakeBookings{err: domain.NotFoundError{Resource: "booking"}}}
	if _, err := svc.Charges(context.Background(), "missing", time.Time{}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	unconfigured := BookingChargesService{}
	if _, err := unconfigured.Invoice(context.Background(), "x", time.Time{}); !domain.IsInternal(err) {
		t.Fatalf("expected internal error without fetcher, got %v", err)
	}
}

func TestBookingInvoiceView(t *testing.T) {
	body := `{
		"id": "b-9",
		"name": "Guest",
		"checkInDate": "2024-03-01",
		"checkOutDate": "2024-03-02",
		"rooms": [{"roomNumber": "305", "rate": 1234.5}],
		"cgstRate": 9,
		"sgstRate": 9,
		"advancePayments": [{"amount": 500, "mode": "upi", "reference": "UTR1"}]
	}`
	svc := BookingChargesService{Bookings: &fakeBookings{snap: snapshotFrom(t, body)}}

	view, err := svc.Invoice(context.Background(), "b-9", time.Time{})
	if err != nil {
		t.Fatalf("Invoice error: %v", err)
	}
	if view.CheckIn != "2024-03-01" || view.CheckOut != "2024-03-02" || len(view.Rooms) != 1 || view.Rooms[0] != "305" {
		t.Fatalf("unexpected header: %+v", view)
	}
	if !view.Breakdown.Rounded || view.Breakdown.GrandTotal != 1457 || view.Breakdown.BalanceDue != 957 {
		t.Fatalf("unexpected breakdown: %+v", view.Breakdown)
	}

	byKey := map[string]models.InvoiceLine{}
	for _, l := range view.Lines {
		byKey[l.Key] = l
	}
	if l := byKey["room"]; l.Label != "Room charges (1 night)" || l.Display != "₹1,234.50" {
		t.Fatalf("unexpected room line: %+v", l)
	}
	if l := byKey["cgst"]; l.Label != "CGST @ 9%" || l.Amount != 111.105 {
		t.Fatalf("unexpected cgst line: %+v", l)
	}
	if l := byKey["round_off"]; l.Display != "₹0.29" {
		t.Fatalf("unexpected round off line: %+v", l)
	}
	if l := byKey["grand_total"]; l.Display != "₹1,457.00" {
		t.Fatalf("unexpected grand total line: %+v", l)
	}
	if _, ok := byKey["discount"]; ok {
		t.Fatalf("zero discount should be omitted")
	}
	if len(view.Advances) != 1 || view.Advances[0].Mode != "UPI" || view.Advances[0].Display != "₹500.00" {
		t.Fatalf("unexpected advances: %+v", view.Advances)
	}
}

func TestInvoiceLinesDiscountIsNegative(t *testing.T) {
	lines := InvoiceLines(models.ChargeBreakdown{RoomNights: 2, RoomSubtotal: 4000, DiscountAmount: 400}, models.ChargeRates{DiscountPercent: 10})
	for _, l := range lines {
		if l.Key == "discount" {
			if l.Amount != -400 || l.Label != "Discount (10%)" || l.Display != "-₹400.00" {
				t.Fatalf("unexpected discount line: %+v", l)
			}
			return
		}
	}
	t.Fatalf("discount line missing")
}
