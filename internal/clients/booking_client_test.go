package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	intconfig "frontdesk/internal/config"
	"frontdesk/internal/domain"
)

func newTestClient(srv *httptest.Server) *BookingClient {
	return NewBookingClient(intconfig.BookingAPIConfig{BaseURL: srv.URL + "/", Token: "service-token", Timeout: 2 * time.Second})
}

func TestBookingClientGetBookingWrapped(t *testing.T) {
	var gotAuth, gotReqID, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "booking": {"_id": "b-1", "grcNo": "GRC-7", "checkInDate": "2024-01-01", "checkOutDate": "2024-01-03", "rooms": [{"roomNumber": "101", "rate": 2000}]}}`))
	}))
	defer srv.Close()

	snap, err := newTestClient(srv).WithSession("caller-token", "req-1").GetBooking(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("GetBooking error: %v", err)
	}
	if gotPath != "/api/bookings/b-1" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer caller-token" || gotReqID != "req-1" {
		t.Fatalf("unexpected headers auth=%q req=%q", gotAuth, gotReqID)
	}
	if snap.BookingID() != "b-1" || snap.GRCNo.String() != "GRC-7" || len(snap.Rooms) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestBookingClientUsesServiceTokenByDefault(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id": 12}`))
	}))
	defer srv.Close()

	snap, err := newTestClient(srv).WithSession("", "").GetBooking(context.Background(), "12")
	if err != nil {
		t.Fatalf("GetBooking error: %v", err)
	}
	if gotAuth != "Bearer service-token" {
		t.Fatalf("expected service token, got %q", gotAuth)
	}
	if snap.BookingID() != "12" {
		t.Fatalf("numeric id should decode, got %q", snap.BookingID())
	}
}

func TestBookingClientErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, `{"message":"missing"}`, domain.IsNotFound},
		{"server error", http.StatusInternalServerError, `oops`, domain.IsUpstream},
		{"bad json", http.StatusOK, `not json`, domain.IsUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).GetBooking(context.Background(), "x")
			if !tc.check(err) {
				t.Fatalf("unexpected error type: %v", err)
			}
		})
	}
}

func TestBookingClientRejectsEmptyID(t *testing.T) {
	c := NewBookingClient(intconfig.BookingAPIConfig{BaseURL: "http://127.0.0.1:1"})
	if _, err := c.GetBooking(context.Background(), "  "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBookingClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(srv)
	srv.Close()

	if _, err := c.GetBooking(context.Background(), "x"); !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
