package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontdesk/internal/domain/models"
	"frontdesk/internal/http/middleware"
	"frontdesk/internal/services"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/api/pricing/preview", PreviewPricing)
	r.GET("/api/pricing/settings", GetPricingSettings)
	r.PUT("/api/pricing/settings", UpdatePricingSettings)
	r.GET("/api/bookings/:id/charges", GetBookingCharges)
	r.GET("/api/bookings/:id/invoice", GetBookingInvoice)
	r.GET("/api/health", Health)
	return r
}

func withDeps(t *testing.T, d Dependencies) {
	t.Helper()
	prev := currentDeps()
	SetDependencies(d)
	t.Cleanup(func() { SetDependencies(prev) })
}

func fixedNow() time.Time { return time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC) }

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreviewPricingBasic(t *testing.T) {
	withDeps(t, Dependencies{
		Pricing: services.PricingService{Defaults: models.BillingSettings{CGSTPercent: 6, SGSTPercent: 6}},
		Now:     fixedNow,
	})

	body := `{
		"rooms": [{"roomNumber": "101", "baseRate": 2000}],
		"checkIn": "2024-01-01",
		"checkOut": "2024-01-03",
		"rates": {"discountPercent": 10},
		"advances": [{"amount": 1000, "mode": "Cash"}]
	}`
	w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out models.ChargeBreakdown
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.DiscountAmount != 400 || out.TaxableAmount != 3600 || out.GrandTotal != 4032 || out.BalanceDue != 3032 {
		t.Fatalf("unexpected breakdown: %+v", out)
	}
}

func TestPreviewPricingRoundingQuery(t *testing.T) {
	withDeps(t, Dependencies{Now: fixedNow})

	body := `{"rooms": [{"baseRate": 1234.5}], "checkIn": "2024-03-01", "checkOut": "2024-03-02", "rates": {"cgstPercent": 9, "sgstPercent": 9}}`
	w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview?rounding=true", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out models.ChargeBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.Rounded || out.GrandTotal != 1457 || out.RoundOff != 0.29 {
		t.Fatalf("unexpected rounded breakdown: %+v", out)
	}
}

func TestPreviewPricingInjectsToday(t *testing.T) {
	withDeps(t, Dependencies{Now: fixedNow})

	body := `{"rooms": [{"baseRate": 1000, "hasExtraBed": true, "extraBedFromToday": true}], "checkIn": "2024-01-01", "checkOut": "2024-01-05", "rates": {"extraBedDailyCharge": 300}}`
	w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview", body)
	var out models.ChargeBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.ExtraBedSubtotal != 900 {
		t.Fatalf("expected extra bed from 2024-01-02 (3 days), got %v", out.ExtraBedSubtotal)
	}
}

func TestPreviewPricingStrictRejects(t *testing.T) {
	withDeps(t, Dependencies{Now: fixedNow})

	body := `{"rooms": [{"baseRate": 1000}], "checkIn": "2024-01-01", "checkOut": "2024-01-02", "rates": {"cgstPercent": 75}}`
	w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview?strict=true", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var payload map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &payload)
	if payload["code"] != "validation_error" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	details, _ := payload["details"].(map[string]any)
	if details["field"] != "cgstPercent" {
		t.Fatalf("expected field detail, got %v", payload["details"])
	}

	w = serve(newTestEngine(), http.MethodPost, "/api/pricing/preview", body)
	if w.Code != http.StatusOK {
		t.Fatalf("lenient preview should succeed, got %d", w.Code)
	}
}

func TestPreviewPricingAnomalyIsUnavailable(t *testing.T) {
	withDeps(t, Dependencies{Now: fixedNow})

	body := `{"rooms": [{"baseRate": 1e308}, {"baseRate": 1e308}], "checkIn": "2024-01-01", "checkOut": "2024-01-03"}`
	w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview", body)
	if w.Code != http.StatusOK {
		t.Fatalf("anomaly must not fail the request, got %d", w.Code)
	}
	var out models.ChargeBreakdown
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.Unavailable {
		t.Fatalf("expected unavailable flag: %s", w.Body.String())
	}
}

func TestPreviewPricingBadBody(t *testing.T) {
	withDeps(t, Dependencies{Now: fixedNow})

	for _, body := range []string{"", `{"checkIn": "yesterday"}`, `[`} {
		w := serve(newTestEngine(), http.MethodPost, "/api/pricing/preview", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	w := serve(newTestEngine(), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}
