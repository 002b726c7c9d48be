package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	intconfig "frontdesk/internal/config"
	"frontdesk/internal/domain"
	"frontdesk/internal/domain/models"
	"frontdesk/internal/utils"
)

const bookingService = "booking backend"

// BookingClient reads booking records from the external booking backend.
// Credentials are carried on the value; use WithSession to act for a caller.
type BookingClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
	requestID  string
}

func NewBookingClient(cfg intconfig.BookingAPIConfig) *BookingClient {
	return &BookingClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		token: cfg.Token,
	}
}

// WithSession returns a copy that authenticates with token (when non-empty) and forwards requestID.
func (c *BookingClient) WithSession(token, requestID string) *BookingClient {
	cp := *c
	if t := strings.TrimSpace(token); t != "" {
		cp.token = t
	}
	cp.requestID = requestID
	return &cp
}

// GetBooking fetches one booking with its embedded orders and advance payments.
func (c *BookingClient) GetBooking(ctx context.Context, id string) (models.BookingSnapshot, error) {
	id = utils.TrimOrEmpty(id)
	if id == "" {
		return models.BookingSnapshot{}, domain.ValidationError{Field: "id", Msg: "booking id is required"}
	}

	endpoint := fmt.Sprintf("%s/api/bookings/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.BookingSnapshot{}, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.LogEvent(c.requestID, "booking_client", "get", "request failed: "+err.Error())
		return models.BookingSnapshot{}, domain.UpstreamError{Service: bookingService, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return models.BookingSnapshot{}, domain.UpstreamError{Service: bookingService, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.BookingSnapshot{}, domain.NotFoundError{Resource: "booking"}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		utils.LogEvent(c.requestID, "booking_client", "get", fmt.Sprintf("booking_id=%s status=%d", id, resp.StatusCode))
		return models.BookingSnapshot{}, domain.UpstreamError{Service: bookingService, Status: resp.StatusCode}
	}

	snap, err := decodeBooking(body)
	if err != nil {
		return models.BookingSnapshot{}, domain.UpstreamError{Service: bookingService, Status: resp.StatusCode, Err: err}
	}
	return snap, nil
}

func (c *BookingClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.requestID != "" {
		req.Header.Set("X-Request-ID", c.requestID)
	}
}

// decodeBooking accepts a bare booking object or one wrapped in "booking" or "data".
func decodeBooking(body []byte) (models.BookingSnapshot, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.BookingSnapshot{}, fmt.Errorf("decode booking: %w", err)
	}
	raw := json.RawMessage(body)
	for _, key := range []string{"booking", "data"} {
		if inner, ok := envelope[key]; ok && len(inner) > 0 && inner[0] == '{' {
			raw = inner
			break
		}
	}

	var snap models.BookingSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.BookingSnapshot{}, fmt.Errorf("decode booking: %w", err)
	}
	return snap, nil
}
