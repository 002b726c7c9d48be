package models

// ChargeDrift reports a persisted total that no longer matches the live derivation.
type ChargeDrift struct {
	PersistedTotal float64 `json:"persistedTotal"`
	DerivedTotal   float64 `json:"derivedTotal"`
	Difference     float64 `json:"difference"`
}

// BookingCharges is the live breakdown of a stored booking.
type BookingCharges struct {
	BookingID string          `json:"bookingId"`
	GRCNo     string          `json:"grcNo,omitempty"`
	Breakdown ChargeBreakdown `json:"breakdown"`
	Drift     *ChargeDrift    `json:"drift,omitempty"`
}

type InvoiceLine struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

type InvoiceAdvance struct {
	Date      string  `json:"date,omitempty"`
	Mode      string  `json:"mode,omitempty"`
	Reference string  `json:"reference,omitempty"`
	Amount    float64 `json:"amount"`
	Display   string  `json:"display"`
}

// InvoiceView carries everything the printable invoice renders, already formatted.
type InvoiceView struct {
	BookingID string           `json:"bookingId"`
	GRCNo     string           `json:"grcNo,omitempty"`
	GuestName string           `json:"guestName,omitempty"`
	CheckIn   string           `json:"checkIn,omitempty"`
	CheckOut  string           `json:"checkOut,omitempty"`
	Rooms     []string         `json:"rooms"`
	Lines     []InvoiceLine    `json:"lines"`
	Advances  []InvoiceAdvance `json:"advances"`
	Breakdown ChargeBreakdown  `json:"breakdown"`
}
