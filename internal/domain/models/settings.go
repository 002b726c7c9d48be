package models

import "time"

// BillingSettings are the property-wide defaults applied when a booking omits its own rates.
type BillingSettings struct {
	CGSTPercent         float64   `json:"cgstPercent" validate:"gte=0,lte=50"`
	SGSTPercent         float64   `json:"sgstPercent" validate:"gte=0,lte=50"`
	ExtraBedDailyCharge float64   `json:"extraBedDailyCharge" validate:"gte=0"`
	UpdatedBy           string    `json:"updatedBy,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"`
}
