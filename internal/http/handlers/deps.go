package handlers

import (
	"context"
	"sync"
	"time"

	"frontdesk/internal/domain/models"
	"frontdesk/internal/services"
	"frontdesk/internal/utils"
)

// SettingsRepo reads and writes the stored billing defaults.
type SettingsRepo interface {
	Get(ctx context.Context) (models.BillingSettings, bool, error)
	Save(ctx context.Context, s models.BillingSettings) error
}

// Dependencies are shared by all handlers. Pricing is a template; handlers stamp the request ID per call.
type Dependencies struct {
	Pricing services.PricingService
	// Bookings returns a booking fetcher acting with the caller's token.
	Bookings func(token, requestID string) services.BookingFetcher
	Settings SettingsRepo
	Now      func() time.Time
}

var (
	depsMu sync.RWMutex
	deps   Dependencies
)

// SetDependencies installs handler dependencies; call before serving.
func SetDependencies(d Dependencies) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func currentDeps() Dependencies {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

func (d Dependencies) today() time.Time {
	if d.Now != nil {
		return utils.StartOfDay(d.Now())
	}
	return utils.Today()
}

func (d Dependencies) pricing(requestID string) services.PricingService {
	svc := d.Pricing
	svc.RequestID = requestID
	return svc
}
