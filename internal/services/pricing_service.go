package services

import (
	"context"
	"fmt"
	"time"

	"frontdesk/internal/cache"
	"frontdesk/internal/domain"
	"frontdesk/internal/domain/models"
	"frontdesk/internal/metrics"
	"frontdesk/internal/utils"
)

// SettingsStore provides stored billing defaults; found is false when none are saved.
type SettingsStore interface {
	Get(ctx context.Context) (models.BillingSettings, bool, error)
}

// PricingService runs the charge calculator for previews and stored bookings.
// Cache, Settings and Metrics are optional.
type PricingService struct {
	Settings  SettingsStore
	Cache     cache.PreviewCache
	Metrics   *metrics.Recorder
	Defaults  models.BillingSettings
	Strict    bool
	RequestID string
}

// ResolveSettings returns stored settings, falling back to configured defaults.
func (s PricingService) ResolveSettings(ctx context.Context) models.BillingSettings {
	if s.Settings == nil {
		return s.Defaults
	}
	stored, found, err := s.Settings.Get(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "pricing", "settings", "load failed, using defaults: "+err.Error())
		return s.Defaults
	}
	if !found {
		return s.Defaults
	}
	return stored
}

// Preview computes a breakdown for an ad-hoc request. Identical requests yield identical results.
func (s PricingService) Preview(ctx context.Context, req models.PreviewRequest) (models.ChargeBreakdown, error) {
	in := req.ToInput(s.ResolveSettings(ctx))
	opts := domain.CalcOptions{Rounding: bool(req.Rounding), Strict: bool(req.Strict) || s.Strict}

	key := ""
	if s.Cache != nil {
		if k, err := cache.PreviewKey(in, opts.Rounding, opts.Strict); err == nil {
			key = k
			cached, err := s.Cache.Get(ctx, key)
			switch {
			case err != nil:
				utils.LogEvent(s.RequestID, "pricing", "preview", "cache get failed: "+err.Error())
			case cached != nil:
				s.Metrics.CacheLookup(true)
				return *cached, nil
			default:
				s.Metrics.CacheLookup(false)
			}
		}
	}

	out, err := s.Compute("preview", in, opts)
	if err != nil {
		return models.ChargeBreakdown{}, err
	}

	if key != "" && !out.Unavailable {
		if err := s.Cache.Set(ctx, key, out); err != nil {
			utils.LogEvent(s.RequestID, "pricing", "preview", "cache set failed: "+err.Error())
		}
	}
	return out, nil
}

// Compute wraps the calculator so that any anomaly degrades to an unavailable breakdown.
// Only strict validation failures are returned as errors.
func (s PricingService) Compute(source string, in models.ChargeInput, opts domain.CalcOptions) (out models.ChargeBreakdown, err error) {
	start := time.Now()
	outcome := metrics.OutcomeOK
	defer func() {
		if r := recover(); r != nil {
			utils.LogEvent(s.RequestID, "pricing", source, fmt.Sprintf("computation panicked: %v", r))
			out, err, outcome = domain.UnavailableBreakdown(), nil, metrics.OutcomeUnavailable
		}
		s.Metrics.ObserveComputation(source, outcome, time.Since(start))
	}()

	out, err = domain.ComputeBreakdown(in, opts)
	if err != nil {
		outcome = metrics.OutcomeRejected
		return models.ChargeBreakdown{}, err
	}
	if !domain.Finite(out) {
		utils.LogEvent(s.RequestID, "pricing", source, "non-finite breakdown, returning unavailable")
		outcome = metrics.OutcomeUnavailable
		return domain.UnavailableBreakdown(), nil
	}
	return out, nil
}
