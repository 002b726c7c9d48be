package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/internal/cache"
	"frontdesk/internal/clients"
	intconfig "frontdesk/internal/config"
	"frontdesk/internal/domain/models"
	router "frontdesk/internal/http"
	"frontdesk/internal/http/handlers"
	"frontdesk/internal/metrics"
	"frontdesk/internal/repositories"
	"frontdesk/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if _, err := intconfig.ConnectDB(env.DBDSN); err != nil {
		if errors.Is(err, intconfig.ErrNoDSN) {
			log.Println("DB_DSN not set, billing settings will use env defaults")
		} else {
			log.Printf("warning: MySQL unavailable, billing settings will use env defaults: %v", err)
		}
	}
	defer intconfig.CloseDB()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	settingsRepo := repositories.SettingsRepository{}
	pricing := services.PricingService{
		Settings: settingsRepo,
		Metrics:  metrics.NewRecorder(reg),
		Defaults: models.BillingSettings{
			CGSTPercent:         env.Pricing.CGSTPercent,
			SGSTPercent:         env.Pricing.SGSTPercent,
			ExtraBedDailyCharge: env.Pricing.ExtraBedDailyCharge,
		},
		Strict: env.Pricing.Strict,
	}

	if env.Redis.Addr != "" {
		previewCache := cache.NewRedisPreviewCache(env.Redis)
		defer previewCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := previewCache.Ping(ctx); err != nil {
			log.Printf("warning: redis unavailable, preview cache disabled: %v", err)
		} else {
			pricing.Cache = previewCache
		}
		cancel()
	}

	bookingClient := clients.NewBookingClient(env.BookingAPI)
	handlers.SetDependencies(handlers.Dependencies{
		Pricing: pricing,
		Bookings: func(token, requestID string) services.BookingFetcher {
			return bookingClient.WithSession(token, requestID)
		},
		Settings: settingsRepo,
	})

	r := router.NewRouter(env, reg)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("front-desk billing listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
