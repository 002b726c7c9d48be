package api

import (
	"log"
	stdhttp "net/http"

	intconfig "frontdesk/internal/config"
	h "frontdesk/internal/http/handlers"
	"frontdesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.Use(middleware.Authenticate(env.JWTSecret))
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Pricing
		pricing := api.Group("/pricing")
		pricing.POST("/preview", h.PreviewPricing)
		pricing.GET("/settings", h.GetPricingSettings)
		pricing.PUT("/settings", middleware.RequireRoles("admin", "manager"), h.UpdatePricingSettings)

		// Bookings (read-only, derived from the booking backend)
		bookings := api.Group("/bookings", middleware.RequireCaller())
		bookings.GET("/:id/charges", h.GetBookingCharges)
		bookings.GET("/:id/invoice", h.GetBookingInvoice)
	}

	h.SetRouter(r)
	return r
}
