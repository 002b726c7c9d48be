package handlers

import (
	"net/http"
	"strings"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/http/middleware"
	"frontdesk/internal/services"
	"frontdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/charges
func GetBookingCharges(c *gin.Context) {
	svc, today, ok := bookingChargesService(c)
	if !ok {
		return
	}
	out, err := svc.Charges(c.Request.Context(), c.Param("id"), today)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/bookings/:id/invoice
func GetBookingInvoice(c *gin.Context) {
	svc, today, ok := bookingChargesService(c)
	if !ok {
		return
	}
	out, err := svc.Invoice(c.Request.Context(), c.Param("id"), today)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func bookingChargesService(c *gin.Context) (services.BookingChargesService, time.Time, bool) {
	d := currentDeps()
	reqID := middleware.GetRequestID(c)

	today := d.today()
	if raw := strings.TrimSpace(c.Query("today")); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			RespondDomainError(c, domain.ValidationError{Field: "today", Msg: "expected YYYY-MM-DD", Err: err})
			return services.BookingChargesService{}, time.Time{}, false
		}
		today = utils.StartOfDay(t)
	}

	svc := services.BookingChargesService{
		Pricing:   d.pricing(reqID),
		RequestID: reqID,
	}
	if d.Bookings != nil {
		svc.Bookings = d.Bookings(middleware.GetAuthToken(c), reqID)
	}
	return svc, today, true
}
