package handlers

import (
	"net/http"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/domain/models"
	"frontdesk/internal/http/middleware"
	"frontdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/pricing/settings
func GetPricingSettings(c *gin.Context) {
	d := currentDeps()
	reqID := middleware.GetRequestID(c)

	source := "defaults"
	settings := d.Pricing.Defaults
	if d.Settings != nil {
		stored, found, err := d.Settings.Get(c.Request.Context())
		if err != nil {
			utils.LogEvent(reqID, "settings", "get", "load failed: "+err.Error())
		} else if found {
			settings, source = stored, "stored"
		}
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "source": source})
}

// PUT /api/pricing/settings
func UpdatePricingSettings(c *gin.Context) {
	var req models.BillingSettings
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := domain.ValidateStruct(req); err != nil {
		RespondDomainError(c, err)
		return
	}

	d := currentDeps()
	if d.Settings == nil {
		RespondError(c, http.StatusServiceUnavailable, "settings storage not configured", nil)
		return
	}

	reqID := middleware.GetRequestID(c)
	req.UpdatedBy = middleware.GetUserID(c)
	if req.UpdatedBy == "" {
		req.UpdatedBy = middleware.GetUserRole(c)
	}
	req.UpdatedAt = utils.NowUTC().Truncate(time.Second)
	if d.Now != nil {
		req.UpdatedAt = d.Now().UTC().Truncate(time.Second)
	}

	if err := d.Settings.Save(c.Request.Context(), req); err != nil {
		utils.LogEvent(reqID, "settings", "update", "save failed: "+err.Error())
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(reqID, "settings", "update", "billing defaults updated by "+req.UpdatedBy)
	c.JSON(http.StatusOK, gin.H{"settings": req, "source": "stored"})
}
