package handlers

import (
	"net/http"
	"strconv"

	"frontdesk/internal/domain/models"
	"frontdesk/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/pricing/preview
func PreviewPricing(c *gin.Context) {
	var req models.PreviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if v, ok := c.GetQuery("rounding"); ok {
		b, _ := strconv.ParseBool(v)
		req.Rounding = models.Flag(b)
	}
	if v, ok := c.GetQuery("strict"); ok {
		b, _ := strconv.ParseBool(v)
		req.Strict = models.Flag(b)
	}

	d := currentDeps()
	if req.Today.IsZero() {
		req.Today.Time = d.today()
	}

	out, err := d.pricing(middleware.GetRequestID(c)).Preview(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
