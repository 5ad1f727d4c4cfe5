package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/earthdata"
	apierrors "github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/errors"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/middleware"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// EarthdataHandler handles NASA CMR availability and status requests.
type EarthdataHandler struct {
	client *earthdata.Client
}

// NewEarthdataHandler creates a new EarthdataHandler instance.
func NewEarthdataHandler(client *earthdata.Client) *EarthdataHandler {
	return &EarthdataHandler{
		client: client,
	}
}

// AvailabilityRequest represents the query parameters for the availability endpoint.
type AvailabilityRequest struct {
	Year int `form:"year" binding:"required"`
}

// Availability handles GET /api/v1/earthdata/availability/:indicator endpoint.
// Reports whether NASA CMR holds granules for the indicator's satellite
// product in the given year. Indicators without an upstream product always
// report unavailable without contacting CMR.
func (h *EarthdataHandler) Availability(c *gin.Context) {
	log := middleware.GetLogger(c)

	indicator, err := models.ParseIndicator(c.Param("indicator"))
	if err != nil {
		apierrors.BadRequest(c, err.Error(), nil)
		return
	}

	var req AvailabilityRequest
	if !bindQuery(c, &req) {
		return
	}

	if log != nil {
		log.Info("Checking Earthdata availability", map[string]interface{}{
			"indicator": indicator.String(),
			"year":      req.Year,
		})
	}

	availability, err := h.client.Availability(c.Request.Context(), indicator, req.Year)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to query NASA CMR", err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// Status handles GET /api/v1/earthdata/status endpoint.
// Reports client configuration and CMR reachability.
func (h *EarthdataHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.Status(c.Request.Context()))
}
