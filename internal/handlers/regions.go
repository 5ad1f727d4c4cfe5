package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/errors"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/geography"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// RegionHandler handles region catalog HTTP requests. All data comes from
// the static geography registry.
type RegionHandler struct{}

// NewRegionHandler creates a new RegionHandler instance.
func NewRegionHandler() *RegionHandler {
	return &RegionHandler{}
}

// RegionEntry represents one region in the list response.
type RegionEntry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Center      models.Coordinate `json:"center"`
}

// RegionListResponse represents the response for the region list endpoint.
type RegionListResponse struct {
	Regions []RegionEntry `json:"regions"`
	Count   int           `json:"count"`
}

// RegionDetailResponse represents the response for a single region.
// The boundary marshals as a GeoJSON Polygon.
type RegionDetailResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Center      models.Coordinate `json:"center"`
	Boundary    models.Boundary   `json:"boundary"`
}

// List handles GET /api/v1/regions endpoint.
func (h *RegionHandler) List(c *gin.Context) {
	infos := geography.Catalog()
	regions := make([]RegionEntry, 0, len(infos))
	for _, info := range infos {
		regions = append(regions, RegionEntry{
			ID:          info.Region.String(),
			Name:        info.Name,
			Description: info.Description,
			Center:      info.Center,
		})
	}

	c.JSON(http.StatusOK, RegionListResponse{
		Regions: regions,
		Count:   len(regions),
	})
}

// ByID handles GET /api/v1/regions/:id endpoint.
// Returns the region metadata together with its boundary polygon.
func (h *RegionHandler) ByID(c *gin.Context) {
	region, err := models.ParseRegion(c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Region not found")
		return
	}

	info, ok := geography.Info(region)
	if !ok {
		apierrors.NotFound(c, "Region not found")
		return
	}

	// A missing boundary marshals as null rather than failing the request
	boundary, _ := geography.BoundaryOf(region)

	c.JSON(http.StatusOK, RegionDetailResponse{
		ID:          info.Region.String(),
		Name:        info.Name,
		Description: info.Description,
		Center:      info.Center,
		Boundary:    boundary,
	})
}
