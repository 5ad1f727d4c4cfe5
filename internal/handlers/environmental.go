package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/config"
	apierrors "github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/errors"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/geography"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/middleware"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/services"
)

// EnvironmentalHandler handles environmental indicator HTTP requests.
type EnvironmentalHandler struct {
	service services.EnvironmentalService
	yearMin int
	yearMax int
}

// NewEnvironmentalHandler creates a new EnvironmentalHandler instance.
func NewEnvironmentalHandler(service services.EnvironmentalService, data config.DataConfig) *EnvironmentalHandler {
	return &EnvironmentalHandler{
		service: service,
		yearMin: data.YearMin,
		yearMax: data.YearMax,
	}
}

// IndicatorRequest represents the query parameters for the per-indicator endpoints.
type IndicatorRequest struct {
	Region string `form:"region" binding:"omitempty,oneof=nepal_himalayas kathmandu_valley annapurna_region everest_region"`
}

// SummaryRequest represents the query parameters for the summary endpoint.
type SummaryRequest struct {
	Year   int    `form:"year" binding:"required"`
	Region string `form:"region" binding:"omitempty,oneof=nepal_himalayas kathmandu_valley annapurna_region everest_region"`
}

// CompareRequest represents the query parameters for the temporal comparison endpoint.
type CompareRequest struct {
	Indicator           string `form:"indicator" binding:"required,oneof=ndvi glacier urban temperature glof forest landslide earthquake"`
	Region              string `form:"region" binding:"omitempty,oneof=nepal_himalayas kathmandu_valley annapurna_region everest_region"`
	StartYear           int    `form:"start_year"`
	EndYear             int    `form:"end_year"`
	IncludeIntermediate bool   `form:"include_intermediate"`
}

// TrendsRequest represents the query parameters for the trends endpoint.
type TrendsRequest struct {
	Region    string `form:"region" binding:"omitempty,oneof=nepal_himalayas kathmandu_valley annapurna_region everest_region"`
	YearRange string `form:"year_range"`
}

// Indicator returns the handler for one indicator's yearly data endpoint,
// e.g. GET /api/v1/environmental/ndvi/:year. The same handler body serves
// all eight indicators; the route decides which one is simulated.
func (h *EnvironmentalHandler) Indicator(indicator models.Indicator) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := middleware.GetLogger(c)

		year, err := strconv.Atoi(c.Param("year"))
		if err != nil {
			apierrors.BadRequest(c, "Invalid year parameter", map[string]interface{}{
				"year": c.Param("year"),
			})
			return
		}

		var req IndicatorRequest
		if !bindQuery(c, &req) {
			return
		}
		region := regionOrDefault(req.Region)

		if log != nil {
			log.Info("Processing indicator request", map[string]interface{}{
				"indicator": indicator.String(),
				"region":    region.String(),
				"year":      year,
			})
		}

		record, err := h.service.GetIndicator(c.Request.Context(), indicator, region, year)
		if err != nil {
			if errors.Is(err, services.ErrYearOutOfRange) {
				apierrors.BadRequest(c, err.Error(), nil)
				return
			}
			apierrors.InternalServerError(c, "Failed to simulate environmental data", err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// Summary handles GET /api/v1/environmental/summary endpoint.
// It simulates every indicator for the requested year and region and returns
// the assembled summary.
func (h *EnvironmentalHandler) Summary(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req SummaryRequest
	if !bindQuery(c, &req) {
		return
	}
	region := regionOrDefault(req.Region)

	if log != nil {
		log.Info("Processing summary request", map[string]interface{}{
			"region": region.String(),
			"year":   req.Year,
		})
	}

	summary, err := h.service.GetSummary(c.Request.Context(), region, req.Year)
	if err != nil {
		if errors.Is(err, services.ErrYearOutOfRange) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to assemble environmental summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CompareTemporal handles GET /api/v1/environmental/compare/temporal endpoint.
// It compares an indicator between two years of the same region.
func (h *EnvironmentalHandler) CompareTemporal(c *gin.Context) {
	log := middleware.GetLogger(c)

	var req CompareRequest
	if !bindQuery(c, &req) {
		return
	}

	// Unset years fall back to the full supported window
	if req.StartYear == 0 {
		req.StartYear = h.yearMin
	}
	if req.EndYear == 0 {
		req.EndYear = h.yearMax
	}

	indicator := models.Indicator(req.Indicator)
	region := regionOrDefault(req.Region)

	if log != nil {
		log.Info("Processing temporal comparison", map[string]interface{}{
			"indicator":  indicator.String(),
			"region":     region.String(),
			"start_year": req.StartYear,
			"end_year":   req.EndYear,
		})
	}

	result, err := h.service.Compare(c.Request.Context(), indicator, region, req.StartYear, req.EndYear, req.IncludeIntermediate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidYearRange) {
			apierrors.BadRequest(c, services.ErrInvalidYearRange.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrYearOutOfRange) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to compare environmental data", err)
		return
	}

	// Clients expect a list even though a single comparison is produced
	c.JSON(http.StatusOK, []models.ComparisonResult{result})
}

// Trends handles GET /api/v1/environmental/trends/:indicator endpoint.
// It samples the indicator at five-year steps across the requested range.
func (h *EnvironmentalHandler) Trends(c *gin.Context) {
	log := middleware.GetLogger(c)

	indicator, err := models.ParseIndicator(c.Param("indicator"))
	if err != nil {
		apierrors.BadRequest(c, err.Error(), nil)
		return
	}

	var req TrendsRequest
	if !bindQuery(c, &req) {
		return
	}

	yearRange := req.YearRange
	if yearRange == "" {
		yearRange = fmt.Sprintf("%d-%d", h.yearMin, h.yearMax)
	}

	startYear, endYear, err := h.parseYearRange(yearRange)
	if err != nil {
		apierrors.BadRequest(c, "Invalid year range format. Use 'YYYY-YYYY'", map[string]interface{}{
			"year_range": yearRange,
		})
		return
	}

	region := regionOrDefault(req.Region)

	if log != nil {
		log.Info("Processing trends request", map[string]interface{}{
			"indicator":  indicator.String(),
			"region":     region.String(),
			"year_range": yearRange,
		})
	}

	points, err := h.service.GetTrends(c.Request.Context(), indicator, region, startYear, endYear)
	if err != nil {
		if errors.Is(err, services.ErrInvalidYearRange) {
			apierrors.BadRequest(c, services.ErrInvalidYearRange.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to build trend series", err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// IndicatorDescriptor describes one supported indicator in the catalog response.
type IndicatorDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Source      string `json:"source"`
	Range       string `json:"range"`
}

// RegionDescriptor describes one supported region in the catalog response.
type RegionDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogResponse represents the supported indicator and region listing.
type CatalogResponse struct {
	Indicators []IndicatorDescriptor `json:"indicators"`
	Regions    []RegionDescriptor    `json:"regions"`
}

// indicatorCatalog is the display metadata for every supported indicator,
// in catalog order.
var indicatorCatalog = []IndicatorDescriptor{
	{ID: "ndvi", Name: "Normalized Difference Vegetation Index", Description: "Plant health and vegetation density", Unit: "NDVI", Source: "MODIS/Landsat", Range: "0.0 to 1.0"},
	{ID: "glacier", Name: "Glacier Coverage", Description: "Glacier extent and ice coverage", Unit: "km²", Source: "Sentinel/Landsat", Range: "Variable"},
	{ID: "urban", Name: "Urban Expansion", Description: "Built-up area and urban development", Unit: "km²", Source: "Landsat/Nightlight", Range: "Variable"},
	{ID: "temperature", Name: "Land Surface Temperature", Description: "Surface temperature monitoring", Unit: "°C", Source: "MODIS", Range: "Variable"},
	{ID: "glof", Name: "GLOF Risk", Description: "Glacial Lake Outburst Flood risk", Unit: "Risk Level", Source: "Sentinel", Range: "Low to Critical"},
	{ID: "forest", Name: "Forest Cover", Description: "Forest coverage and health", Unit: "km²", Source: "Landsat", Range: "Variable"},
	{ID: "landslide", Name: "Landslide Susceptibility", Description: "Landslide risk zones", Unit: "Index (0-1)", Source: "Other", Range: "0.0 to 1.0"},
	{ID: "earthquake", Name: "Earthquake Recovery", Description: "Post-earthquake vegetation recovery", Unit: "%", Source: "MODIS", Range: "0 to 100"},
}

// Catalog handles GET /api/v1/environmental/indicators endpoint.
// Returns the static catalog of supported indicators and regions.
func (h *EnvironmentalHandler) Catalog(c *gin.Context) {
	infos := geography.Catalog()
	regions := make([]RegionDescriptor, 0, len(infos))
	for _, info := range infos {
		regions = append(regions, RegionDescriptor{
			ID:          info.Region.String(),
			Name:        info.Name,
			Description: info.Description,
		})
	}

	c.JSON(http.StatusOK, CatalogResponse{
		Indicators: indicatorCatalog,
		Regions:    regions,
	})
}

// parseYearRange splits a "start-end" range and checks it against the
// supported data window.
func (h *EnvironmentalHandler) parseYearRange(yearRange string) (startYear, endYear int, err error) {
	parts := strings.Split(yearRange, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two dash-separated years, got %q", yearRange)
	}

	startYear, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	endYear, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}

	if startYear < h.yearMin || endYear > h.yearMax {
		return 0, 0, fmt.Errorf("year range %d-%d outside supported window %d-%d", startYear, endYear, h.yearMin, h.yearMax)
	}
	return startYear, endYear, nil
}

// bindQuery binds and validates query parameters, writing the error response
// itself on failure. Callers return immediately when it reports false.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return false
	}
	return true
}

// regionOrDefault maps a validated region query value to its enum.
// An empty value selects the whole-country default.
func regionOrDefault(s string) models.Region {
	if s == "" {
		return models.RegionNepalHimalayas
	}
	return models.Region(s)
}
