package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// Spatial sampling bounds.
const (
	minSpatialPoints = 8
	maxSpatialPoints = 25

	minConfidence = 0.75
	maxConfidence = 0.98
)

// spatialPointsFor resolves the region's boundary and scatters sample points
// across it. Lookup misses and any internal failure degrade to an empty set;
// spatial detail is best-effort and never fails the caller.
func (e *Engine) spatialPointsFor(region models.Region, indicator models.Indicator, baseValue, variation float64, year int) (points []models.DataPoint) {
	points = []models.DataPoint{}
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("spatial point generation failed", map[string]interface{}{
				"indicator": indicator.String(),
				"region":    region.String(),
				"reason":    fmt.Sprint(r),
			})
			points = []models.DataPoint{}
		}
	}()

	if _, ok := e.geo.Info(region); !ok {
		return points
	}
	boundary, ok := e.geo.BoundaryOf(region)
	if !ok {
		return points
	}
	return e.synthesize(boundary, indicator, baseValue, variation, year)
}

// synthesize scatters a random number of observations uniformly across the
// boundary's bounding box. Point-in-polygon containment is intentionally not
// tested; the bounding box is the sampling region. Boundaries with fewer than
// three vertices yield an empty set.
func (e *Engine) synthesize(boundary models.Boundary, indicator models.Indicator, baseValue, variation float64, year int) []models.DataPoint {
	points := []models.DataPoint{}

	box, ok := boundary.BoundingBox()
	if !ok {
		return points
	}

	n := intBetween(e.rng, minSpatialPoints, maxSpatialPoints)
	for i := 0; i < n; i++ {
		longitude := uniform(e.rng, box.MinLon, box.MaxLon)
		latitude := uniform(e.rng, box.MinLat, box.MaxLat)

		value := baseValue + uniform(e.rng, -variation, variation)
		value = clampIndicatorValue(indicator, value)

		confidence := uniform(e.rng, minConfidence, maxConfidence)

		// Mid-year observation window; day capped at 28 so any month is valid.
		month := time.Month(intBetween(e.rng, 6, 9))
		day := intBetween(e.rng, 1, 28)

		points = append(points, models.DataPoint{
			Longitude:  longitude,
			Latitude:   latitude,
			Value:      roundTo(value, 3),
			Confidence: roundTo(confidence, 2),
			Timestamp:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		})
	}
	return points
}

// clampIndicatorValue keeps a sampled value inside the indicator's physical
// range. Indicators without a hard range pass through unchanged.
func clampIndicatorValue(indicator models.Indicator, v float64) float64 {
	switch indicator {
	case models.IndicatorNDVI:
		return clamp(v, -1, 1)
	case models.IndicatorTemperature:
		return clamp(v, -50, 50)
	case models.IndicatorGlacier, models.IndicatorUrban:
		return math.Max(0, v)
	}
	return v
}
