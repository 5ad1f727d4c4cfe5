package simulation

import "github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"

// NDVITrend holds the vegetation baseline and its annual drift.
type NDVITrend struct {
	BaseValue       float64
	AnnualTrend     float64
	Variation       float64
	SeasonalPattern bool
}

// GlacierTrend holds the glacier area baseline and retreat constants.
type GlacierTrend struct {
	InitialAreaKm2     float64
	RetreatRatePerYear float64
	VariationFraction  float64
	AccelerationFactor float64
}

// UrbanTrend holds the built-up area baseline and growth constants.
type UrbanTrend struct {
	InitialAreaKm2    float64
	GrowthRateKm2     float64
	VariationFraction float64
	PopulationGrowth  float64
}

// TemperatureTrend holds the surface temperature baseline and warming rate.
type TemperatureTrend struct {
	BaseTempC       float64
	WarmingRate     float64
	Variation       float64
	UrbanHeatIsland float64
}

// Baseline trends calibrated against observed change across the Nepal
// Himalayas between 2000 and 2025. Year offsets are always counted from 2000.
var (
	ndviTrend = NDVITrend{
		BaseValue:       0.65,
		AnnualTrend:     0.002,
		Variation:       0.05,
		SeasonalPattern: true,
	}
	glacierTrend = GlacierTrend{
		InitialAreaKm2:     1800.0,
		RetreatRatePerYear: 25.0,
		VariationFraction:  0.15,
		AccelerationFactor: 1.02,
	}
	urbanTrend = UrbanTrend{
		InitialAreaKm2:    120.0,
		GrowthRateKm2:     8.5,
		VariationFraction: 0.20,
		PopulationGrowth:  0.025,
	}
	temperatureTrend = TemperatureTrend{
		BaseTempC:       17.5,
		WarmingRate:     0.08,
		Variation:       1.5,
		UrbanHeatIsland: 1.2,
	}
)

// RegionAdjustment scales each indicator family for one region relative to
// the Himalaya-wide baseline.
type RegionAdjustment struct {
	NDVI        float64
	Glacier     float64
	Urban       float64
	Temperature float64
}

var regionAdjustments = map[models.Region]RegionAdjustment{
	// Dense urban valley: less vegetation, no glaciers, rapid expansion
	models.RegionKathmanduValley: {NDVI: 0.8, Glacier: 0.0, Urban: 2.5, Temperature: 1.2},
	models.RegionNepalHimalayas:  {NDVI: 1.0, Glacier: 1.0, Urban: 1.0, Temperature: 1.0},
	models.RegionAnnapurna:       {NDVI: 1.1, Glacier: 1.2, Urban: 0.8, Temperature: 0.9},
	// High altitude: thin vegetation, heavy glaciation, almost no urban area
	models.RegionEverest: {NDVI: 0.9, Glacier: 1.5, Urban: 0.5, Temperature: 0.8},
}

// adjustmentFor returns the scaling factors for a region. Unknown regions get
// neutral factors so the baseline trend applies unchanged.
func adjustmentFor(region models.Region) RegionAdjustment {
	if adj, ok := regionAdjustments[region]; ok {
		return adj
	}
	return RegionAdjustment{NDVI: 1.0, Glacier: 1.0, Urban: 1.0, Temperature: 1.0}
}
