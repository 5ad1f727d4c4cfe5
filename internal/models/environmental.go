package models

import "time"

// DataPoint is a single synthesized observation inside a region boundary.
type DataPoint struct {
	Longitude  float64   `json:"longitude"`
	Latitude   float64   `json:"latitude"`
	Value      float64   `json:"value"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// IndicatorRecord is implemented by every per-indicator result type. It
// exposes the one headline value each indicator is compared and trended on,
// so aggregation code never has to switch over concrete types.
type IndicatorRecord interface {
	// PrimaryValue returns the headline scalar for comparisons and trends.
	PrimaryValue() float64
	// PrimaryUnit returns the display unit of the primary value.
	PrimaryUnit() string
	// SeriesLabel returns the label attached to trend series entries.
	SeriesLabel() string
}

// NDVIData holds vegetation index results for one region and year.
type NDVIData struct {
	Year                      int         `json:"year"`
	Region                    Region      `json:"region"`
	AverageNDVI               float64     `json:"average_ndvi"`
	MinNDVI                   float64     `json:"min_ndvi"`
	MaxNDVI                   float64     `json:"max_ndvi"`
	VegetationCoveragePercent float64     `json:"vegetation_coverage_percent"`
	DataPoints                []DataPoint `json:"data_points"`
	Source                    DataSource  `json:"source"`
	Trend                     string      `json:"trend"`
}

func (d NDVIData) PrimaryValue() float64 { return d.AverageNDVI }
func (d NDVIData) PrimaryUnit() string   { return "NDVI" }
func (d NDVIData) SeriesLabel() string   { return d.Trend }

// GlacierData holds glacier coverage results for one region and year.
type GlacierData struct {
	Year              int         `json:"year"`
	Region            Region      `json:"region"`
	GlacierAreaKm2    float64     `json:"glacier_area_km2"`
	IceThicknessM     float64     `json:"ice_thickness_m"`
	RetreatRateMPerYr float64     `json:"retreat_rate_m_per_year"`
	DataPoints        []DataPoint `json:"data_points"`
	Source            DataSource  `json:"source"`
	Trend             string      `json:"trend"`
}

func (d GlacierData) PrimaryValue() float64 { return d.GlacierAreaKm2 }
func (d GlacierData) PrimaryUnit() string   { return "km²" }
func (d GlacierData) SeriesLabel() string   { return d.Trend }

// UrbanData holds urban expansion results for one region and year.
type UrbanData struct {
	Year                int         `json:"year"`
	Region              Region      `json:"region"`
	UrbanAreaKm2        float64     `json:"urban_area_km2"`
	BuiltUpPercentage   float64     `json:"built_up_percentage"`
	PopulationEstimate  int         `json:"population_estimate"`
	NightlightIntensity float64     `json:"nightlight_intensity"`
	DataPoints          []DataPoint `json:"data_points"`
	Source              DataSource  `json:"source"`
	Trend               string      `json:"trend"`
}

func (d UrbanData) PrimaryValue() float64 { return d.UrbanAreaKm2 }
func (d UrbanData) PrimaryUnit() string   { return "km²" }
func (d UrbanData) SeriesLabel() string   { return d.Trend }

// TemperatureData holds land surface temperature results for one region and year.
type TemperatureData struct {
	Year             int         `json:"year"`
	Region           Region      `json:"region"`
	AverageTempC     float64     `json:"average_temperature_c"`
	MinTempC         float64     `json:"min_temperature_c"`
	MaxTempC         float64     `json:"max_temperature_c"`
	HeatIslandEffect float64     `json:"heat_island_effect"`
	DataPoints       []DataPoint `json:"data_points"`
	Source           DataSource  `json:"source"`
	Trend            string      `json:"trend"`
}

func (d TemperatureData) PrimaryValue() float64 { return d.AverageTempC }
func (d TemperatureData) PrimaryUnit() string   { return "°C" }
func (d TemperatureData) SeriesLabel() string   { return d.Trend }

// GLOFData holds glacial lake outburst flood risk results for one region and year.
type GLOFData struct {
	Year          int         `json:"year"`
	Region        Region      `json:"region"`
	RiskLevel     string      `json:"risk_level"`
	LakeAreaKm2   float64     `json:"lake_area_km2"`
	ExpansionRate float64     `json:"expansion_rate"`
	DataPoints    []DataPoint `json:"data_points"`
	Source        DataSource  `json:"source"`
	Trend         string      `json:"trend"`
}

func (d GLOFData) PrimaryValue() float64 { return d.LakeAreaKm2 }
func (d GLOFData) PrimaryUnit() string   { return "km²" }

// SeriesLabel returns the risk level rather than the trend; GLOF series are
// read as risk bands, not direction.
func (d GLOFData) SeriesLabel() string { return d.RiskLevel }

// ForestData holds forest cover results for one region and year.
type ForestData struct {
	Year                   int         `json:"year"`
	Region                 Region      `json:"region"`
	ForestCoverKm2         float64     `json:"forest_cover_km2"`
	DeforestationRate      float64     `json:"deforestation_rate"`
	IllegalLoggingHotspots int         `json:"illegal_logging_hotspots"`
	CommunityForestArea    float64     `json:"community_forest_area"`
	DataPoints             []DataPoint `json:"data_points"`
	Source                 DataSource  `json:"source"`
	Trend                  string      `json:"trend"`
}

func (d ForestData) PrimaryValue() float64 { return d.ForestCoverKm2 }
func (d ForestData) PrimaryUnit() string   { return "km²" }
func (d ForestData) SeriesLabel() string   { return "stable" }

// LandslideData holds landslide susceptibility results for one region and year.
type LandslideData struct {
	Year                int         `json:"year"`
	Region              Region      `json:"region"`
	SusceptibilityIndex float64     `json:"susceptibility_index"`
	HighRiskAreaKm2     float64     `json:"high_risk_area_km2"`
	RainfallCorrelation float64     `json:"rainfall_correlation"`
	DataPoints          []DataPoint `json:"data_points"`
	Source              DataSource  `json:"source"`
	Trend               string      `json:"trend"`
}

func (d LandslideData) PrimaryValue() float64 { return d.SusceptibilityIndex }
func (d LandslideData) PrimaryUnit() string   { return "Index" }
func (d LandslideData) SeriesLabel() string   { return "variable" }

// EarthquakeRecoveryData holds post-earthquake vegetation recovery results
// for one region and year.
type EarthquakeRecoveryData struct {
	Year                   int         `json:"year"`
	Region                 Region      `json:"region"`
	RecoveryPercentage     float64     `json:"recovery_percentage"`
	ScarVisibilityIndex    float64     `json:"scar_visibility_index"`
	VegetationRegrowthRate float64     `json:"vegetation_regrowth_rate"`
	DataPoints             []DataPoint `json:"data_points"`
	Source                 DataSource  `json:"source"`
	Trend                  string      `json:"trend"`
}

func (d EarthquakeRecoveryData) PrimaryValue() float64 { return d.RecoveryPercentage }
func (d EarthquakeRecoveryData) PrimaryUnit() string   { return "%" }
func (d EarthquakeRecoveryData) SeriesLabel() string   { return "recovering" }

var (
	_ IndicatorRecord = NDVIData{}
	_ IndicatorRecord = GlacierData{}
	_ IndicatorRecord = UrbanData{}
	_ IndicatorRecord = TemperatureData{}
	_ IndicatorRecord = GLOFData{}
	_ IndicatorRecord = ForestData{}
	_ IndicatorRecord = LandslideData{}
	_ IndicatorRecord = EarthquakeRecoveryData{}
)

// EnvironmentalSummary bundles all eight indicator results for one region
// and year.
type EnvironmentalSummary struct {
	Year            int                    `json:"year"`
	Region          Region                 `json:"region"`
	NDVIData        NDVIData               `json:"ndvi_data"`
	GlacierData     GlacierData            `json:"glacier_data"`
	UrbanData       UrbanData              `json:"urban_data"`
	TemperatureData TemperatureData        `json:"temperature_data"`
	GLOFData        GLOFData               `json:"glof_data"`
	ForestData      ForestData             `json:"forest_data"`
	LandslideData   LandslideData          `json:"landslide_data"`
	EarthquakeData  EarthquakeRecoveryData `json:"earthquake_data"`
}

// ComparisonResult describes how an indicator changed between two years.
type ComparisonResult struct {
	ComparisonType   string    `json:"comparison_type"`
	Region           Region    `json:"region"`
	Indicator        Indicator `json:"indicator"`
	BaselineYear     int       `json:"baseline_year"`
	ComparisonYear   int       `json:"comparison_year"`
	BaselineValue    float64   `json:"baseline_value"`
	ComparisonValue  float64   `json:"comparison_value"`
	ChangeAmount     float64   `json:"change_amount"`
	ChangePercentage float64   `json:"change_percentage"`
	TrendSummary     string    `json:"trend_summary"`
	ImpactAssessment string    `json:"impact_assessment"`
}

// TrendPoint is one entry in a historical trend series.
type TrendPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Trend string  `json:"trend"`
}
