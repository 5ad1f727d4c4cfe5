package models

import "fmt"

// Indicator identifies one environmental measurement category.
// The set is closed: every other part of the system is allowed to assume a
// parsed Indicator has trend parameters, a simulator, and a unit.
type Indicator string

const (
	IndicatorNDVI        Indicator = "ndvi"
	IndicatorGlacier     Indicator = "glacier"
	IndicatorUrban       Indicator = "urban"
	IndicatorTemperature Indicator = "temperature"
	IndicatorGLOF        Indicator = "glof"
	IndicatorForest      Indicator = "forest"
	IndicatorLandslide   Indicator = "landslide"
	IndicatorEarthquake  Indicator = "earthquake"
)

// Indicators returns all supported indicators in catalog order.
func Indicators() []Indicator {
	return []Indicator{
		IndicatorNDVI,
		IndicatorGlacier,
		IndicatorUrban,
		IndicatorTemperature,
		IndicatorGLOF,
		IndicatorForest,
		IndicatorLandslide,
		IndicatorEarthquake,
	}
}

// ParseIndicator validates a raw string against the closed indicator set.
func ParseIndicator(s string) (Indicator, error) {
	ind := Indicator(s)
	if !ind.Valid() {
		return "", fmt.Errorf("unsupported indicator %q", s)
	}
	return ind, nil
}

// Valid reports whether the indicator belongs to the closed set.
func (i Indicator) Valid() bool {
	switch i {
	case IndicatorNDVI, IndicatorGlacier, IndicatorUrban, IndicatorTemperature,
		IndicatorGLOF, IndicatorForest, IndicatorLandslide, IndicatorEarthquake:
		return true
	}
	return false
}

func (i Indicator) String() string {
	return string(i)
}

// DataSource tags which Earth-observation program a record is attributed to.
type DataSource string

const (
	SourceMODIS    DataSource = "MODIS"
	SourceSentinel DataSource = "Sentinel"
	SourceLandsat  DataSource = "Landsat"
	SourceOther    DataSource = "Other"
)
