package earthdata

import (
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// Product identifies a NASA CMR dataset used to check real-data coverage
// for an indicator.
type Product struct {
	// ShortName is the CMR collection short name, e.g. MOD13Q1.
	ShortName string
	// Version pins a collection version; empty matches any.
	Version string
	// GranulePageSize caps how many granules a yearly search requests.
	GranulePageSize int
}

// products maps indicators to their backing CMR datasets. Derived indicators
// (GLOF risk, forest cover, landslide susceptibility, earthquake recovery)
// have no single upstream dataset and are absent.
var products = map[models.Indicator]Product{
	models.IndicatorNDVI:        {ShortName: "MOD13Q1", Version: "061", GranulePageSize: 10},
	models.IndicatorGlacier:     {ShortName: "MOD10A2", GranulePageSize: 5},
	models.IndicatorUrban:       {ShortName: "VNP46A2", GranulePageSize: 5},
	models.IndicatorTemperature: {ShortName: "MOD11A2", GranulePageSize: 5},
}

// ProductFor returns the CMR product backing an indicator.
func ProductFor(indicator models.Indicator) (Product, bool) {
	p, ok := products[indicator]
	return p, ok
}

// ProductShortNames lists the configured dataset short names in indicator
// catalog order.
func ProductShortNames() []string {
	names := make([]string, 0, len(products))
	for _, ind := range models.Indicators() {
		if p, ok := products[ind]; ok {
			names = append(names, p.ShortName)
		}
	}
	return names
}
