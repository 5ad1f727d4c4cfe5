package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// ErrInvalidYearRange rejects comparisons whose start year is not strictly
// before the end year. It is the one caller-correctable error in this
// package.
var ErrInvalidYearRange = errors.New("start_year must be less than end_year")

// Compare simulates the indicator at both endpoint years and derives the
// change between them. Intermediate years are simulated when requested, but
// only the endpoints feed the delta.
func (e *Engine) Compare(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int, includeIntermediate bool) (models.ComparisonResult, error) {
	if startYear >= endYear {
		return models.ComparisonResult{}, ErrInvalidYearRange
	}

	years := []int{startYear, endYear}
	if includeIntermediate {
		years = []int{startYear}
		for y := startYear + 5; y < endYear; y += 5 {
			years = append(years, y)
		}
		years = append(years, endYear)
	}

	records, err := e.simulateYears(ctx, indicator, region, years)
	if err != nil {
		return models.ComparisonResult{}, err
	}

	baseline := records[0].PrimaryValue()
	comparison := records[len(records)-1].PrimaryValue()
	change := comparison - baseline

	// Percentage change is defined as zero for a zero baseline
	changePct := 0.0
	if baseline != 0 {
		changePct = change / baseline * 100
	}

	return models.ComparisonResult{
		ComparisonType:   "temporal",
		Region:           region,
		Indicator:        indicator,
		BaselineYear:     startYear,
		ComparisonYear:   endYear,
		BaselineValue:    roundTo(baseline, 3),
		ComparisonValue:  roundTo(comparison, 3),
		ChangeAmount:     roundTo(change, 3),
		ChangePercentage: roundTo(changePct, 2),
		TrendSummary:     TrendSummary(indicator, region, startYear, endYear),
		ImpactAssessment: fmt.Sprintf("The %s indicator shows significant change over %d years", indicator, endYear-startYear),
	}, nil
}

// TrendSeries simulates the indicator at five-year steps across the span and
// returns the points in chronological order. The end year is always included
// even when it does not land on a step.
func (e *Engine) TrendSeries(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int) ([]models.TrendPoint, error) {
	if startYear > endYear {
		return nil, ErrInvalidYearRange
	}

	years := make([]int, 0, (endYear-startYear)/5+2)
	for y := startYear; y <= endYear; y += 5 {
		years = append(years, y)
	}
	if years[len(years)-1] != endYear {
		years = append(years, endYear)
	}

	records, err := e.simulateYears(ctx, indicator, region, years)
	if err != nil {
		return nil, err
	}

	points := make([]models.TrendPoint, len(records))
	for i, record := range records {
		points[i] = models.TrendPoint{
			Year:  years[i],
			Value: record.PrimaryValue(),
			Unit:  record.PrimaryUnit(),
			Trend: record.SeriesLabel(),
		}
	}
	return points, nil
}

// Summarize runs all eight simulators concurrently and assembles the full
// environmental picture for one region and year.
func (e *Engine) Summarize(ctx context.Context, region models.Region, year int) models.EnvironmentalSummary {
	summary := models.EnvironmentalSummary{Year: year, Region: region}

	// Each goroutine writes its own field, so no further synchronization is
	// needed beyond the wait.
	var wg sync.WaitGroup
	wg.Add(8)
	go func() { defer wg.Done(); summary.NDVIData = e.SimulateNDVI(ctx, region, year) }()
	go func() { defer wg.Done(); summary.GlacierData = e.SimulateGlacier(ctx, region, year) }()
	go func() { defer wg.Done(); summary.UrbanData = e.SimulateUrban(ctx, region, year) }()
	go func() { defer wg.Done(); summary.TemperatureData = e.SimulateTemperature(ctx, region, year) }()
	go func() { defer wg.Done(); summary.GLOFData = e.SimulateGLOF(ctx, region, year) }()
	go func() { defer wg.Done(); summary.ForestData = e.SimulateForest(ctx, region, year) }()
	go func() { defer wg.Done(); summary.LandslideData = e.SimulateLandslide(ctx, region, year) }()
	go func() { defer wg.Done(); summary.EarthquakeData = e.SimulateEarthquake(ctx, region, year) }()
	wg.Wait()

	return summary
}

// simulateYears runs one simulation per year concurrently and returns the
// records in input order.
func (e *Engine) simulateYears(ctx context.Context, indicator models.Indicator, region models.Region, years []int) ([]models.IndicatorRecord, error) {
	if _, ok := e.simulators[indicator]; !ok {
		return nil, fmt.Errorf("unsupported indicator %q", indicator)
	}

	records := make([]models.IndicatorRecord, len(years))
	var wg sync.WaitGroup
	for i, year := range years {
		wg.Add(1)
		go func(i, year int) {
			defer wg.Done()
			record, _ := e.Simulate(ctx, indicator, region, year)
			records[i] = record
		}(i, year)
	}
	wg.Wait()

	return records, nil
}

// TrendSummary renders the narrative line attached to comparison results.
func TrendSummary(indicator models.Indicator, region models.Region, startYear, endYear int) string {
	years := endYear - startYear
	name := region.DisplayName()

	switch indicator {
	case models.IndicatorNDVI:
		return fmt.Sprintf("Vegetation health changed over %d years in %s", years, name)
	case models.IndicatorGlacier:
		return fmt.Sprintf("Glacier coverage retreated significantly over %d years in %s", years, name)
	case models.IndicatorUrban:
		return fmt.Sprintf("Urban areas expanded dramatically over %d years in %s", years, name)
	case models.IndicatorTemperature:
		return fmt.Sprintf("Temperatures warmed consistently over %d years in %s", years, name)
	}
	return "Environmental changes observed over time"
}
