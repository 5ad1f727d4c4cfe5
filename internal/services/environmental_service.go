package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/config"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/observability"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/simulation"
)

// Service-level errors
var (
	ErrYearOutOfRange = errors.New("year out of supported range")

	// ErrInvalidYearRange re-exports the engine's ordering error so handlers
	// depend on one package for error mapping.
	ErrInvalidYearRange = simulation.ErrInvalidYearRange
)

// Simulator is the engine surface the service consumes. The simulation
// engine satisfies it; tests substitute mocks.
type Simulator interface {
	Simulate(ctx context.Context, indicator models.Indicator, region models.Region, year int) (models.IndicatorRecord, error)
	Summarize(ctx context.Context, region models.Region, year int) models.EnvironmentalSummary
	Compare(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int, includeIntermediate bool) (models.ComparisonResult, error)
	TrendSeries(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int) ([]models.TrendPoint, error)
}

// EnvironmentalService defines the interface for environmental data operations.
type EnvironmentalService interface {
	// GetIndicator simulates one indicator record for a region and year.
	// Returns ErrYearOutOfRange if the year falls outside the served window.
	GetIndicator(ctx context.Context, indicator models.Indicator, region models.Region, year int) (models.IndicatorRecord, error)

	// GetSummary simulates all indicators for a region and year.
	// Returns ErrYearOutOfRange if the year falls outside the served window.
	GetSummary(ctx context.Context, region models.Region, year int) (models.EnvironmentalSummary, error)

	// Compare contrasts an indicator between two years.
	// Returns ErrYearOutOfRange if either year falls outside the served window.
	// Returns ErrInvalidYearRange unless startYear < endYear.
	Compare(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int, includeIntermediate bool) (models.ComparisonResult, error)

	// GetTrends samples an indicator at five-year steps across a span.
	// Returns ErrYearOutOfRange if either year falls outside the served window.
	// Returns ErrInvalidYearRange if startYear > endYear.
	GetTrends(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int) ([]models.TrendPoint, error)
}

// environmentalService is the concrete implementation of EnvironmentalService.
type environmentalService struct {
	sim     Simulator
	metrics *observability.Metrics
	log     *logger.Logger
	yearMin int
	yearMax int
}

// NewEnvironmentalService creates a new instance of EnvironmentalService.
func NewEnvironmentalService(sim Simulator, data config.DataConfig, metrics *observability.Metrics, log *logger.Logger) EnvironmentalService {
	return &environmentalService{
		sim:     sim,
		metrics: metrics,
		log:     log,
		yearMin: data.YearMin,
		yearMax: data.YearMax,
	}
}

// GetIndicator simulates one indicator record for a region and year.
// It validates the year window, logs the operation, and records metrics.
func (s *environmentalService) GetIndicator(ctx context.Context, indicator models.Indicator, region models.Region, year int) (models.IndicatorRecord, error) {
	if err := s.validateYear(year); err != nil {
		return nil, err
	}

	s.log.Info("Simulating indicator data", map[string]interface{}{
		"indicator": indicator.String(),
		"region":    region.String(),
		"year":      year,
	})

	start := time.Now()
	record, err := s.sim.Simulate(ctx, indicator, region, year)
	if err != nil {
		s.log.Error("Failed to simulate indicator", err, map[string]interface{}{
			"indicator": indicator.String(),
			"region":    region.String(),
			"year":      year,
		})
		return nil, fmt.Errorf("failed to simulate %s: %w", indicator, err)
	}

	s.metrics.SimulationsTotal.WithLabelValues(indicator.String(), region.String()).Inc()
	s.metrics.SimulationDuration.WithLabelValues(indicator.String()).Observe(time.Since(start).Seconds())

	return record, nil
}

// GetSummary simulates all indicators for a region and year.
func (s *environmentalService) GetSummary(ctx context.Context, region models.Region, year int) (models.EnvironmentalSummary, error) {
	if err := s.validateYear(year); err != nil {
		return models.EnvironmentalSummary{}, err
	}

	s.log.Info("Simulating environmental summary", map[string]interface{}{
		"region": region.String(),
		"year":   year,
	})

	summary := s.sim.Summarize(ctx, region, year)

	for _, indicator := range models.Indicators() {
		s.metrics.SimulationsTotal.WithLabelValues(indicator.String(), region.String()).Inc()
	}

	return summary, nil
}

// Compare contrasts an indicator between two years.
func (s *environmentalService) Compare(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int, includeIntermediate bool) (models.ComparisonResult, error) {
	if err := s.validateYear(startYear); err != nil {
		return models.ComparisonResult{}, err
	}
	if err := s.validateYear(endYear); err != nil {
		return models.ComparisonResult{}, err
	}

	s.log.Info("Comparing indicator across years", map[string]interface{}{
		"indicator":  indicator.String(),
		"region":     region.String(),
		"start_year": startYear,
		"end_year":   endYear,
	})

	result, err := s.sim.Compare(ctx, indicator, region, startYear, endYear, includeIntermediate)
	if err != nil {
		return models.ComparisonResult{}, fmt.Errorf("failed to compare %s: %w", indicator, err)
	}

	s.metrics.SimulationsTotal.WithLabelValues(indicator.String(), region.String()).Inc()

	return result, nil
}

// GetTrends samples an indicator at five-year steps across a span.
func (s *environmentalService) GetTrends(ctx context.Context, indicator models.Indicator, region models.Region, startYear, endYear int) ([]models.TrendPoint, error) {
	if err := s.validateYear(startYear); err != nil {
		return nil, err
	}
	if err := s.validateYear(endYear); err != nil {
		return nil, err
	}

	s.log.Info("Building trend series", map[string]interface{}{
		"indicator":  indicator.String(),
		"region":     region.String(),
		"start_year": startYear,
		"end_year":   endYear,
	})

	points, err := s.sim.TrendSeries(ctx, indicator, region, startYear, endYear)
	if err != nil {
		return nil, fmt.Errorf("failed to build trends for %s: %w", indicator, err)
	}

	s.metrics.SimulationsTotal.WithLabelValues(indicator.String(), region.String()).Inc()

	return points, nil
}

// validateYear checks the year against the served window.
func (s *environmentalService) validateYear(year int) error {
	if year < s.yearMin || year > s.yearMax {
		s.log.Warn("Year outside supported window", map[string]interface{}{
			"year":     year,
			"year_min": s.yearMin,
			"year_max": s.yearMax,
		})
		return fmt.Errorf("%w: year must be between %d and %d, got %d",
			ErrYearOutOfRange, s.yearMin, s.yearMax, year)
	}
	return nil
}
