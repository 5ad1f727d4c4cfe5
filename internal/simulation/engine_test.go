package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// missingGeography simulates a region absent from the catalog.
type missingGeography struct{}

func (missingGeography) Info(models.Region) (models.RegionInfo, bool) {
	return models.RegionInfo{}, false
}

func (missingGeography) BoundaryOf(models.Region) (models.Boundary, bool) {
	return nil, false
}

// panickyGeography blows up on every lookup.
type panickyGeography struct{}

func (panickyGeography) Info(models.Region) (models.RegionInfo, bool) {
	panic("geography offline")
}

func (panickyGeography) BoundaryOf(models.Region) (models.Boundary, bool) {
	panic("geography offline")
}

// explodingRand panics on first use, exercising the fallback path.
type explodingRand struct{}

func (explodingRand) Float64() float64 { panic("rng failure") }
func (explodingRand) Intn(int) int     { panic("rng failure") }

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = NewSeededRand(42)
	}
	return NewEngine(logger.New("test"), opts)
}

func TestSimulateNDVI_WithinBounds(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for _, region := range models.Regions() {
		for year := 2000; year <= 2025; year++ {
			rec := eng.SimulateNDVI(ctx, region, year)

			assert.Equal(t, year, rec.Year)
			assert.Equal(t, region, rec.Region)
			assert.GreaterOrEqual(t, rec.AverageNDVI, 0.0)
			assert.LessOrEqual(t, rec.AverageNDVI, 1.0)
			assert.LessOrEqual(t, rec.MinNDVI, rec.AverageNDVI)
			assert.GreaterOrEqual(t, rec.MaxNDVI, rec.AverageNDVI)
			assert.GreaterOrEqual(t, rec.VegetationCoveragePercent, 0.0)
			assert.LessOrEqual(t, rec.VegetationCoveragePercent, 100.0)
			assert.Contains(t, []string{"increasing", "stable"}, rec.Trend)
			assert.Equal(t, models.SourceMODIS, rec.Source)
		}
	}
}

func TestSimulateNDVI_KathmanduBaseline(t *testing.T) {
	// Kathmandu factor 0.8 against base 0.65 centers year-2000 NDVI at 0.52,
	// with random variation bounded by ±0.05
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		rec := eng.SimulateNDVI(ctx, models.RegionKathmanduValley, 2000)
		assert.InDelta(t, 0.52, rec.AverageNDVI, 0.0501)
	}
}

func TestSimulateGlacier_WithinBounds(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for _, region := range models.Regions() {
		for year := 2000; year <= 2025; year++ {
			rec := eng.SimulateGlacier(ctx, region, year)

			assert.GreaterOrEqual(t, rec.GlacierAreaKm2, 0.0)
			assert.GreaterOrEqual(t, rec.IceThicknessM, 0.0)
			assert.Greater(t, rec.RetreatRateMPerYr, 0.0)
			assert.Equal(t, "decreasing", rec.Trend)
			assert.Equal(t, models.SourceSentinel, rec.Source)
		}
	}
}

func TestSimulateGlacier_KathmanduHasNoGlaciers(t *testing.T) {
	// The valley's glacier factor is zero, so area is exactly zero every year
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for _, year := range []int{2000, 2010, 2025} {
		rec := eng.SimulateGlacier(ctx, models.RegionKathmanduValley, year)
		assert.Zero(t, rec.GlacierAreaKm2)
	}
}

func TestSimulateGlacier_DecreasingInExpectation(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	meanArea := func(year int) float64 {
		var sum float64
		for i := 0; i < 50; i++ {
			sum += eng.SimulateGlacier(ctx, models.RegionNepalHimalayas, year).GlacierAreaKm2
		}
		return sum / 50
	}

	assert.Greater(t, meanArea(2000), meanArea(2025))
}

func TestSimulateUrban_WithinBounds(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for _, region := range models.Regions() {
		for year := 2000; year <= 2025; year++ {
			rec := eng.SimulateUrban(ctx, region, year)

			assert.Greater(t, rec.UrbanAreaKm2, 0.0)
			assert.Greater(t, rec.BuiltUpPercentage, 0.0)
			assert.LessOrEqual(t, rec.BuiltUpPercentage, 100.0)
			assert.Greater(t, rec.PopulationEstimate, 0)
			assert.GreaterOrEqual(t, rec.NightlightIntensity, 2.0)
			assert.LessOrEqual(t, rec.NightlightIntensity, 10.0)
			assert.Equal(t, "expanding", rec.Trend)
			assert.Equal(t, models.SourceLandsat, rec.Source)
		}
	}
}

func TestSimulateUrban_IncreasingInExpectation(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	meanArea := func(year int) float64 {
		var sum float64
		for i := 0; i < 50; i++ {
			sum += eng.SimulateUrban(ctx, models.RegionNepalHimalayas, year).UrbanAreaKm2
		}
		return sum / 50
	}

	assert.Less(t, meanArea(2000), meanArea(2025))
}

func TestSimulateUrban_PopulationScalesWithArea(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rec := eng.SimulateUrban(context.Background(), models.RegionKathmanduValley, 2020)

	// Population derives from the unrounded area at 1500 people per km²
	assert.InDelta(t, rec.UrbanAreaKm2*1500, float64(rec.PopulationEstimate), 76)
}

func TestSimulateTemperature_WithinBounds(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	for _, region := range models.Regions() {
		for year := 2000; year <= 2025; year++ {
			rec := eng.SimulateTemperature(ctx, region, year)

			assert.InDelta(t, rec.AverageTempC-5, rec.MinTempC, 0.051)
			assert.InDelta(t, rec.AverageTempC+5, rec.MaxTempC, 0.051)
			assert.Equal(t, 0.5, rec.HeatIslandEffect)
			assert.Equal(t, "warming", rec.Trend)
			assert.Equal(t, models.SourceMODIS, rec.Source)
		}
	}
}

func TestSimulateGLOF_RiskThreshold(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	tests := []struct {
		year int
		want string
	}{
		{2000, "Medium"},
		{2015, "Medium"},
		{2016, "High"},
		{2025, "High"},
	}

	for _, tt := range tests {
		rec := eng.SimulateGLOF(ctx, models.RegionNepalHimalayas, tt.year)

		assert.Equal(t, tt.want, rec.RiskLevel, "year %d", tt.year)
		assert.Equal(t, 1.5, rec.LakeAreaKm2)
		assert.Equal(t, 0.02, rec.ExpansionRate)
		assert.Equal(t, "increasing", rec.Trend)
		assert.NotNil(t, rec.DataPoints)
		assert.Empty(t, rec.DataPoints)
	}
}

func TestSimulateEarthquake_RecoveryThreshold(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	assert.Equal(t, 100.0, eng.SimulateEarthquake(ctx, models.RegionNepalHimalayas, 2015).RecoveryPercentage)
	assert.Equal(t, 80.0, eng.SimulateEarthquake(ctx, models.RegionNepalHimalayas, 2016).RecoveryPercentage)
}

func TestSimulateForest_Constants(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rec := eng.SimulateForest(context.Background(), models.RegionAnnapurna, 2012)

	assert.Equal(t, 5000.0, rec.ForestCoverKm2)
	assert.Equal(t, 0.5, rec.DeforestationRate)
	assert.Equal(t, 2, rec.IllegalLoggingHotspots)
	assert.Equal(t, 1000.0, rec.CommunityForestArea)
	assert.Equal(t, "stable", rec.Trend)
	assert.Empty(t, rec.DataPoints)
}

func TestSimulateLandslide_Constants(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rec := eng.SimulateLandslide(context.Background(), models.RegionEverest, 2018)

	assert.Equal(t, 0.4, rec.SusceptibilityIndex)
	assert.Equal(t, 50.0, rec.HighRiskAreaKm2)
	assert.Equal(t, 0.8, rec.RainfallCorrelation)
	assert.Equal(t, models.SourceOther, rec.Source)
	assert.Empty(t, rec.DataPoints)
}

func TestSimulators_GeographyMissYieldsEmptyPoints(t *testing.T) {
	// A lookup miss degrades spatial detail to empty, scalars are unaffected
	eng := newTestEngine(t, Options{Geography: missingGeography{}})
	ctx := context.Background()

	ndvi := eng.SimulateNDVI(ctx, models.RegionNepalHimalayas, 2000)
	assert.NotNil(t, ndvi.DataPoints)
	assert.Empty(t, ndvi.DataPoints)
	assert.InDelta(t, 0.65, ndvi.AverageNDVI, 0.0501)

	glacier := eng.SimulateGlacier(ctx, models.RegionNepalHimalayas, 2000)
	assert.Empty(t, glacier.DataPoints)
	assert.Greater(t, glacier.GlacierAreaKm2, 0.0)

	urban := eng.SimulateUrban(ctx, models.RegionNepalHimalayas, 2000)
	assert.Empty(t, urban.DataPoints)
	assert.Greater(t, urban.UrbanAreaKm2, 0.0)

	temp := eng.SimulateTemperature(ctx, models.RegionNepalHimalayas, 2000)
	assert.Empty(t, temp.DataPoints)
	assert.InDelta(t, 17.5, temp.AverageTempC, 1.51)
}

func TestSimulators_GeographyPanicAbsorbed(t *testing.T) {
	// A blown-up lookup is contained at the spatial layer; the record still
	// carries computed scalars, not the fallback values
	eng := newTestEngine(t, Options{Geography: panickyGeography{}})

	rec := eng.SimulateNDVI(context.Background(), models.RegionNepalHimalayas, 2000)

	assert.Empty(t, rec.DataPoints)
	assert.InDelta(t, 0.65, rec.AverageNDVI, 0.0501)
	assert.Greater(t, rec.MinNDVI, 0.4, "fallback record would carry min_ndvi 0.2")
}

func TestSimulators_InternalFaultReturnsFallback(t *testing.T) {
	eng := newTestEngine(t, Options{Rand: explodingRand{}})
	ctx := context.Background()

	t.Run("ndvi", func(t *testing.T) {
		rec := eng.SimulateNDVI(ctx, models.RegionEverest, 2010)
		assert.Equal(t, 0.6, rec.AverageNDVI)
		assert.Equal(t, 0.2, rec.MinNDVI)
		assert.Equal(t, 0.9, rec.MaxNDVI)
		assert.Equal(t, 60.0, rec.VegetationCoveragePercent)
		assert.Equal(t, "stable", rec.Trend)
		assert.Equal(t, 2010, rec.Year)
		assert.Equal(t, models.RegionEverest, rec.Region)
		assert.Empty(t, rec.DataPoints)
	})

	t.Run("glacier", func(t *testing.T) {
		rec := eng.SimulateGlacier(ctx, models.RegionEverest, 2010)
		assert.Equal(t, 1500.0, rec.GlacierAreaKm2)
		assert.Equal(t, 100.0, rec.IceThicknessM)
		assert.Equal(t, 15.0, rec.RetreatRateMPerYr)
	})

	t.Run("urban", func(t *testing.T) {
		rec := eng.SimulateUrban(ctx, models.RegionEverest, 2010)
		assert.Equal(t, 200.0, rec.UrbanAreaKm2)
		assert.Equal(t, 5.0, rec.BuiltUpPercentage)
		assert.Equal(t, 500000, rec.PopulationEstimate)
		assert.Equal(t, 5.0, rec.NightlightIntensity)
	})

	t.Run("temperature", func(t *testing.T) {
		rec := eng.SimulateTemperature(ctx, models.RegionEverest, 2010)
		assert.Equal(t, 20.0, rec.AverageTempC)
		assert.Equal(t, 15.0, rec.MinTempC)
		assert.Equal(t, 25.0, rec.MaxTempC)
	})
}

func TestFallbackHook_InvokedPerDegradedSimulation(t *testing.T) {
	var fallbacks []models.Indicator
	eng := newTestEngine(t, Options{
		Rand: explodingRand{},
		OnFallback: func(ind models.Indicator) {
			fallbacks = append(fallbacks, ind)
		},
	})
	ctx := context.Background()

	eng.SimulateNDVI(ctx, models.RegionEverest, 2010)
	eng.SimulateGlacier(ctx, models.RegionEverest, 2010)

	assert.Equal(t, []models.Indicator{models.IndicatorNDVI, models.IndicatorGlacier}, fallbacks)
}

func TestFallbackHook_NotInvokedOnSuccess(t *testing.T) {
	called := false
	eng := newTestEngine(t, Options{
		OnFallback: func(models.Indicator) { called = true },
	})

	eng.SimulateNDVI(context.Background(), models.RegionEverest, 2010)

	assert.False(t, called)
}

func TestSimulate_DispatchAllIndicators(t *testing.T) {
	eng := newTestEngine(t, Options{})
	ctx := context.Background()

	wantUnits := map[models.Indicator]string{
		models.IndicatorNDVI:        "NDVI",
		models.IndicatorGlacier:     "km²",
		models.IndicatorUrban:       "km²",
		models.IndicatorTemperature: "°C",
		models.IndicatorGLOF:        "km²",
		models.IndicatorForest:      "km²",
		models.IndicatorLandslide:   "Index",
		models.IndicatorEarthquake:  "%",
	}

	for _, indicator := range models.Indicators() {
		rec, err := eng.Simulate(ctx, indicator, models.RegionNepalHimalayas, 2020)

		require.NoError(t, err, "indicator %s", indicator)
		require.NotNil(t, rec)
		assert.Equal(t, wantUnits[indicator], rec.PrimaryUnit())
	}
}

func TestSimulate_UnknownIndicator(t *testing.T) {
	eng := newTestEngine(t, Options{})

	rec, err := eng.Simulate(context.Background(), models.Indicator("rainfall"), models.RegionNepalHimalayas, 2020)

	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestSimulateAPIDelay_WaitsOnClock(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	eng := newTestEngine(t, Options{
		Clock:         fakeClock,
		SimulateDelay: true,
		DelayMS:       100,
	})

	done := make(chan models.NDVIData, 1)
	go func() {
		done <- eng.SimulateNDVI(context.Background(), models.RegionNepalHimalayas, 2020)
	}()

	// The simulator must be parked on the clock before time moves
	fakeClock.BlockUntil(1)
	fakeClock.Advance(150 * time.Millisecond)

	rec := <-done
	assert.Equal(t, 2020, rec.Year)
}

func TestSimulateAPIDelay_AbandonedOnContextCancel(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	eng := newTestEngine(t, Options{
		Clock:         fakeClock,
		SimulateDelay: true,
		DelayMS:       100,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan models.NDVIData, 1)
	go func() {
		done <- eng.SimulateNDVI(ctx, models.RegionNepalHimalayas, 2020)
	}()

	fakeClock.BlockUntil(1)
	cancel()

	// The record still arrives; only the sleep is cut short
	rec := <-done
	assert.Equal(t, 2020, rec.Year)
}

func TestSimulateStubs_NoDelay(t *testing.T) {
	// Stub indicators return without touching the clock even when the delay
	// is enabled; a fake clock that never advances would hang them otherwise
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	eng := newTestEngine(t, Options{
		Clock:         fakeClock,
		SimulateDelay: true,
		DelayMS:       100,
	})
	ctx := context.Background()

	assert.Equal(t, "High", eng.SimulateGLOF(ctx, models.RegionNepalHimalayas, 2020).RiskLevel)
	assert.Equal(t, 5000.0, eng.SimulateForest(ctx, models.RegionNepalHimalayas, 2020).ForestCoverKm2)
	assert.Equal(t, 0.4, eng.SimulateLandslide(ctx, models.RegionNepalHimalayas, 2020).SusceptibilityIndex)
	assert.Equal(t, 80.0, eng.SimulateEarthquake(ctx, models.RegionNepalHimalayas, 2020).RecoveryPercentage)
}
