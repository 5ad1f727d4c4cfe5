// Package simulation generates deterministic-trend environmental records for
// the supported Nepal regions. Headline values follow calibrated regional
// trends with bounded random variation; spatial points scatter the same
// signal across each region's extent. Simulators never fail: internal faults
// degrade to fixed fallback records.
package simulation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/geography"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/logger"
	"github.com/Aaditya-Nepal00/EarthPulse-v.1/internal/models"
)

// baseYear anchors every trend formula; year offsets count from here.
const baseYear = 2000

// Geography provides the region lookups the engine needs for spatial
// sampling. The static geography package satisfies it; tests substitute
// fixtures to exercise lookup misses.
type Geography interface {
	Info(region models.Region) (models.RegionInfo, bool)
	BoundaryOf(region models.Region) (models.Boundary, bool)
}

// StaticGeography adapts the built-in region catalog to the Geography
// interface.
type StaticGeography struct{}

func (StaticGeography) Info(r models.Region) (models.RegionInfo, bool) {
	return geography.Info(r)
}

func (StaticGeography) BoundaryOf(r models.Region) (models.Boundary, bool) {
	return geography.BoundaryOf(r)
}

// Options tunes engine behavior. Zero values select production defaults.
type Options struct {
	// Rand overrides the randomness source. Defaults to a time-seeded one.
	Rand Rand
	// Geography overrides the region catalog lookup.
	Geography Geography
	// Clock drives the simulated delay. Defaults to the real clock.
	Clock clockwork.Clock
	// SimulateDelay turns on artificial upstream latency.
	SimulateDelay bool
	// DelayMS is the nominal artificial latency in milliseconds; actual
	// delays vary uniformly between 50% and 150% of it.
	DelayMS int
	// OnFallback is invoked whenever a simulator degrades to its fallback
	// record. Optional; feeds metrics.
	OnFallback func(indicator models.Indicator)
}

// simulateFunc adapts one typed simulator to the common record interface.
type simulateFunc func(ctx context.Context, region models.Region, year int) models.IndicatorRecord

// Engine produces environmental records for any (indicator, region, year)
// triple. All simulator methods share the same contract: they always return
// a usable record, absorbing internal faults into static fallbacks.
type Engine struct {
	rng   Rand
	geo   Geography
	clock clockwork.Clock
	log   *logger.Logger

	simulateDelay bool
	delayMS       int
	onFallback    func(models.Indicator)

	simulators map[models.Indicator]simulateFunc
}

// NewEngine builds an engine, filling in defaults for any unset option.
func NewEngine(log *logger.Logger, opts Options) *Engine {
	e := &Engine{
		rng:           opts.Rand,
		geo:           opts.Geography,
		clock:         opts.Clock,
		log:           log,
		simulateDelay: opts.SimulateDelay,
		delayMS:       opts.DelayMS,
		onFallback:    opts.OnFallback,
	}
	if e.rng == nil {
		e.rng = NewRand()
	}
	if e.geo == nil {
		e.geo = StaticGeography{}
	}
	if e.clock == nil {
		e.clock = clockwork.NewRealClock()
	}

	e.simulators = map[models.Indicator]simulateFunc{
		models.IndicatorNDVI: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateNDVI(ctx, r, y)
		},
		models.IndicatorGlacier: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateGlacier(ctx, r, y)
		},
		models.IndicatorUrban: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateUrban(ctx, r, y)
		},
		models.IndicatorTemperature: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateTemperature(ctx, r, y)
		},
		models.IndicatorGLOF: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateGLOF(ctx, r, y)
		},
		models.IndicatorForest: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateForest(ctx, r, y)
		},
		models.IndicatorLandslide: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateLandslide(ctx, r, y)
		},
		models.IndicatorEarthquake: func(ctx context.Context, r models.Region, y int) models.IndicatorRecord {
			return e.SimulateEarthquake(ctx, r, y)
		},
	}

	return e
}

// Simulate runs the simulator for any indicator through the dispatch table,
// so aggregation call sites never branch per indicator. The error return
// covers only indicators outside the closed set.
func (e *Engine) Simulate(ctx context.Context, indicator models.Indicator, region models.Region, year int) (models.IndicatorRecord, error) {
	sim, ok := e.simulators[indicator]
	if !ok {
		return nil, fmt.Errorf("unsupported indicator %q", indicator)
	}
	return sim(ctx, region, year), nil
}

// simulateAPIDelay suspends for a randomized interval to model upstream
// latency. The sleep is abandoned early if the caller's context expires.
func (e *Engine) simulateAPIDelay(ctx context.Context) {
	if !e.simulateDelay || e.delayMS <= 0 {
		return
	}

	ms := uniform(e.rng, 0.5*float64(e.delayMS), 1.5*float64(e.delayMS))
	select {
	case <-e.clock.After(time.Duration(ms * float64(time.Millisecond))):
	case <-ctx.Done():
	}
}

// logFallback records why a simulator degraded to its fallback record.
func (e *Engine) logFallback(indicator models.Indicator, region models.Region, year int, err error) {
	e.log.Error("simulation failed, returning fallback record", err, map[string]interface{}{
		"indicator": indicator.String(),
		"region":    region.String(),
		"year":      year,
	})
	if e.onFallback != nil {
		e.onFallback(indicator)
	}
}

// roundTo rounds v to n decimal places.
func roundTo(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
