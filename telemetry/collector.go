// Package telemetry collects windowed simulation statistics and writes them
// to structured logs and CSV files for offline analysis.
package telemetry

// PopulationSample is a point-in-time sample of the living population,
// gathered by the engine at window boundaries.
type PopulationSample struct {
	Herbivores int
	Omnivores  int
	Carnivores int

	Energies []float64
	Ages     []float64
}

// Collector accumulates event counts within step windows and produces
// WindowStats. All methods are safe on a nil receiver, so the engine can
// record events unconditionally whether or not telemetry is attached.
type Collector struct {
	windowSteps int64
	windowStart int64

	births  int
	deaths  int
	attacks int
	kills   int
}

// NewCollector creates a collector that flushes every windowSteps steps.
func NewCollector(windowSteps int64) *Collector {
	if windowSteps < 1 {
		windowSteps = 1
	}
	return &Collector{windowSteps: windowSteps}
}

// RecordBirth counts one offspring spawned.
func (c *Collector) RecordBirth() {
	if c == nil {
		return
	}
	c.births++
}

// RecordDeath counts one death from any cause.
func (c *Collector) RecordDeath() {
	if c == nil {
		return
	}
	c.deaths++
}

// RecordAttack counts one attack that landed damage.
func (c *Collector) RecordAttack() {
	if c == nil {
		return
	}
	c.attacks++
}

// RecordKill counts one death caused directly by an attack.
func (c *Collector) RecordKill() {
	if c == nil {
		return
	}
	c.kills++
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(step int64) bool {
	if c == nil {
		return false
	}
	return step-c.windowStart >= c.windowSteps
}

// Flush produces a WindowStats from the accumulated counters and the given
// population sample, then resets the counters for the next window.
func (c *Collector) Flush(step int64, year float64, sample PopulationSample) WindowStats {
	if c == nil {
		return WindowStats{}
	}

	var killRate float64
	if c.attacks > 0 {
		killRate = float64(c.kills) / float64(c.attacks)
	}

	energy := summarize(sample.Energies)
	age := summarize(sample.Ages)

	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   step,
		Year:        year,

		Herbivores: sample.Herbivores,
		Omnivores:  sample.Omnivores,
		Carnivores: sample.Carnivores,

		Births:   c.births,
		Deaths:   c.deaths,
		Attacks:  c.attacks,
		Kills:    c.kills,
		KillRate: killRate,

		EnergyMean: energy.mean,
		EnergyStd:  energy.std,
		EnergyP10:  energy.p10,
		EnergyP50:  energy.p50,
		EnergyP90:  energy.p90,

		AgeMean: age.mean,
		AgeP50:  age.p50,
		AgeP90:  age.p90,
	}

	c.windowStart = step
	c.births = 0
	c.deaths = 0
	c.attacks = 0
	c.kills = 0

	return stats
}

// WindowSteps returns the number of steps per window.
func (c *Collector) WindowSteps() int64 {
	if c == nil {
		return 0
	}
	return c.windowSteps
}
