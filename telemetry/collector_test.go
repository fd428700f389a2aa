package telemetry

import (
	"math"
	"testing"
)

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.RecordBirth()
	c.RecordDeath()
	c.RecordAttack()
	c.RecordKill()

	if c.ShouldFlush(1000) {
		t.Error("nil collector wants to flush")
	}
	if got := c.WindowSteps(); got != 0 {
		t.Errorf("nil WindowSteps = %d, want 0", got)
	}
	if got := c.Flush(100, 1.0, PopulationSample{}); got != (WindowStats{}) {
		t.Errorf("nil Flush = %+v, want zero stats", got)
	}
}

func TestShouldFlushCadence(t *testing.T) {
	c := NewCollector(250)

	if c.ShouldFlush(249) {
		t.Error("flushed before window complete")
	}
	if !c.ShouldFlush(250) {
		t.Error("did not flush at window boundary")
	}

	c.Flush(250, 2.5, PopulationSample{})
	if c.ShouldFlush(499) {
		t.Error("flushed early after reset")
	}
	if !c.ShouldFlush(500) {
		t.Error("did not flush at second window boundary")
	}
}

func TestCollectorFloorsWindow(t *testing.T) {
	c := NewCollector(0)
	if got := c.WindowSteps(); got != 1 {
		t.Errorf("WindowSteps = %d, want floor of 1", got)
	}
}

func TestFlushCountsAndResets(t *testing.T) {
	c := NewCollector(100)

	for i := 0; i < 3; i++ {
		c.RecordBirth()
	}
	for i := 0; i < 2; i++ {
		c.RecordDeath()
	}
	for i := 0; i < 4; i++ {
		c.RecordAttack()
	}
	c.RecordKill()

	sample := PopulationSample{
		Herbivores: 5,
		Carnivores: 2,
		Omnivores:  1,
		Energies:   []float64{40, 50, 60},
		Ages:       []float64{10, 20, 30},
	}
	stats := c.Flush(100, 1.0, sample)

	if stats.Births != 3 || stats.Deaths != 2 || stats.Attacks != 4 || stats.Kills != 1 {
		t.Errorf("event counts = %d/%d/%d/%d, want 3/2/4/1",
			stats.Births, stats.Deaths, stats.Attacks, stats.Kills)
	}
	if math.Abs(stats.KillRate-0.25) > 1e-12 {
		t.Errorf("KillRate = %v, want 0.25", stats.KillRate)
	}
	if stats.Herbivores != 5 || stats.Carnivores != 2 || stats.Omnivores != 1 {
		t.Errorf("population = %d/%d/%d, want 5/2/1",
			stats.Herbivores, stats.Carnivores, stats.Omnivores)
	}
	if stats.WindowStart != 0 || stats.WindowEnd != 100 {
		t.Errorf("window = [%d,%d], want [0,100]", stats.WindowStart, stats.WindowEnd)
	}
	if math.Abs(stats.EnergyMean-50) > 1e-12 {
		t.Errorf("EnergyMean = %v, want 50", stats.EnergyMean)
	}

	// Counters reset for the next window.
	next := c.Flush(200, 2.0, PopulationSample{})
	if next.Births != 0 || next.Deaths != 0 || next.Attacks != 0 || next.Kills != 0 {
		t.Errorf("counters leaked into next window: %+v", next)
	}
	if next.WindowStart != 100 {
		t.Errorf("WindowStart = %d, want 100", next.WindowStart)
	}
}

func TestFlushZeroAttacksNoKillRate(t *testing.T) {
	c := NewCollector(10)
	stats := c.Flush(10, 0.1, PopulationSample{})
	if stats.KillRate != 0 {
		t.Errorf("KillRate = %v with zero attacks, want 0", stats.KillRate)
	}
}
