package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorWindow(t *testing.T) {
	p := NewPerfCollector(3)

	for i := 0; i < 5; i++ {
		p.StartStep()
		p.EndStep()
	}

	if p.sampleCount != 3 {
		t.Errorf("sampleCount = %d, want window cap of 3", p.sampleCount)
	}

	stats := p.Stats()
	if stats.MinStepDuration > stats.AvgStepDuration || stats.AvgStepDuration > stats.MaxStepDuration {
		t.Errorf("min/avg/max out of order: %v / %v / %v",
			stats.MinStepDuration, stats.AvgStepDuration, stats.MaxStepDuration)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(10)
	stats := p.Stats()
	if stats.AvgStepDuration != 0 || stats.StepsPerSecond != 0 {
		t.Errorf("empty collector produced stats: %+v", stats)
	}
	if stats.FPS != 0 {
		t.Errorf("FPS = %v without frames, want 0", stats.FPS)
	}
}

func TestPerfCollectorDefaultWindow(t *testing.T) {
	p := NewPerfCollector(0)
	if p.windowSize != 60 {
		t.Errorf("windowSize = %d, want default 60", p.windowSize)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgStepDuration: 150 * time.Microsecond,
		MinStepDuration: 100 * time.Microsecond,
		MaxStepDuration: 300 * time.Microsecond,
		StepsPerSecond:  6000,
		FPS:             60,
	}
	row := stats.ToCSV(500)

	if row.WindowEnd != 500 {
		t.Errorf("WindowEnd = %d, want 500", row.WindowEnd)
	}
	if row.AvgStepUS != 150 || row.MinStepUS != 100 || row.MaxStepUS != 300 {
		t.Errorf("durations = %d/%d/%d us, want 150/100/300", row.AvgStepUS, row.MinStepUS, row.MaxStepUS)
	}
	if row.StepsPerSec != 6000 || row.FPS != 60 {
		t.Errorf("rates = %v/%v, want 6000/60", row.StepsPerSec, row.FPS)
	}
}
