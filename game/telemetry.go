package game

import "log/slog"

// serviceTelemetry flushes the stats window when due and writes CSV output.
func (g *Game) serviceTelemetry() {
	step := g.sim.Step()
	if !g.collector.ShouldFlush(step) {
		return
	}

	stats := g.collector.Flush(step, g.sim.Year(), g.sim.Sample())
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, step); err != nil {
		slog.Error("writing perf", "error", err)
	}
}
