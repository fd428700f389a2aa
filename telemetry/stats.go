package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one step window.
type WindowStats struct {
	WindowStart int64   `csv:"-"`
	WindowEnd   int64   `csv:"window_end"`
	Year        float64 `csv:"year"`

	// Population counts at window end, split by diet.
	Herbivores int `csv:"herbivores"`
	Omnivores  int `csv:"omnivores"`
	Carnivores int `csv:"carnivores"`

	// Events during the window.
	Births   int     `csv:"births"`
	Deaths   int     `csv:"deaths"`
	Attacks  int     `csv:"attacks"`
	Kills    int     `csv:"kills"`
	KillRate float64 `csv:"kill_rate"`

	// Energy distribution sampled at window end.
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Age distribution sampled at window end.
	AgeMean float64 `csv:"age_mean"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`
}

// distSummary holds the summary statistics of one sampled distribution.
type distSummary struct {
	mean, std, p10, p50, p90 float64
}

// summarize computes mean, standard deviation, and percentiles of a sample.
// An empty sample yields all zeros.
func summarize(values []float64) distSummary {
	if len(values) == 0 {
		return distSummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := distSummary{
		mean: stat.Mean(sorted, nil),
		p10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		p50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		p90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStart),
		slog.Int64("window_end", s.WindowEnd),
		slog.Float64("year", s.Year),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("omnivores", s.Omnivores),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("attacks", s.Attacks),
		slog.Int("kills", s.Kills),
		slog.Float64("kill_rate", s.KillRate),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("age_p50", s.AgeP50),
		slog.Float64("age_p90", s.AgeP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEnd,
		"year", s.Year,
		"herbivores", s.Herbivores,
		"omnivores", s.Omnivores,
		"carnivores", s.Carnivores,
		"births", s.Births,
		"deaths", s.Deaths,
		"attacks", s.Attacks,
		"kills", s.Kills,
		"kill_rate", s.KillRate,
		"energy_mean", s.EnergyMean,
		"energy_std", s.EnergyStd,
		"energy_p10", s.EnergyP10,
		"energy_p50", s.EnergyP50,
		"energy_p90", s.EnergyP90,
		"age_mean", s.AgeMean,
		"age_p50", s.AgeP50,
		"age_p90", s.AgeP90,
	)
}
