package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   distSummary
	}{
		{
			name:   "empty",
			values: nil,
			want:   distSummary{},
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   distSummary{mean: 42, std: 0, p10: 42, p50: 42, p90: 42},
		},
		{
			name:   "three values",
			values: []float64{3, 1, 2},
			want:   distSummary{mean: 2, std: 1, p10: 1, p50: 2, p90: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(tt.values)
			fields := []struct {
				name      string
				got, want float64
			}{
				{"mean", got.mean, tt.want.mean},
				{"std", got.std, tt.want.std},
				{"p10", got.p10, tt.want.p10},
				{"p50", got.p50, tt.want.p50},
				{"p90", got.p90, tt.want.p90},
			}
			for _, f := range fields {
				if math.Abs(f.got-f.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
				}
			}
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5}
	summarize(values)
	if values[0] != 9 || values[1] != 1 || values[2] != 5 {
		t.Errorf("summarize sorted its input in place: %v", values)
	}
}

func TestSummarizePercentileOrdering(t *testing.T) {
	values := []float64{12, 3, 47, 8, 26, 31, 5, 19, 40, 2}
	s := summarize(values)
	if !(s.p10 <= s.p50 && s.p50 <= s.p90) {
		t.Errorf("percentiles out of order: p10=%v p50=%v p90=%v", s.p10, s.p50, s.p90)
	}
	if s.p10 < 2 || s.p90 > 47 {
		t.Errorf("percentiles escaped the data range: p10=%v p90=%v", s.p10, s.p90)
	}
}
