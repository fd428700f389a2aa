package genome

import (
	"math"
	"math/rand"
	"testing"
)

func TestBaselineMetabolism(t *testing.T) {
	g := Baseline()
	want := 0.02 + 0.003*g.Complexity()
	if g.MetabolismRate != want {
		t.Errorf("MetabolismRate = %v, want %v", g.MetabolismRate, want)
	}
}

func TestComplexity(t *testing.T) {
	base := Genome{Size: 1}
	if got := base.Complexity(); got != 1 {
		t.Fatalf("Complexity of bare size-1 genome = %v, want 1", got)
	}

	tests := []struct {
		name   string
		modify func(*Genome)
		delta  float64
	}{
		{"armor", func(g *Genome) { g.Armor = 2 }, 1.0},
		{"attack", func(g *Genome) { g.AttackDamage = 1 }, 0.3},
		{"speed", func(g *Genome) { g.MaxSpeed = 1 }, 0.3},
		{"vision", func(g *Genome) { g.VisionRadius = 10 }, 1.0},
		{"regen", func(g *Genome) { g.RegenRate = 0.5 }, 1.0},
		{"venom", func(g *Genome) { g.HasVenom = true }, 2.0},
		{"burrow", func(g *Genome) { g.CanBurrow = true }, 1.0},
		{"hibernate", func(g *Genome) { g.CanHibernate = true }, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := base
			tt.modify(&g)
			got := g.Complexity() - base.Complexity()
			if math.Abs(got-tt.delta) > 1e-12 {
				t.Errorf("complexity delta = %v, want %v", got, tt.delta)
			}
		})
	}
}

func TestRecomputeTracksComplexity(t *testing.T) {
	g := Baseline()
	g.HasVenom = true
	g.Armor = 3
	g.Recompute()

	want := 0.02 + 0.003*g.Complexity()
	if g.MetabolismRate != want {
		t.Errorf("MetabolismRate = %v, want %v", g.MetabolismRate, want)
	}
}

func TestJitterStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		g := Baseline().Jitter(rng, 0.5)
		assertBounded(t, &g)
	}
}

func TestJitterDoesNotMutateOriginal(t *testing.T) {
	orig := Baseline()
	saved := orig
	orig.Jitter(rand.New(rand.NewSource(1)), 0.3)
	if orig != saved {
		t.Error("Jitter modified its receiver")
	}
}

// assertBounded fails if any numeric trait escapes its clamp bound or goes NaN.
func assertBounded(t *testing.T, g *Genome) {
	t.Helper()
	for _, tr := range numericTraits {
		v := *tr.ptr(g)
		if math.IsNaN(v) {
			t.Fatalf("trait %s is NaN", tr.name)
		}
		if !bounded(tr.name, v) {
			t.Fatalf("trait %s = %v escaped its bound", tr.name, v)
		}
	}
}
