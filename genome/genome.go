// Package genome defines the heritable trait set that drives creature
// behavior, and the mutation and crossover operators that evolve it.
package genome

import "math/rand"

// Genome is the full named attribute vector governing a creature's phenotype.
// Every creature owns an independent copy; operators never share state
// between parent and child.
type Genome struct {
	// Body / movement
	Size              float64
	MaxSpeed          float64
	Armor             float64
	AttackDamage      float64
	BiteForce         float64
	VenomPower        float64
	HasVenom          bool
	ConstrictionPower float64
	RamPower          float64
	TailPower         float64
	StomachCapacity   float64

	// Sensory
	VisionRadius    float64
	FieldOfView     float64
	DetectionChance float64
	SmellRange      float64
	NightVision     float64

	// Metabolism / survival
	MetabolismRate       float64 // derived from complexity, see Recompute
	FoodEfficiency       float64
	TemperatureTolerance float64
	ToxinTolerance       float64
	CanHibernate         bool
	DiseaseChance        float64
	SlimeThickness       float64
	ShellHardness        float64

	// Reproduction
	OffspringPerCycle float64
	ReproCooldown     float64 // ticks between reproduction windows
	MaxAge            float64 // ticks
	CareLevel         float64

	// Behavior
	Aggression     float64
	Caution        float64
	Curiosity      float64
	Grouping       float64
	Territoriality float64
	RiskTaking     float64

	// Camouflage
	Camouflage    float64
	Crypsis       float64
	Mimicry       float64
	FalseEyeSpots float64

	// Defense
	CanBurrow         bool
	BurrowSpeed       float64
	SpineDamage       float64
	RepellentStrength float64
	IrritantStrength  float64
	CanAutotomize     bool
	StartlePower      float64

	// Regeneration
	RegenRate float64
}

// Baseline returns the founder genome every species starts from.
// Metabolism is already consistent with the complexity formula.
func Baseline() Genome {
	g := Genome{
		Size:                 1.0,
		MaxSpeed:             1.0,
		Armor:                0.5,
		AttackDamage:         1.0,
		BiteForce:            0.5,
		StomachCapacity:      100,
		VisionRadius:         8,
		FieldOfView:          180,
		DetectionChance:      0.5,
		SmellRange:           4,
		NightVision:          0.2,
		FoodEfficiency:       1.0,
		TemperatureTolerance: 0.5,
		ToxinTolerance:       0.3,
		DiseaseChance:        0.05,
		OffspringPerCycle:    2,
		ReproCooldown:        200,
		MaxAge:               1000,
		CareLevel:            0.3,
		Aggression:           0.4,
		Caution:              0.5,
		Curiosity:            0.5,
		Grouping:             0.3,
		Territoriality:       0.3,
		RiskTaking:           0.4,
		Camouflage:           0.2,
		Crypsis:              0.1,
	}
	g.Recompute()
	return g
}

// Complexity measures total phenotypic investment. Expensive traits raise it,
// which raises metabolism through Recompute; this is the system's selective
// pressure against over-armored, over-armed genomes.
func (g *Genome) Complexity() float64 {
	c := g.Size +
		0.5*g.Armor +
		0.3*g.AttackDamage +
		0.3*g.MaxSpeed +
		0.1*g.VisionRadius +
		2*g.RegenRate
	if g.HasVenom {
		c += 2
	}
	if g.CanBurrow {
		c += 1
	}
	if g.CanHibernate {
		c += 0.5
	}
	return c
}

// Recompute rederives metabolism from complexity. Called after every mutation
// so energetic upkeep tracks the phenotype.
func (g *Genome) Recompute() {
	g.MetabolismRate = 0.02 + 0.003*g.Complexity()
}

// Jitter returns a copy with every mutable numeric trait perturbed by a
// uniform draw from [-amount, amount], clamped. Used for founder variance at
// world reset.
func (g Genome) Jitter(rng *rand.Rand, amount float64) Genome {
	for _, t := range mutableTraits {
		p := t.ptr(&g)
		*p = clampTrait(t.name, *p+(rng.Float64()*2-1)*amount)
	}
	g.Recompute()
	return g
}
