package genome

import (
	"math"
	"math/rand"
)

// Mutation parameters.
const (
	boolFlipChance      = 0.05 // chance to flip one boolean trait
	secondPerturbChance = 0.3  // chance of a second numeric perturbation
	perturbDelta        = 0.2  // numeric deltas are drawn from [-delta, delta]
)

// Mutate returns an independently mutated copy. One numeric trait is always
// perturbed, a second with probability 0.3, and one boolean flag flips with
// probability 0.05. Metabolism is rederived afterwards so the new phenotype
// pays its true upkeep.
func (g Genome) Mutate(rng *rand.Rand) Genome {
	if rng.Float64() < boolFlipChance {
		t := boolTraits[rng.Intn(len(boolTraits))]
		p := t.ptr(&g)
		*p = !*p
	}

	perturbs := 1
	if rng.Float64() < secondPerturbChance {
		perturbs = 2
	}
	for i := 0; i < perturbs; i++ {
		t := mutableTraits[rng.Intn(len(mutableTraits))]
		p := t.ptr(&g)
		*p = clampTrait(t.name, *p+(rng.Float64()*2-1)*perturbDelta)
	}

	g.Recompute()
	return g
}

// Crossover combines two parent genomes into one offspring genome: numeric
// traits are averaged, boolean traits take one parent's value uniformly at
// random. The child starts from parent a, so anything outside the trait
// tables follows a.
func Crossover(a, b Genome, rng *rand.Rand) Genome {
	child := a
	for _, t := range numericTraits {
		av := *t.ptr(&a)
		bv := *t.ptr(&b)
		*t.ptr(&child) = (av + bv) / 2
	}
	for _, t := range boolTraits {
		if rng.Intn(2) == 1 {
			*t.ptr(&child) = *t.ptr(&b)
		} else {
			*t.ptr(&child) = *t.ptr(&a)
		}
	}
	return child
}

// bounded reports whether v lies within the clamp table bound for the named
// trait. Traits without a bound always report true.
func bounded(name string, v float64) bool {
	b, ok := traitBounds[name]
	if !ok {
		return true
	}
	return v >= b[0] && v <= b[1] && !math.IsNaN(v)
}
