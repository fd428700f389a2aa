package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/averow/terrarium/components"
	"github.com/averow/terrarium/genome"
)

// Reproduction constants.
const (
	reproEnergyFraction   = 0.7 // initiator must hold this fraction of capacity
	mateEnergyFraction    = 0.5 // mate must hold this fraction of its capacity
	offspringMutateChance = 0.4
)

// birthSpec queues an offspring for spawning after the current creature's
// tick completes, so spawning never invalidates live component pointers.
type birthSpec struct {
	speciesID uint8
	x, y      int
	sex       components.Sex
	g         genome.Genome
}

// tryReproduce attempts reproduction for a creature whose energy gate already
// passed. The age gate is a periodic window (age mod cooldown), exactly as
// the reference behaves: a creature re-qualifies every cooldown's worth of
// age, not via a per-individual timer.
func (s *Simulation) tryReproduce(e ecs.Entity, v *components.Vitals, ident *components.Identity, p *components.Position, g *genome.Genome) {
	cooldown := int32(g.ReproCooldown)
	if cooldown < 1 {
		cooldown = 1
	}
	if v.Age%cooldown != 0 {
		return
	}

	mate, ok := s.reg.FindMate(e, *ident, p.X, p.Y)
	if !ok {
		return
	}
	mv := s.reg.vitMap.Get(mate)
	mg := s.reg.genMap.Get(mate)

	count := int(math.Round((g.OffspringPerCycle + mg.OffspringPerCycle) / 2))
	for i := 0; i < count; i++ {
		child := genome.Crossover(*g, *mg, s.rng)
		if s.rng.Float64() < offspringMutateChance {
			child = child.Mutate(s.rng)
		}
		sex := components.Male
		if s.rng.Intn(2) == 1 {
			sex = components.Female
		}
		s.births = append(s.births, birthSpec{
			speciesID: ident.SpeciesID,
			x:         p.X,
			y:         p.Y,
			sex:       sex,
			g:         child,
		})
		s.collector.RecordBirth()
	}

	// Reproductive cost: both parents halved once, whatever the litter size.
	v.Energy /= 2
	mv.Energy /= 2
}

// flushBirths spawns queued offspring. They join the registry mid-step but
// are excluded from the current step's index-bounded pass, so parents always
// tick before their same-step offspring.
func (s *Simulation) flushBirths() {
	for _, b := range s.births {
		s.reg.Spawn(b.speciesID, b.x, b.y, b.sex, b.g)
	}
	s.births = s.births[:0]
}
