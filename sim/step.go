package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/averow/terrarium/terrain"
)

// Tick-engine rule constants.
const (
	baseMoveChance     = 0.2
	curiosityMoveScale = 0.3
	attackChanceScale  = 0.05
	omnivoreUpkeep     = 1.3 // flat hunger premium for dietary flexibility
	feedingScale       = 0.5
	nearbyRadius       = 1.0
)

// directions8 covers the 8-neighborhood, diagonals included.
var directions8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// stepCreature advances one living creature by one tick: aging and hunger,
// death check, regeneration, movement, feeding, predation, reproduction.
// Dead creatures are inert and return immediately.
func (s *Simulation) stepCreature(e ecs.Entity) {
	v := s.reg.vitMap.Get(e)
	if !v.Alive {
		return
	}
	p := s.reg.posMap.Get(e)
	ident := s.reg.idMap.Get(e)
	g := s.reg.genMap.Get(e)
	sp := s.reg.Species(ident.SpeciesID)

	// 1. Aging and metabolic upkeep.
	v.Age++
	hunger := g.MetabolismRate
	if sp.Diet == Omnivore {
		hunger *= omnivoreUpkeep
	}
	v.Energy -= hunger

	// 2. Death check: old age or starvation ends the tick immediately.
	if float64(v.Age) > g.MaxAge || v.Energy <= 0 {
		v.Energy = 0
		v.Alive = false
		s.collector.RecordDeath()
		return
	}

	// 3. Regeneration.
	v.Energy = minf(g.StomachCapacity, v.Energy+g.RegenRate)

	// 4. Movement: curious creatures wander more. The move is dropped, not
	// retried, when the destination biome is illegal for the species.
	if s.rng.Float64() < baseMoveChance+curiosityMoveScale*g.Curiosity {
		d := directions8[s.rng.Intn(len(directions8))]
		nx := s.grid.ClampX(p.X + d[0])
		ny := s.grid.ClampY(p.Y + d[1])
		if biomeLegal(s.grid.At(nx, ny), sp.Mode) {
			p.X, p.Y = nx, ny
		}
	}

	// 5. Feeding from the current tile.
	gain := foodValue(s.grid.At(p.X, p.Y), sp.Diet) * feedingScale * g.FoodEfficiency
	v.Energy = minf(g.StomachCapacity, v.Energy+gain)

	// 6. Predation.
	if s.rng.Float64() < g.Aggression*attackChanceScale {
		if target, ok := s.reg.FindNearby(e, p.X, p.Y, nearbyRadius); ok {
			if s.canPredate(sp, ident.SpeciesID, target) {
				s.resolveAttack(e, target)
			}
		}
	}

	// 7. Reproduction.
	if v.Alive && v.Energy > reproEnergyFraction*g.StomachCapacity {
		s.tryReproduce(e, v, ident, p, g)
	}
}

// canPredate checks diet and species eligibility for an attack: only
// carnivores and omnivores hunt, and conspecifics are off the menu unless the
// species is cannibalistic.
func (s *Simulation) canPredate(sp *Species, speciesID uint8, target ecs.Entity) bool {
	if sp.Diet == Herbivore {
		return false
	}
	if s.reg.idMap.Get(target).SpeciesID == speciesID {
		return sp.Cannibal
	}
	return true
}

// foodValue is the energy yield of a biome for a diet. Herbivores and
// omnivores do well in vegetated biomes; carnivores scavenge a flat trickle
// everywhere and live off predation instead.
func foodValue(b terrain.Biome, d Diet) float64 {
	lush := b == terrain.Woods || b == terrain.Fields || b == terrain.Swamp
	switch d {
	case Herbivore:
		if lush {
			return 1.0
		}
		return 0.2
	case Omnivore:
		if lush {
			return 0.7
		}
		return 0.3
	default:
		return 0.1
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
