package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/averow/terrarium/components"
	"github.com/averow/terrarium/genome"
)

// Registry is the single owner of all species and creature state. Creatures
// live in an ECS world; the registry additionally keeps an explicit
// creation-order entity slice because every query below is defined as a
// linear scan in that order. This is a deliberate cheap-scan policy at the
// expected population scale, not a spatial index.
type Registry struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Vitals, components.Identity, genome.Genome]

	posMap *ecs.Map1[components.Position]
	vitMap *ecs.Map1[components.Vitals]
	idMap  *ecs.Map1[components.Identity]
	genMap *ecs.Map1[genome.Genome]

	species []Species
	order   []ecs.Entity
	nextID  uint32
}

// NewRegistry creates a registry owning the given species table.
func NewRegistry(species []Species) *Registry {
	world := ecs.NewWorld()
	return &Registry{
		world:   world,
		mapper:  ecs.NewMap4[components.Position, components.Vitals, components.Identity, genome.Genome](world),
		posMap:  ecs.NewMap1[components.Position](world),
		vitMap:  ecs.NewMap1[components.Vitals](world),
		idMap:   ecs.NewMap1[components.Identity](world),
		genMap:  ecs.NewMap1[genome.Genome](world),
		species: species,
	}
}

// Len returns the number of registered creatures, dead ones included.
func (r *Registry) Len() int {
	return len(r.order)
}

// Entity returns the i-th creature in creation order.
func (r *Registry) Entity(i int) ecs.Entity {
	return r.order[i]
}

// Species resolves a species template by ID.
func (r *Registry) Species(id uint8) *Species {
	return &r.species[id]
}

// SpeciesList returns the immutable species table.
func (r *Registry) SpeciesList() []Species {
	return r.species
}

// Spawn appends a new living creature with age 0 and the standard birth
// energy, clamped to the genome's stomach capacity.
func (r *Registry) Spawn(speciesID uint8, x, y int, sex components.Sex, g genome.Genome) ecs.Entity {
	id := r.nextID
	r.nextID++

	energy := spawnEnergy
	if energy > g.StomachCapacity {
		energy = g.StomachCapacity
	}

	pos := components.Position{X: x, Y: y}
	vit := components.Vitals{Age: 0, Energy: energy, Alive: true}
	ident := components.Identity{ID: id, SpeciesID: speciesID, Sex: sex}

	e := r.mapper.NewEntity(&pos, &vit, &ident, &g)
	r.order = append(r.order, e)
	return e
}

// FindNearby returns the first other living creature within the given radius
// (squared-distance compare) in registry iteration order. First match, not
// nearest.
func (r *Registry) FindNearby(self ecs.Entity, x, y int, radius float64) (ecs.Entity, bool) {
	r2 := radius * radius
	for _, e := range r.order {
		if e == self {
			continue
		}
		v := r.vitMap.Get(e)
		if !v.Alive {
			continue
		}
		p := r.posMap.Get(e)
		dx := float64(p.X - x)
		dy := float64(p.Y - y)
		if dx*dx+dy*dy <= r2 {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// FindMate returns the first living creature of the same species and opposite
// sex within the 8-neighborhood whose energy is at least half its own stomach
// capacity.
func (r *Registry) FindMate(self ecs.Entity, ident components.Identity, x, y int) (ecs.Entity, bool) {
	for _, e := range r.order {
		if e == self {
			continue
		}
		other := r.idMap.Get(e)
		if other.SpeciesID != ident.SpeciesID || other.Sex == ident.Sex {
			continue
		}
		v := r.vitMap.Get(e)
		if !v.Alive {
			continue
		}
		p := r.posMap.Get(e)
		if chebyshev(p.X-x, p.Y-y) > 1 {
			continue
		}
		g := r.genMap.Get(e)
		if v.Energy >= mateEnergyFraction*g.StomachCapacity {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// AliveCount counts living creatures.
func (r *Registry) AliveCount() int {
	n := 0
	for _, e := range r.order {
		if r.vitMap.Get(e).Alive {
			n++
		}
	}
	return n
}

// Compact removes all dead creatures from the registry. Called only at
// clock-driven boundaries, never mid-step, so dead creatures stay queryable
// (and filtered out by liveness checks) for up to the compaction interval.
// Returns the number removed.
func (r *Registry) Compact() int {
	kept := r.order[:0]
	removed := 0
	for _, e := range r.order {
		if r.vitMap.Get(e).Alive {
			kept = append(kept, e)
			continue
		}
		r.mapper.Remove(e)
		removed++
	}
	r.order = kept
	return removed
}

// chebyshev returns the Chebyshev distance for a coordinate delta.
func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
