package sim

import (
	"math"

	"github.com/averow/terrarium/components"
	"github.com/averow/terrarium/genome"
	"github.com/averow/terrarium/telemetry"
	"github.com/averow/terrarium/terrain"
)

// CreatureView is a read-only snapshot of one creature for presentation and
// inspection. The genome is a copy; mutating it has no effect on the world.
type CreatureView struct {
	ID        uint32
	SpeciesID uint8
	X, Y      int
	Sex       components.Sex
	Age       int32
	Energy    float64
	Alive     bool

	Diet     Diet
	Mode     MovementMode
	Cannibal bool
	Color    Color

	Genome genome.Genome
}

// Grid returns the current biome grid. The grid is immutable between resets.
func (s *Simulation) Grid() *terrain.Grid {
	return s.grid
}

// Palette returns the biome palette chosen at the last reset.
func (s *Simulation) Palette() []terrain.Biome {
	return s.palette
}

// SpeciesList returns the immutable species table.
func (s *Simulation) SpeciesList() []Species {
	return s.reg.SpeciesList()
}

// SpeciesCount returns the number of species in the current world.
func (s *Simulation) SpeciesCount() int {
	return len(s.reg.SpeciesList())
}

// Year returns the fractional year counter.
func (s *Simulation) Year() float64 {
	return s.year
}

// Step returns the number of whole steps simulated since the last reset.
func (s *Simulation) Step() int64 {
	return s.step
}

// AliveCount returns the number of living creatures.
func (s *Simulation) AliveCount() int {
	return s.reg.AliveCount()
}

// Creatures returns a snapshot of every living creature in registry order.
func (s *Simulation) Creatures() []CreatureView {
	views := make([]CreatureView, 0, s.reg.Len())
	for _, e := range s.reg.order {
		v := s.reg.vitMap.Get(e)
		if !v.Alive {
			continue
		}
		p := s.reg.posMap.Get(e)
		ident := s.reg.idMap.Get(e)
		g := s.reg.genMap.Get(e)
		sp := s.reg.Species(ident.SpeciesID)
		views = append(views, CreatureView{
			ID:        ident.ID,
			SpeciesID: ident.SpeciesID,
			X:         p.X,
			Y:         p.Y,
			Sex:       ident.Sex,
			Age:       v.Age,
			Energy:    v.Energy,
			Alive:     true,
			Diet:      sp.Diet,
			Mode:      sp.Mode,
			Cannibal:  sp.Cannibal,
			Color:     sp.Color,
			Genome:    *g,
		})
	}
	return views
}

// Creature returns the snapshot for a single creature by ID.
func (s *Simulation) Creature(id uint32) (CreatureView, bool) {
	for _, view := range s.Creatures() {
		if view.ID == id {
			return view, true
		}
	}
	return CreatureView{}, false
}

// CreatureNear returns the closest living creature within maxDist of a world
// coordinate, for click-to-inspect style lookups.
func (s *Simulation) CreatureNear(worldX, worldY, maxDist float64) (uint32, bool) {
	bestID := uint32(0)
	bestDist := math.Inf(1)
	found := false
	for _, e := range s.reg.order {
		if !s.reg.vitMap.Get(e).Alive {
			continue
		}
		p := s.reg.posMap.Get(e)
		dx := float64(p.X) - worldX
		dy := float64(p.Y) - worldY
		d := math.Sqrt(dx*dx + dy*dy)
		if d <= maxDist && d < bestDist {
			bestDist = d
			bestID = s.reg.idMap.Get(e).ID
			found = true
		}
	}
	return bestID, found
}

// Sample gathers the population sample a telemetry window flush needs.
func (s *Simulation) Sample() telemetry.PopulationSample {
	sample := telemetry.PopulationSample{}
	for _, e := range s.reg.order {
		v := s.reg.vitMap.Get(e)
		if !v.Alive {
			continue
		}
		ident := s.reg.idMap.Get(e)
		switch s.reg.Species(ident.SpeciesID).Diet {
		case Carnivore:
			sample.Carnivores++
		case Omnivore:
			sample.Omnivores++
		default:
			sample.Herbivores++
		}
		sample.Energies = append(sample.Energies, v.Energy)
		sample.Ages = append(sample.Ages, float64(v.Age))
	}
	return sample
}
