// Package sim implements the ecology engine: world generation, the species
// and creature registry, and the per-step behavior pipeline. The engine is
// single-threaded; one Simulation value owns all state and every stochastic
// operation draws from its own seeded RNG, so runs are reproducible.
package sim

import (
	"math/rand"

	"github.com/averow/terrarium/components"
	"github.com/averow/terrarium/config"
	"github.com/averow/terrarium/genome"
	"github.com/averow/terrarium/telemetry"
	"github.com/averow/terrarium/terrain"
)

// Engine cadence and rule constants.
const (
	compactionInterval = 5    // steps between dead-creature compaction passes
	yearPerStep        = 0.01 // abstract year units per simulated step
	spawnEnergy        = 50.0
	placementAttempts  = 1000 // biome-matched placement tries before falling back
)

// Options configures a Simulation. The engine takes options explicitly
// instead of reading global config so tests can construct worlds directly.
type Options struct {
	Width, Height     int
	SpeciesCount      int
	AquaticChance     float64
	CarnivoreChance   float64
	OmnivoreChance    float64
	CannibalChance    float64
	InitialPerSpecies int
	InitJitter        float64
	Seed              int64
}

// FromConfig translates loaded configuration into engine options.
func FromConfig(cfg *config.Config, seed int64) Options {
	return Options{
		Width:             cfg.World.Width,
		Height:            cfg.World.Height,
		SpeciesCount:      cfg.Species.Count,
		AquaticChance:     cfg.Species.AquaticChance,
		CarnivoreChance:   cfg.Species.CarnivoreChance,
		OmnivoreChance:    cfg.Species.OmnivoreChance,
		CannibalChance:    cfg.Species.CannibalChance,
		InitialPerSpecies: cfg.Population.InitialPerSpecies,
		InitJitter:        cfg.Genome.InitJitter,
		Seed:              seed,
	}
}

// Simulation owns the complete world state: biome grid, species table,
// creature registry, and clock. Reset discards everything and regenerates
// from scratch.
type Simulation struct {
	opts Options
	rng  *rand.Rand

	grid    *terrain.Grid
	palette []terrain.Biome
	reg     *Registry

	year float64
	step int64

	births    []birthSpec
	collector *telemetry.Collector
}

// New creates a simulation and generates its first world.
func New(opts Options) *Simulation {
	s := &Simulation{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	s.Reset()
	return s
}

// SetCollector attaches an optional telemetry collector. Pass nil to detach.
func (s *Simulation) SetCollector(c *telemetry.Collector) {
	s.collector = c
}

// Reset regenerates world, species, and population from scratch and rewinds
// the clock. The RNG stream continues, so successive resets differ.
func (s *Simulation) Reset() {
	s.grid, s.palette = terrain.Generate(s.opts.Width, s.opts.Height, s.rng)
	s.reg = NewRegistry(rollSpecies(s.opts, s.rng))
	s.year = 0
	s.step = 0
	s.births = s.births[:0]

	for _, sp := range s.reg.SpeciesList() {
		for i := 0; i < s.opts.InitialPerSpecies; i++ {
			x, y := s.placeOnBiome(sp.Mode)
			sex := components.Male
			if i%2 == 1 {
				sex = components.Female
			}
			g := genome.Baseline().Jitter(s.rng, s.opts.InitJitter)
			s.reg.Spawn(sp.ID, x, y, sex, g)
		}
	}
}

// placeOnBiome picks a random tile legal for the movement mode. After a
// bounded number of failed draws it falls back to an unconstrained random
// tile rather than failing; worlds with no matching biome still populate.
func (s *Simulation) placeOnBiome(mode MovementMode) (int, int) {
	if s.grid.Width <= 0 || s.grid.Height <= 0 {
		return 0, 0
	}
	for i := 0; i < placementAttempts; i++ {
		x := s.rng.Intn(s.grid.Width)
		y := s.rng.Intn(s.grid.Height)
		if biomeLegal(s.grid.At(x, y), mode) {
			return x, y
		}
	}
	return s.rng.Intn(s.grid.Width), s.rng.Intn(s.grid.Height)
}

// Advance runs the given number of whole simulation steps. Each step ticks
// every creature present at the start of the step in registry order; same-step
// offspring join the registry but are not ticked until the next step. Dead
// creatures are compacted away every fifth step, never mid-step.
func (s *Simulation) Advance(steps int) {
	for i := 0; i < steps; i++ {
		s.runStep()
	}
	s.year += yearPerStep * float64(steps)
}

func (s *Simulation) runStep() {
	n := s.reg.Len()
	for i := 0; i < n; i++ {
		s.stepCreature(s.reg.Entity(i))
		s.flushBirths()
	}
	s.step++
	if s.step%compactionInterval == 0 {
		s.reg.Compact()
	}
}

// biomeLegal reports whether a movement mode may occupy a biome: aquatic
// creatures need Water, terrestrial creatures need anything but.
func biomeLegal(b terrain.Biome, mode MovementMode) bool {
	if mode == Aquatic {
		return b == terrain.Water
	}
	return b != terrain.Water
}
