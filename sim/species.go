package sim

import "math/rand"

// Diet determines what a species can eat and how well biomes feed it.
type Diet uint8

const (
	Herbivore Diet = iota
	Carnivore
	Omnivore
)

// String returns the display name of a diet.
func (d Diet) String() string {
	switch d {
	case Carnivore:
		return "Carnivore"
	case Omnivore:
		return "Omnivore"
	default:
		return "Herbivore"
	}
}

// MovementMode determines which tiles a species may occupy.
type MovementMode uint8

const (
	Terrestrial MovementMode = iota
	Aquatic
)

// String returns the display name of a movement mode.
func (m MovementMode) String() string {
	if m == Aquatic {
		return "Aquatic"
	}
	return "Terrestrial"
}

// Color is a display color for a species. Kept as raw RGB so the engine does
// not depend on any rendering library.
type Color struct {
	R, G, B uint8
}

// Species is an immutable template rolled once at world reset. Creatures
// reference it by ID; it is never mutated afterwards.
type Species struct {
	ID       uint8
	Color    Color
	Mode     MovementMode
	Diet     Diet
	Cannibal bool
}

// rollSpecies procedurally generates the species table for a fresh world.
func rollSpecies(opts Options, rng *rand.Rand) []Species {
	species := make([]Species, opts.SpeciesCount)
	for i := range species {
		diet := Herbivore
		switch r := rng.Float64(); {
		case r < opts.CarnivoreChance:
			diet = Carnivore
		case r < opts.CarnivoreChance+opts.OmnivoreChance:
			diet = Omnivore
		}

		mode := Terrestrial
		if rng.Float64() < opts.AquaticChance {
			mode = Aquatic
		}

		species[i] = Species{
			ID:       uint8(i),
			Color:    rollColor(rng),
			Mode:     mode,
			Diet:     diet,
			Cannibal: rng.Float64() < opts.CannibalChance,
		}
	}
	return species
}

// rollColor picks a bright, readable display color.
func rollColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(60 + rng.Intn(196)),
		G: uint8(60 + rng.Intn(196)),
		B: uint8(60 + rng.Intn(196)),
	}
}
