// Package terrain generates and stores the biome grid the simulation runs on.
package terrain

import "math/rand"

// Biome is a terrain category. It governs movement legality (Water vs land)
// and food yield per diet.
type Biome uint8

const (
	Water Biome = iota
	Desert
	Snowy
	Woods
	Swamp
	Fields

	numBiomes = 6
)

// String returns the display name of a biome.
func (b Biome) String() string {
	switch b {
	case Water:
		return "Water"
	case Desert:
		return "Desert"
	case Snowy:
		return "Snowy"
	case Woods:
		return "Woods"
	case Swamp:
		return "Swamp"
	case Fields:
		return "Fields"
	default:
		return "Unknown"
	}
}

// Grid is a fixed-size biome map. It is generated once per world reset and
// immutable during simulation.
type Grid struct {
	Width, Height int
	cells         []Biome
}

// NewGrid creates a grid with every cell set to the fill biome.
func NewGrid(width, height int, fill Biome) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{Width: width, Height: height, cells: make([]Biome, width*height)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Set overwrites the biome at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, b Biome) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = b
}

// At returns the biome at (x, y). Out-of-range coordinates report Water so
// callers never index past a degenerate grid.
func (g *Grid) At(x, y int) Biome {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Water
	}
	return g.cells[y*g.Width+x]
}

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// ClampX clamps an x coordinate into the grid.
func (g *Grid) ClampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= g.Width {
		return g.Width - 1
	}
	return x
}

// ClampY clamps a y coordinate into the grid.
func (g *Grid) ClampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= g.Height {
		return g.Height - 1
	}
	return y
}

// seed is a biome source point for the Voronoi partition.
type seed struct {
	x, y  int
	biome Biome
}

// Generate builds a biome grid by seeded region growth: a random palette of
// 2-4 biomes that always includes Water, 3 seeds per palette entry, and a
// nearest-seed assignment per cell. The first seed is forced to Water so
// every world has at least one sizeable water region; later Water draws are
// re-rolled to a land biome with probability 0.6 to keep Water from
// dominating. Returns the grid and the chosen palette. Non-positive
// dimensions yield a valid empty grid.
func Generate(width, height int, rng *rand.Rand) (*Grid, []Biome) {
	palette := rollPalette(rng)

	if width <= 0 || height <= 0 {
		return &Grid{Width: max(width, 0), Height: max(height, 0)}, palette
	}

	seeds := placeSeeds(width, height, palette, rng)

	g := &Grid{Width: width, Height: height, cells: make([]Biome, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = nearestSeed(seeds, x, y)
		}
	}
	return g, palette
}

// rollPalette picks 2-4 unique biomes, always including Water.
func rollPalette(rng *rand.Rand) []Biome {
	target := 2 + rng.Intn(3)
	palette := []Biome{Water}
	chosen := map[Biome]bool{Water: true}
	for len(palette) < target {
		b := Biome(1 + rng.Intn(numBiomes-1))
		if chosen[b] {
			continue
		}
		chosen[b] = true
		palette = append(palette, b)
	}
	return palette
}

// placeSeeds scatters 3 seeds per palette biome at random coordinates.
func placeSeeds(width, height int, palette []Biome, rng *rand.Rand) []seed {
	n := 3 * len(palette)
	seeds := make([]seed, 0, n)
	for i := 0; i < n; i++ {
		s := seed{x: rng.Intn(width), y: rng.Intn(height)}
		if i == 0 {
			s.biome = Water
		} else {
			s.biome = palette[rng.Intn(len(palette))]
			// Bias away from Water so land palettes get their share.
			if s.biome == Water && len(palette) > 1 && rng.Float64() < 0.6 {
				s.biome = palette[1+rng.Intn(len(palette)-1)]
			}
		}
		seeds = append(seeds, s)
	}
	return seeds
}

// nearestSeed returns the biome of the closest seed by squared Euclidean
// distance. Ties go to the earliest seed.
func nearestSeed(seeds []seed, x, y int) Biome {
	best := seeds[0].biome
	bestDist := -1
	for _, s := range seeds {
		dx := s.x - x
		dy := s.y - y
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = s.biome
		}
	}
	return best
}
