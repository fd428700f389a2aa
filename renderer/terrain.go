// Package renderer draws the world grid and its inhabitants with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/averow/terrarium/camera"
	"github.com/averow/terrarium/terrain"
)

// TileSize is the on-screen edge length of one world tile at 1:1 zoom.
const TileSize = 12.0

// biomeColors maps each biome to its base tile color.
var biomeColors = map[terrain.Biome]rl.Color{
	terrain.Water:  {R: 54, G: 102, B: 192, A: 255},
	terrain.Desert: {R: 224, G: 202, B: 136, A: 255},
	terrain.Snowy:  {R: 230, G: 238, B: 244, A: 255},
	terrain.Woods:  {R: 46, G: 112, B: 60, A: 255},
	terrain.Swamp:  {R: 84, G: 104, B: 62, A: 255},
	terrain.Fields: {R: 112, G: 168, B: 74, A: 255},
}

// BiomeColor returns the tile color for a biome.
func BiomeColor(b terrain.Biome) rl.Color {
	if c, ok := biomeColors[b]; ok {
		return c
	}
	return rl.Magenta
}

// DrawTerrain renders the biome grid through the camera. Tiles outside the
// visible bounds are culled.
func DrawTerrain(grid *terrain.Grid, cam *camera.Camera) {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()

	x0 := int(minX / TileSize)
	y0 := int(minY / TileSize)
	x1 := int(maxX/TileSize) + 1
	y1 := int(maxY/TileSize) + 1

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > grid.Width {
		x1 = grid.Width
	}
	if y1 > grid.Height {
		y1 = grid.Height
	}

	tile := TileSize * cam.Zoom
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sx, sy := cam.WorldToScreen(float32(x)*TileSize, float32(y)*TileSize)
			rl.DrawRectangle(int32(sx), int32(sy), int32(tile)+1, int32(tile)+1, BiomeColor(grid.At(x, y)))
		}
	}
}
