package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/averow/terrarium/camera"
	"github.com/averow/terrarium/sim"
)

// DrawCreatures renders creature markers through the camera. Each marker is a
// filled circle in the species color, dimmed by low energy; carnivores get a
// dark outline so predators read at a glance.
func DrawCreatures(views []sim.CreatureView, cam *camera.Camera) {
	radius := float32(TileSize) * 0.4 * cam.Zoom
	if radius < 1.5 {
		radius = 1.5
	}

	for _, v := range views {
		wx := (float32(v.X) + 0.5) * TileSize
		wy := (float32(v.Y) + 0.5) * TileSize
		if !cam.IsVisible(wx, wy, TileSize) {
			continue
		}
		sx, sy := cam.WorldToScreen(wx, wy)

		color := rl.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: 255}
		if capacity := v.Genome.StomachCapacity; capacity > 0 {
			frac := v.Energy / capacity
			if frac < 0 {
				frac = 0
			} else if frac > 1 {
				frac = 1
			}
			color.A = uint8(100 + frac*155)
		}

		rl.DrawCircle(int32(sx), int32(sy), radius, color)
		if v.Diet == sim.Carnivore {
			rl.DrawCircleLines(int32(sx), int32(sy), radius, rl.Color{R: 30, G: 20, B: 20, A: 220})
		}
	}
}

// DrawSelectionHighlight draws a ring around the selected creature.
func DrawSelectionHighlight(v sim.CreatureView, cam *camera.Camera) {
	wx := (float32(v.X) + 0.5) * TileSize
	wy := (float32(v.Y) + 0.5) * TileSize
	sx, sy := cam.WorldToScreen(wx, wy)
	radius := float32(TileSize)*0.6*cam.Zoom + 2
	rl.DrawCircleLines(int32(sx), int32(sy), radius, rl.Yellow)
	rl.DrawCircleLines(int32(sx), int32(sy), radius+1, rl.Yellow)
}
