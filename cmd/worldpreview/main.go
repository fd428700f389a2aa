// World generation preview tool - interactive biome map viewer.
//
// Usage: go run ./cmd/worldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/averow/terrarium/renderer"
	"github.com/averow/terrarium/terrain"
)

const (
	windowWidth  = 1040
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "World Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	width := 96
	height := 64
	seed := int64(42)

	grid, palette := generate(width, height, seed)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			grid, palette = generate(width, height, seed)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawGrid(grid)

		// Stats under the preview
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Palette: %s", paletteLabel(palette)), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Size: %dx%d  Seed: %d", grid.Width, grid.Height, seed), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("World Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Width (tiles)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWidth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"16", "256",
			float32(width), 16, 256,
		)
		rl.DrawText(fmt.Sprintf("%d", width), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newWidth) != width {
			width = int(newWidth)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Height (tiles)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newHeight := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"16", "256",
			float32(height), 16, 256,
		)
		rl.DrawText(fmt.Sprintf("%d", height), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newHeight) != height {
			height = int(newHeight)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Next Seed") {
			seed++
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 999999))
			needsRegen = true
		}
		panelY += 45

		// Biome legend
		rl.DrawText("Legend:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, b := range palette {
			rl.DrawRectangle(int32(panelX), int32(panelY), 14, 14, renderer.BiomeColor(b))
			rl.DrawText(b.String(), int32(panelX)+20, int32(panelY), 14, rl.Gray)
			panelY += 20
		}

		rl.EndDrawing()
	}
}

func generate(width, height int, seed int64) (*terrain.Grid, []terrain.Biome) {
	rng := rand.New(rand.NewSource(seed))
	return terrain.Generate(width, height, rng)
}

// drawGrid renders the biome grid scaled into the preview square.
func drawGrid(grid *terrain.Grid) {
	tileW := float32(previewSize) / float32(grid.Width)
	tileH := float32(previewSize) / float32(grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			rl.DrawRectangle(
				int32(10+float32(x)*tileW), int32(10+float32(y)*tileH),
				int32(tileW)+1, int32(tileH)+1,
				renderer.BiomeColor(grid.At(x, y)),
			)
		}
	}
	rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
}

func paletteLabel(palette []terrain.Biome) string {
	s := ""
	for i, b := range palette {
		if i > 0 {
			s += ", "
		}
		s += b.String()
	}
	return s
}
