package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState carries the control panel's outputs back to the caller.
type ControlState struct {
	Speed        int
	PauseClicked bool
	ResetClicked bool
}

// ControlsPanel renders the bottom-right simulation controls: a speed slider
// and pause/reset buttons.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	height   int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel() *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    240,
		height:   96,
	}
}

// Draw renders the panel anchored to the bottom-right corner and returns the
// updated control state. speed is in steps per frame; 0 effectively pauses.
func (c *ControlsPanel) Draw(screenWidth, screenHeight int32, speed int, paused bool) ControlState {
	r := c.renderer
	padding := r.Theme.Padding

	x := screenWidth - c.width - 10
	y := screenHeight - c.height - 10
	r.DrawPanel(x, y, c.width, c.height)

	innerX := float32(x + padding)
	innerY := float32(y + padding)

	rl.DrawText("Speed (steps/frame)", int32(innerX), int32(innerY), r.Theme.FontSize, r.Theme.LabelColor)
	innerY += 16

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: innerX, Y: innerY, Width: float32(c.width) - 80, Height: 20},
		"0", "8",
		float32(speed), 0, 8,
	)
	rl.DrawText(fmt.Sprintf("%dx", speed), int32(innerX+float32(c.width)-60), int32(innerY+2), 16, r.Theme.ValueColor)
	innerY += 30

	state := ControlState{Speed: int(newSpeed + 0.5)}

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: innerX, Y: innerY, Width: 100, Height: 26}, pauseLabel) {
		state.PauseClicked = true
	}
	if gui.Button(rl.Rectangle{X: innerX + 110, Y: innerY, Width: 100, Height: 26}, "Reset") {
		state.ResetClicked = true
	}

	return state
}

// Bounds reports whether a screen point lies inside the panel, so clicks on
// the controls are not treated as world clicks.
func (c *ControlsPanel) Bounds(screenWidth, screenHeight int32, px, py float32) bool {
	x := float32(screenWidth - c.width - 10)
	y := float32(screenHeight - c.height - 10)
	return px >= x && px <= x+float32(c.width) && py >= y && py <= y+float32(c.height)
}
