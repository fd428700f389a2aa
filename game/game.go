// Package game wires the simulation engine to the raylib window, camera,
// and UI panels, and drives telemetry output in both modes.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/averow/terrarium/camera"
	"github.com/averow/terrarium/config"
	"github.com/averow/terrarium/renderer"
	"github.com/averow/terrarium/sim"
	"github.com/averow/terrarium/telemetry"
	"github.com/averow/terrarium/ui"
)

// Options configures a Game instance.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool

	// StepsPerUpdate is the simulation speed in steps per update call.
	StepsPerUpdate int
}

// Game holds the complete application state around one Simulation.
type Game struct {
	sim       *sim.Simulation
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	cam       *camera.Camera
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	inspector *ui.InspectorPanel

	paused         bool
	stepsPerUpdate int

	selectedID  uint32
	hasSelected bool

	screenWidth, screenHeight float32
}

// NewGame creates a game from loaded configuration and options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		sim:            sim.New(sim.FromConfig(cfg, opts.Seed)),
		collector:      telemetry.NewCollector(int64(cfg.Telemetry.StatsWindowSteps)),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		stepsPerUpdate: opts.StepsPerUpdate,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	g.sim.SetCollector(g.collector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	if !opts.Headless {
		grid := g.sim.Grid()
		worldW := float32(grid.Width) * renderer.TileSize
		worldH := float32(grid.Height) * renderer.TileSize
		g.cam = camera.New(g.screenWidth, g.screenHeight, worldW, worldH)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel()
		g.inspector = ui.NewInspectorPanel()
	}

	return g, nil
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// Step returns the current simulation step.
func (g *Game) Step() int64 {
	return g.sim.Step()
}

// Update handles input and advances the simulation for one frame.
func (g *Game) Update() {
	g.handleInput()
	g.perf.RecordFrame()

	if g.paused || g.stepsPerUpdate == 0 {
		return
	}
	g.advance(g.stepsPerUpdate)
}

// UpdateHeadless advances the simulation without any input or rendering.
func (g *Game) UpdateHeadless() {
	g.advance(g.stepsPerUpdate)
}

// advance runs simulation steps and services telemetry windows.
func (g *Game) advance(steps int) {
	for i := 0; i < steps; i++ {
		g.perf.StartStep()
		g.sim.Advance(1)
		g.perf.EndStep()
	}
	g.serviceTelemetry()
}

// reset regenerates the world and drops the selection.
func (g *Game) reset() {
	g.sim.Reset()
	g.hasSelected = false
	if g.cam != nil {
		g.cam.Reset()
	}
	slog.Info("world reset", "alive", g.sim.AliveCount(), "species", g.sim.SpeciesCount())
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	renderer.DrawTerrain(g.sim.Grid(), g.cam)
	views := g.sim.Creatures()
	renderer.DrawCreatures(views, g.cam)

	var selected sim.CreatureView
	selectedAlive := false
	if g.hasSelected {
		for _, v := range views {
			if v.ID == g.selectedID {
				selected = v
				selectedAlive = true
				break
			}
		}
		if !selectedAlive {
			g.hasSelected = false
		}
	}
	if selectedAlive {
		renderer.DrawSelectionHighlight(selected, g.cam)
	}

	g.hud.Draw(ui.HUDData{
		Title:        "Terrarium",
		Year:         g.sim.Year(),
		Step:         g.sim.Step(),
		Alive:        g.sim.AliveCount(),
		SpeciesCount: g.sim.SpeciesCount(),
		Speed:        g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
	})
	g.hud.DrawControls(int32(g.screenHeight),
		"space pause | , . speed | R reset | arrows pan | wheel zoom | click inspect")

	if selectedAlive {
		g.inspector.Draw(int32(g.screenWidth), selected)
	}

	state := g.controls.Draw(int32(g.screenWidth), int32(g.screenHeight), g.stepsPerUpdate, g.paused)
	g.applyControls(state)

	rl.EndDrawing()
}

// applyControls folds control panel output back into game state.
func (g *Game) applyControls(state ui.ControlState) {
	if state.Speed != g.stepsPerUpdate && state.Speed >= 0 && state.Speed <= 8 {
		g.stepsPerUpdate = state.Speed
	}
	if state.PauseClicked {
		g.paused = !g.paused
	}
	if state.ResetClicked {
		g.reset()
	}
}

// Unload releases held resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
