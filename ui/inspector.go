package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/averow/terrarium/sim"
)

// InspectorPanel renders details for a clicked creature: identity, vitals,
// and the genome traits that drive its behavior.
type InspectorPanel struct {
	renderer *Renderer
	width    int32
}

// NewInspectorPanel creates a new inspector panel.
func NewInspectorPanel() *InspectorPanel {
	return &InspectorPanel{
		renderer: NewRenderer(),
		width:    290,
	}
}

// Draw renders the inspector anchored to the top-right corner.
func (p *InspectorPanel) Draw(screenWidth int32, v sim.CreatureView) {
	r := p.renderer
	padding := r.Theme.Padding
	width := p.width

	x := screenWidth - width - 10
	y := int32(10)
	height := int32(430)
	r.DrawPanel(x, y, width, height)

	ix := x + padding
	iy := y + padding
	innerWidth := width - padding*2

	rl.DrawText(fmt.Sprintf("Creature #%d", v.ID), ix, iy, 16, rl.White)
	iy += r.Theme.LineHeight + 4

	iy = r.DrawSectionHeader(ix, iy, "Identity")
	iy = r.DrawLabelValue(ix, iy, "Species", fmt.Sprintf("#%d (%s, %s)", v.SpeciesID, v.Diet, v.Mode))
	iy = r.DrawLabelValue(ix, iy, "Sex", v.Sex.String())
	iy = r.DrawColorSwatch(ix, iy, "Color", rl.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: 255})
	if v.Cannibal {
		iy = r.DrawLabelValue(ix, iy, "Cannibal", "yes")
	}
	iy += 4

	iy = r.DrawSectionHeader(ix, iy, "Vitals")
	iy = r.DrawLabelValue(ix, iy, "Position", fmt.Sprintf("(%d, %d)", v.X, v.Y))
	iy = r.DrawLabelValue(ix, iy, "Age", fmt.Sprintf("%d / %.0f", v.Age, v.Genome.MaxAge))
	iy = r.DrawEnergyBar(ix, iy, "Energy", float32(v.Energy), float32(v.Genome.StomachCapacity), innerWidth)
	iy += 4

	g := v.Genome
	iy = r.DrawSectionHeader(ix, iy, "Body")
	iy = r.DrawLabelValue(ix, iy, "Size", fmt.Sprintf("%.2f", g.Size))
	iy = r.DrawLabelValue(ix, iy, "Max speed", fmt.Sprintf("%.2f", g.MaxSpeed))
	iy = r.DrawLabelValue(ix, iy, "Vision", fmt.Sprintf("%.1f", g.VisionRadius))
	iy = r.DrawLabelValue(ix, iy, "Metabolism", fmt.Sprintf("%.4f", g.MetabolismRate))
	iy = r.DrawLabelValue(ix, iy, "Complexity", fmt.Sprintf("%.2f", g.Complexity()))
	iy += 4

	iy = r.DrawSectionHeader(ix, iy, "Combat")
	iy = r.DrawLabelValue(ix, iy, "Attack", fmt.Sprintf("%.2f", g.AttackDamage))
	iy = r.DrawLabelValue(ix, iy, "Bite", fmt.Sprintf("%.2f", g.BiteForce))
	iy = r.DrawLabelValue(ix, iy, "Armor", fmt.Sprintf("%.2f (+%.2f shell)", g.Armor, g.ShellHardness))
	iy = r.DrawLabelValue(ix, iy, "Spines", fmt.Sprintf("%.2f", g.SpineDamage))
	if g.HasVenom {
		iy = r.DrawLabelValue(ix, iy, "Venom", fmt.Sprintf("%.2f", g.VenomPower))
	}
	iy += 4

	iy = r.DrawSectionHeader(ix, iy, "Behavior")
	iy = r.DrawBar(ix, iy, "Aggression", float32(g.Aggression), innerWidth)
	iy = r.DrawBar(ix, iy, "Caution", float32(g.Caution), innerWidth)
	iy = r.DrawBar(ix, iy, "Curiosity", float32(g.Curiosity), innerWidth)
	iy += 4

	iy = r.DrawSectionHeader(ix, iy, "Reproduction")
	iy = r.DrawLabelValue(ix, iy, "Offspring", fmt.Sprintf("%.1f / cycle", g.OffspringPerCycle))
	r.DrawLabelValue(ix, iy, "Cooldown", fmt.Sprintf("%.0f", g.ReproCooldown))
}
