package genome

import "math"

// numericTrait pairs a trait name with an accessor into a Genome. The tables
// below drive mutation, crossover, and clamping without reflection.
type numericTrait struct {
	name string
	ptr  func(*Genome) *float64
}

type boolTrait struct {
	name string
	ptr  func(*Genome) *bool
}

// numericTraits lists every numeric trait key, in declaration order.
var numericTraits = []numericTrait{
	{"size", func(g *Genome) *float64 { return &g.Size }},
	{"max_speed", func(g *Genome) *float64 { return &g.MaxSpeed }},
	{"armor", func(g *Genome) *float64 { return &g.Armor }},
	{"attack_damage", func(g *Genome) *float64 { return &g.AttackDamage }},
	{"bite_force", func(g *Genome) *float64 { return &g.BiteForce }},
	{"venom_power", func(g *Genome) *float64 { return &g.VenomPower }},
	{"constriction_power", func(g *Genome) *float64 { return &g.ConstrictionPower }},
	{"ram_power", func(g *Genome) *float64 { return &g.RamPower }},
	{"tail_power", func(g *Genome) *float64 { return &g.TailPower }},
	{"stomach_capacity", func(g *Genome) *float64 { return &g.StomachCapacity }},
	{"vision_radius", func(g *Genome) *float64 { return &g.VisionRadius }},
	{"field_of_view", func(g *Genome) *float64 { return &g.FieldOfView }},
	{"detection_chance", func(g *Genome) *float64 { return &g.DetectionChance }},
	{"smell_range", func(g *Genome) *float64 { return &g.SmellRange }},
	{"night_vision", func(g *Genome) *float64 { return &g.NightVision }},
	{"metabolism_rate", func(g *Genome) *float64 { return &g.MetabolismRate }},
	{"food_efficiency", func(g *Genome) *float64 { return &g.FoodEfficiency }},
	{"temperature_tolerance", func(g *Genome) *float64 { return &g.TemperatureTolerance }},
	{"toxin_tolerance", func(g *Genome) *float64 { return &g.ToxinTolerance }},
	{"disease_chance", func(g *Genome) *float64 { return &g.DiseaseChance }},
	{"slime_thickness", func(g *Genome) *float64 { return &g.SlimeThickness }},
	{"shell_hardness", func(g *Genome) *float64 { return &g.ShellHardness }},
	{"offspring_per_cycle", func(g *Genome) *float64 { return &g.OffspringPerCycle }},
	{"repro_cooldown", func(g *Genome) *float64 { return &g.ReproCooldown }},
	{"max_age", func(g *Genome) *float64 { return &g.MaxAge }},
	{"care_level", func(g *Genome) *float64 { return &g.CareLevel }},
	{"aggression", func(g *Genome) *float64 { return &g.Aggression }},
	{"caution", func(g *Genome) *float64 { return &g.Caution }},
	{"curiosity", func(g *Genome) *float64 { return &g.Curiosity }},
	{"grouping", func(g *Genome) *float64 { return &g.Grouping }},
	{"territoriality", func(g *Genome) *float64 { return &g.Territoriality }},
	{"risk_taking", func(g *Genome) *float64 { return &g.RiskTaking }},
	{"camouflage", func(g *Genome) *float64 { return &g.Camouflage }},
	{"crypsis", func(g *Genome) *float64 { return &g.Crypsis }},
	{"mimicry", func(g *Genome) *float64 { return &g.Mimicry }},
	{"false_eye_spots", func(g *Genome) *float64 { return &g.FalseEyeSpots }},
	{"burrow_speed", func(g *Genome) *float64 { return &g.BurrowSpeed }},
	{"spine_damage", func(g *Genome) *float64 { return &g.SpineDamage }},
	{"repellent_strength", func(g *Genome) *float64 { return &g.RepellentStrength }},
	{"irritant_strength", func(g *Genome) *float64 { return &g.IrritantStrength }},
	{"startle_power", func(g *Genome) *float64 { return &g.StartlePower }},
	{"regen_rate", func(g *Genome) *float64 { return &g.RegenRate }},
}

// boolTraits lists the flippable boolean traits.
var boolTraits = []boolTrait{
	{"has_venom", func(g *Genome) *bool { return &g.HasVenom }},
	{"can_hibernate", func(g *Genome) *bool { return &g.CanHibernate }},
	{"can_burrow", func(g *Genome) *bool { return &g.CanBurrow }},
	{"can_autotomize", func(g *Genome) *bool { return &g.CanAutotomize }},
}

// mutableTraits is the subset of numeric traits eligible for perturbation.
// Metabolism is excluded (derived), as are traits the reference model keeps
// fixed within a lineage.
var mutableTraits = buildMutable([]string{
	"size", "max_speed", "armor", "attack_damage", "bite_force",
	"venom_power", "constriction_power", "ram_power", "tail_power",
	"stomach_capacity", "vision_radius", "field_of_view", "detection_chance",
	"smell_range", "night_vision", "food_efficiency", "temperature_tolerance",
	"toxin_tolerance", "disease_chance", "slime_thickness", "shell_hardness",
	"offspring_per_cycle", "repro_cooldown", "max_age", "care_level",
	"aggression", "curiosity", "regen_rate",
})

func buildMutable(names []string) []numericTrait {
	byName := make(map[string]numericTrait, len(numericTraits))
	for _, t := range numericTraits {
		byName[t.name] = t
	}
	out := make([]numericTrait, 0, len(names))
	for _, n := range names {
		t, ok := byName[n]
		if !ok {
			panic("genome: unknown mutable trait " + n)
		}
		out = append(out, t)
	}
	return out
}

// traitBounds holds the per-trait clamp applied after a perturbation.
// Traits absent from the table are unclamped.
var traitBounds = map[string][2]float64{
	"size":                {0.3, 3},
	"max_speed":           {0.2, 4},
	"armor":               {0, 5},
	"attack_damage":       {0.1, math.Inf(1)},
	"offspring_per_cycle": {1, 5},
	"repro_cooldown":      {80, 500},
	"vision_radius":       {3, 20},
}

// clampTrait applies the bound for the named trait, if any.
func clampTrait(name string, v float64) float64 {
	b, ok := traitBounds[name]
	if !ok {
		return v
	}
	if v < b[0] {
		return b[0]
	}
	if v > b[1] {
		return b[1]
	}
	return v
}
