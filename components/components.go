// Package components defines the ECS components attached to every creature.
package components

// Position is a creature's tile coordinates.
type Position struct {
	X, Y int
}

// Sex of a creature, fixed at birth.
type Sex uint8

const (
	Male Sex = iota
	Female
)

// String returns the display name of a sex.
func (s Sex) String() string {
	if s == Female {
		return "Female"
	}
	return "Male"
}

// Vitals tracks a creature's mutable life state. Energy is bounded by the
// genome's stomach capacity and doubles as the life proxy: a creature whose
// energy reaches zero is dead. Dead creatures stay in the registry, inert,
// until the next compaction pass.
type Vitals struct {
	Age    int32
	Energy float64
	Alive  bool
}

// Identity binds a creature to its immutable species template. Shared fields
// (color, diet, movement mode, cannibalism) are resolved through the species
// table, never duplicated onto the creature.
type Identity struct {
	ID        uint32
	SpeciesID uint8
	Sex       Sex
}
