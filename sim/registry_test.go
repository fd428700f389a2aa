package sim

import (
	"testing"

	"github.com/averow/terrarium/components"
	"github.com/averow/terrarium/genome"
)

func testSpecies(diet Diet, mode MovementMode, cannibal bool) []Species {
	return []Species{{ID: 0, Color: Color{R: 200, G: 120, B: 80}, Mode: mode, Diet: diet, Cannibal: cannibal}}
}

func TestSpawnClampsEnergyToCapacity(t *testing.T) {
	reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))

	small := genome.Baseline()
	small.StomachCapacity = 30
	e := reg.Spawn(0, 1, 1, components.Male, small)

	if got := reg.vitMap.Get(e).Energy; got != 30 {
		t.Errorf("spawn energy = %v, want 30 (clamped to capacity)", got)
	}

	normal := reg.Spawn(0, 1, 1, components.Female, genome.Baseline())
	if got := reg.vitMap.Get(normal).Energy; got != spawnEnergy {
		t.Errorf("spawn energy = %v, want %v", got, spawnEnergy)
	}
}

func TestFindNearbyFirstInCreationOrder(t *testing.T) {
	reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))
	g := genome.Baseline()

	self := reg.Spawn(0, 5, 5, components.Male, g)
	first := reg.Spawn(0, 6, 5, components.Female, g)
	reg.Spawn(0, 5, 6, components.Female, g) // closer candidates do not matter

	got, ok := reg.FindNearby(self, 5, 5, 1.0)
	if !ok {
		t.Fatal("FindNearby found nothing")
	}
	if got != first {
		t.Error("FindNearby did not return the earliest-created match")
	}
}

func TestFindNearbySkipsSelfAndDead(t *testing.T) {
	reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))
	g := genome.Baseline()

	self := reg.Spawn(0, 5, 5, components.Male, g)
	dead := reg.Spawn(0, 5, 5, components.Female, g)
	reg.vitMap.Get(dead).Alive = false

	if _, ok := reg.FindNearby(self, 5, 5, 1.0); ok {
		t.Error("FindNearby returned self or a dead creature")
	}

	living := reg.Spawn(0, 6, 6, components.Female, g)
	got, ok := reg.FindNearby(self, 5, 5, 1.5)
	if !ok || got != living {
		t.Error("FindNearby did not return the living creature")
	}
}

func TestFindNearbyRadius(t *testing.T) {
	reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))
	g := genome.Baseline()

	self := reg.Spawn(0, 0, 0, components.Male, g)
	reg.Spawn(0, 2, 0, components.Female, g)

	if _, ok := reg.FindNearby(self, 0, 0, 1.0); ok {
		t.Error("creature at distance 2 matched radius 1")
	}
	if _, ok := reg.FindNearby(self, 0, 0, 2.0); !ok {
		t.Error("creature at distance 2 did not match radius 2")
	}
}

func TestFindMate(t *testing.T) {
	g := genome.Baseline()

	tests := []struct {
		name         string
		mateSex      components.Sex
		mateX, mateY int
		mateEnergy   float64
		want         bool
	}{
		{"adjacent opposite sex", components.Female, 6, 5, 60, true},
		{"diagonal opposite sex", components.Female, 6, 6, 60, true},
		{"same tile", components.Female, 5, 5, 60, true},
		{"same sex", components.Male, 6, 5, 60, false},
		{"too far", components.Female, 7, 5, 60, false},
		{"too hungry", components.Female, 6, 5, 49, false},
		{"exactly at energy gate", components.Female, 6, 5, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))
			self := reg.Spawn(0, 5, 5, components.Male, g)
			mate := reg.Spawn(0, tt.mateX, tt.mateY, tt.mateSex, g)
			reg.vitMap.Get(mate).Energy = tt.mateEnergy

			ident := *reg.idMap.Get(self)
			_, ok := reg.FindMate(self, ident, 5, 5)
			if ok != tt.want {
				t.Errorf("FindMate = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestFindMateRequiresSameSpecies(t *testing.T) {
	species := []Species{
		{ID: 0, Diet: Herbivore},
		{ID: 1, Diet: Herbivore},
	}
	reg := NewRegistry(species)
	g := genome.Baseline()

	self := reg.Spawn(0, 5, 5, components.Male, g)
	reg.Spawn(1, 6, 5, components.Female, g)

	ident := *reg.idMap.Get(self)
	if _, ok := reg.FindMate(self, ident, 5, 5); ok {
		t.Error("FindMate matched a different species")
	}
}

func TestCompactRemovesOnlyDead(t *testing.T) {
	reg := NewRegistry(testSpecies(Herbivore, Terrestrial, false))
	g := genome.Baseline()

	a := reg.Spawn(0, 1, 1, components.Male, g)
	b := reg.Spawn(0, 2, 2, components.Female, g)
	c := reg.Spawn(0, 3, 3, components.Male, g)
	reg.vitMap.Get(b).Alive = false

	if removed := reg.Compact(); removed != 1 {
		t.Errorf("Compact removed %d, want 1", removed)
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d after compaction, want 2", reg.Len())
	}
	if reg.Entity(0) != a || reg.Entity(1) != c {
		t.Error("compaction broke creation order")
	}
}
