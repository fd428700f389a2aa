package sim

import "github.com/mlange-42/ark/ecs"

// Attack resolution constants.
const (
	damageEnergyScale = 5.0
	spineEnergyScale  = 3.0
	venomEnergyScale  = 2.0
	killReward        = 30.0 // fixed energy prize per kill, scaled by food efficiency
)

// resolveAttack applies one attack from attacker to target. Armor and shell
// absorb damage; spines retaliate; venom stacks on top. A kill pays the
// attacker a fixed reward scaled by its food efficiency, independent of prey
// size. Energy stays within [0, capacity] on both sides.
func (s *Simulation) resolveAttack(attacker, target ecs.Entity) {
	ag := s.reg.genMap.Get(attacker)
	tg := s.reg.genMap.Get(target)
	av := s.reg.vitMap.Get(attacker)
	tv := s.reg.vitMap.Get(target)

	damage := ag.AttackDamage + ag.BiteForce - (tg.Armor + 2*tg.ShellHardness)
	if damage <= 0 {
		return
	}
	s.collector.RecordAttack()

	tv.Energy -= damage * damageEnergyScale

	if tg.SpineDamage > 0 {
		av.Energy -= tg.SpineDamage * spineEnergyScale
		if av.Energy <= 0 {
			av.Energy = 0
			av.Alive = false
			s.collector.RecordDeath()
		}
	}

	if ag.HasVenom && ag.VenomPower > 0 {
		tv.Energy -= ag.VenomPower * venomEnergyScale
	}

	if tv.Energy <= 0 {
		tv.Energy = 0
		tv.Alive = false
		s.collector.RecordDeath()
		s.collector.RecordKill()
		if av.Alive {
			av.Energy = minf(ag.StomachCapacity, av.Energy+killReward*ag.FoodEfficiency)
		}
	}
}
