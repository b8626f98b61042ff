package battle

import (
	"fmt"

	"github.com/pokeduel/server/game/dex"
)

const confusionSelfHitPower = 40

// processTurnStart runs the beginning-of-turn pipeline for the acting
// creature: delayed effects first, then the status condition. It
// returns true when the declared action must be skipped this turn. A
// fainted creature is skipped without any processing.
func processTurnStart(rng *RNG, s *Session, side Side) bool {
	p := s.Active(side)
	if p == nil || p.Fainted() {
		return false
	}

	// Yawn drowsiness resolves before anything else can interrupt.
	if p.DrowsyTurns > 0 {
		p.DrowsyTurns--
		if p.DrowsyTurns == 0 && p.Status == dex.StatusNone {
			if shielded, msg := sideStatusGuard(s, side, p); shielded {
				s.AppendSystemLog(msg)
			} else if blocked, msg := abilityBlocksStatus(p, dex.StatusAsleep); blocked {
				s.AppendSystemLog(msg)
			} else {
				p.Status = dex.StatusAsleep
				p.SleepCounter = 2
				s.AppendSystemLog(fmt.Sprintf("%s succumbed to drowsiness and fell asleep!", p.Name))
			}
		}
	}

	if p.WishTurns > 0 {
		p.WishTurns--
		if p.WishTurns == 0 {
			healed := p.Heal(p.WishAmount)
			p.WishAmount = 0
			s.AppendSystemLog(fmt.Sprintf("%s's wish came true and restored %d HP!", p.Name, healed))
		}
	}

	if p.FlyingRemoved {
		p.Types = p.OriginalTypes
		p.FlyingRemoved = false
		p.OriginalTypes = nil
		s.AppendSystemLog(fmt.Sprintf("%s returned to the air.", p.Name))
	}

	skip := processStatusCondition(rng, s, p)

	decrementRestrictions(s, p)
	processPartialTrap(s, p)
	processLeechSeed(s, side, p)

	return skip
}

// processStatusCondition applies the residual damage or skip roll of
// the creature's non-volatile status. It returns true when the
// declared action is cancelled.
func processStatusCondition(rng *RNG, s *Session, p *BattlePokemon) bool {
	switch p.Status {
	case dex.StatusPoisoned:
		applyResidual(s, p, p.MaxHP/8, fmt.Sprintf("%s is hurt by poison!", p.Name))

	case dex.StatusBadlyPoisoned:
		if p.StatusCounter < 1 {
			p.StatusCounter = 1
		}
		applyResidual(s, p, p.StatusCounter*p.MaxHP/16, fmt.Sprintf("%s is hurt by toxic poison!", p.Name))
		p.StatusCounter++

	case dex.StatusBurned:
		applyResidual(s, p, p.MaxHP/16, fmt.Sprintf("%s is hurt by its burn!", p.Name))

	case dex.StatusParalyzed:
		if rng.Chance(0.25) {
			s.AppendSystemLog(fmt.Sprintf("%s is paralyzed and can't move!", p.Name))
			return true
		}

	case dex.StatusAsleep:
		if p.SleepCounter > 0 {
			p.SleepCounter--
			s.AppendSystemLog(fmt.Sprintf("%s is fast asleep.", p.Name))
			return true
		}
		p.Status = dex.StatusNone
		s.AppendSystemLog(fmt.Sprintf("%s woke up!", p.Name))

	case dex.StatusConfused:
		if p.ConfusionCounter > 0 {
			p.ConfusionCounter--
		}
		if p.ConfusionCounter == 0 {
			p.Status = dex.StatusNone
			s.AppendSystemLog(fmt.Sprintf("%s snapped out of confusion!", p.Name))
			break
		}
		s.AppendSystemLog(fmt.Sprintf("%s is confused!", p.Name))
		if rng.Chance(1.0 / 3.0) {
			hit := CalcDamage(rng, HitInput{
				Level:   p.Level,
				Power:   confusionSelfHitPower,
				Attack:  p.EffectiveStat(dex.StatAttack),
				Defense: p.EffectiveStat(dex.StatDefense),
				NoCrit:  true,
			})
			lost := p.ApplyDamage(hit.Damage)
			s.AppendSystemLog(fmt.Sprintf("%s hurt itself in confusion for %d damage!", p.Name, lost))
			return true
		}
	}
	return false
}

// decrementRestrictions ticks down taunt, encore and disable, logging
// each expiry.
func decrementRestrictions(s *Session, p *BattlePokemon) {
	if p.TauntTurns > 0 {
		p.TauntTurns--
		if p.TauntTurns == 0 {
			s.AppendSystemLog(fmt.Sprintf("%s's taunt wore off.", p.Name))
		}
	}
	if p.EncoreTurns > 0 {
		p.EncoreTurns--
		if p.EncoreTurns == 0 {
			p.EncoreMove = ""
			s.AppendSystemLog(fmt.Sprintf("%s's encore ended.", p.Name))
		}
	}
	if p.DisableTurns > 0 {
		p.DisableTurns--
		if p.DisableTurns == 0 {
			s.AppendSystemLog(fmt.Sprintf("%s's %s is no longer disabled.", p.Name, p.DisableMove))
			p.DisableMove = ""
		}
	}
}

func processPartialTrap(s *Session, p *BattlePokemon) {
	if p.TrapTurns <= 0 {
		return
	}
	applyResidual(s, p, p.MaxHP/8, fmt.Sprintf("%s is hurt by %s!", p.Name, p.TrapMove))
	p.TrapTurns--
	if p.TrapTurns == 0 {
		s.AppendSystemLog(fmt.Sprintf("%s was freed from %s.", p.Name, p.TrapMove))
		p.TrapMove = ""
	}
}

// processLeechSeed drains the seeded creature and heals the seeder,
// located by name on the opposing team.
func processLeechSeed(s *Session, side Side, p *BattlePokemon) {
	if p.LeechSeededBy == "" || p.Fainted() {
		return
	}
	drain := p.MaxHP / 8
	drain, msgs := abilityInterceptDamage(p, drain, damageSource{})
	for _, m := range msgs {
		s.AppendSystemLog(m)
	}
	if drain <= 0 {
		return
	}
	lost := p.ApplyDamage(drain)
	s.AppendSystemLog(fmt.Sprintf("%s's health is sapped by Leech Seed!", p.Name))
	for _, foe := range s.Team(side.Other()) {
		if foe.Name == p.LeechSeededBy && !foe.Fainted() {
			if healed := foe.Heal(lost); healed > 0 {
				s.AppendSystemLog(fmt.Sprintf("%s restored %d HP.", foe.Name, healed))
			}
			break
		}
	}
}

// applyResidual routes indirect damage through the defender's ability
// interception hook before deducting HP.
func applyResidual(s *Session, p *BattlePokemon, dmg int, text string) {
	dmg, msgs := abilityInterceptDamage(p, dmg, damageSource{})
	for _, m := range msgs {
		s.AppendSystemLog(m)
	}
	if dmg <= 0 {
		return
	}
	p.ApplyDamage(dmg)
	s.AppendSystemLog(text)
	if p.Fainted() {
		s.AppendSystemLog(fmt.Sprintf("%s fainted!", p.Name))
	}
}

// processField runs the once-per-turn field pass: weather chip damage
// on both actives, terrain healing, and every timed counter.
func processField(s *Session) {
	f := &s.Field

	switch f.Weather {
	case dex.WeatherSandstorm:
		s.AppendSystemLog("The sandstorm rages.")
		for _, side := range []Side{SideChallenger, SideOpponent} {
			p := s.Active(side)
			if p == nil || p.Fainted() || sandstormImmune(p) {
				continue
			}
			applyResidual(s, p, p.MaxHP/16, fmt.Sprintf("%s is buffeted by the sandstorm!", p.Name))
		}
	case dex.WeatherHail:
		s.AppendSystemLog("Hail continues to fall.")
		for _, side := range []Side{SideChallenger, SideOpponent} {
			p := s.Active(side)
			if p == nil || p.Fainted() || p.HasType(dex.TypeIce) {
				continue
			}
			applyResidual(s, p, p.MaxHP/16, fmt.Sprintf("%s is pelted by hail!", p.Name))
		}
	case dex.WeatherRain:
		s.AppendSystemLog("Rain continues to fall.")
	case dex.WeatherSun:
		s.AppendSystemLog("The sunlight is strong.")
	}

	if f.Weather != dex.WeatherNone {
		f.WeatherTurns--
		if f.WeatherTurns <= 0 {
			s.AppendSystemLog(fmt.Sprintf("The %s subsided.", f.Weather))
			f.Weather = dex.WeatherNone
			f.WeatherTurns = 0
		}
	}

	if f.Terrain == dex.TerrainGrassy {
		for _, side := range []Side{SideChallenger, SideOpponent} {
			p := s.Active(side)
			if p == nil || p.Fainted() || p.CurrentHP == p.MaxHP {
				continue
			}
			if p.HasType(dex.TypeFlying) || p.Ability == dex.AbilityLevitate {
				continue
			}
			healed := p.Heal(p.MaxHP / 16)
			s.AppendSystemLog(fmt.Sprintf("%s was healed %d HP by the grassy terrain.", p.Name, healed))
		}
	}

	if f.Terrain != dex.TerrainNone {
		f.TerrainTurns--
		if f.TerrainTurns <= 0 {
			s.AppendSystemLog(fmt.Sprintf("The %s faded.", f.Terrain))
			f.Terrain = dex.TerrainNone
			f.TerrainTurns = 0
		}
	}

	for effect, turns := range f.Effects {
		turns--
		if turns <= 0 {
			delete(f.Effects, effect)
			s.AppendSystemLog(fmt.Sprintf("%s wore off.", effect))
		} else {
			f.Effects[effect] = turns
		}
	}

	for _, side := range []Side{SideChallenger, SideOpponent} {
		ss := s.SideStateOf(side)
		for effect, turns := range ss.Effects {
			turns--
			if turns <= 0 {
				delete(ss.Effects, effect)
				s.AppendSystemLog(fmt.Sprintf("The %s side's %s wore off.", side, effect))
			} else {
				ss.Effects[effect] = turns
			}
		}
	}
}

func sandstormImmune(p *BattlePokemon) bool {
	return p.HasType(dex.TypeRock) || p.HasType(dex.TypeGround) || p.HasType(dex.TypeSteel)
}
