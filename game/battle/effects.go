package battle

import (
	"fmt"

	"github.com/pokeduel/server/game/dex"
)

// hitOutcome is the result of one pass through the damaging pipeline.
type hitOutcome struct {
	Landed bool
	Dealt  int
	KO     bool
}

// resolveMove applies one declared move. It returns true when the move
// succeeded; power points are only deducted for successful moves.
func resolveMove(rng *RNG, s *Session, side Side, mv *dex.Move, user, target *BattlePokemon) bool {
	eff := mv.Effect
	if eff == nil {
		if mv.Damaging() {
			out := resolveDamagingHit(rng, s, side, mv, user, target, false)
			finishAttack(s, user, out)
			return out.Landed
		}
		// Zero power, no descriptor: nothing beyond the PP cost.
		s.AppendSystemLog(fmt.Sprintf("%s used %s, but nothing happened.", user.Name, mv.Name))
		return true
	}

	switch eff.Kind {
	case dex.EffectBoost, dex.EffectSound:
		return resolveBoost(rng, s, mv, user, target)

	case dex.EffectMultiBoost:
		if mv.Damaging() {
			out := resolveDamagingHit(rng, s, side, mv, user, target, false)
			if out.Landed {
				applyBoosts(s, user, eff.Boosts)
				finishAttack(s, user, out)
			}
			return out.Landed
		}
		recipient := target
		if eff.SelfTarget {
			recipient = user
		}
		return applyBoosts(s, recipient, eff.Boosts)

	case dex.EffectStatus:
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		if target.Protected && !mv.Sound {
			s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
			return false
		}
		return applyStatus(rng, s, side.Other(), target, eff.Status)

	case dex.EffectDamageStatus:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && !out.KO && rng.Chance(eff.Chance) {
			applyStatus(rng, s, side.Other(), target, eff.Status)
		}
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectWeather:
		if s.Field.Weather == eff.Weather {
			s.AppendSystemLog("But it failed!")
			return false
		}
		s.Field.Weather = eff.Weather
		s.Field.WeatherTurns = eff.Turns
		s.AppendSystemLog(fmt.Sprintf("%s changed the weather: %s!", user.Name, eff.Weather))
		return true

	case dex.EffectTerrain:
		if s.Field.Terrain == eff.Terrain {
			s.AppendSystemLog("But it failed!")
			return false
		}
		s.Field.Terrain = eff.Terrain
		s.Field.TerrainTurns = eff.Turns
		s.AppendSystemLog(fmt.Sprintf("%s set the %s!", user.Name, eff.Terrain))
		return true

	case dex.EffectHeal:
		healed := user.Heal(user.MaxHP / eff.Fraction)
		if healed == 0 {
			s.AppendSystemLog(fmt.Sprintf("%s's HP is already full!", user.Name))
			return false
		}
		s.AppendSystemLog(fmt.Sprintf("%s restored %d HP.", user.Name, healed))
		return true

	case dex.EffectDrain:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && out.Dealt > 0 {
			healed := user.Heal(out.Dealt / eff.Fraction)
			if healed > 0 {
				s.AppendSystemLog(fmt.Sprintf("%s drained %d HP!", user.Name, healed))
			}
		}
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectRecoil:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && out.Dealt > 0 {
			recoil := out.Dealt / eff.Fraction
			if recoil < 1 {
				recoil = 1
			}
			user.ApplyDamage(recoil)
			s.AppendSystemLog(fmt.Sprintf("%s is damaged by recoil!", user.Name))
			if user.Fainted() {
				s.AppendSystemLog(fmt.Sprintf("%s fainted!", user.Name))
			}
		}
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectHazard:
		foe := s.SideStateOf(side.Other())
		if !foe.AddHazard(eff.Hazard) {
			s.AppendSystemLog("But it failed!")
			return false
		}
		s.AppendSystemLog(fmt.Sprintf("%s scattered %s around the opposing team!", user.Name, eff.Hazard))
		return true

	case dex.EffectHazardClear:
		var out hitOutcome
		if mv.Damaging() {
			out = resolveDamagingHit(rng, s, side, mv, user, target, false)
			if !out.Landed {
				return false
			}
		}
		own := s.SideStateOf(side)
		cleared := len(own.Hazards) > 0
		own.Hazards = nil
		if !mv.Damaging() {
			// Defog also blows away the opposing side's hazards.
			foe := s.SideStateOf(side.Other())
			cleared = cleared || len(foe.Hazards) > 0
			foe.Hazards = nil
		}
		if cleared {
			s.AppendSystemLog(fmt.Sprintf("%s cleared away the hazards!", user.Name))
		}
		finishAttack(s, user, out)
		return mv.Damaging() || cleared

	case dex.EffectCharge:
		if user.ChargeMove != mv.Name || user.ChargeTurns < eff.ChargeTurns {
			user.ChargeMove = mv.Name
			user.ChargeTurns++
			s.AppendSystemLog(fmt.Sprintf("%s is gathering power for %s!", user.Name, mv.Name))
			return false
		}
		user.ChargeTurns = 0
		user.ChargeMove = ""
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectSelfFaint:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		user.ApplyDamage(user.CurrentHP)
		s.AppendSystemLog(fmt.Sprintf("%s fainted!", user.Name))
		finishAttack(s, user, out)
		return true

	case dex.EffectField:
		if eff.Field == dex.FieldTrickRoom {
			if s.Field.Effects != nil && s.Field.Effects[eff.Field] > 0 {
				delete(s.Field.Effects, eff.Field)
				s.AppendSystemLog("The twisted dimensions returned to normal.")
				return true
			}
			if s.Field.Effects == nil {
				s.Field.Effects = make(map[dex.FieldEffectID]int)
			}
			s.Field.Effects[eff.Field] = eff.Turns
			s.AppendSystemLog(fmt.Sprintf("%s twisted the dimensions!", user.Name))
			return true
		}
		own := s.SideStateOf(side)
		if own.HasEffect(eff.Field) {
			s.AppendSystemLog("But it failed!")
			return false
		}
		own.SetEffect(eff.Field, eff.Turns)
		s.AppendSystemLog(fmt.Sprintf("%s raised on the %s side!", eff.Field, side))
		return true

	case dex.EffectPreventStatus:
		own := s.SideStateOf(side)
		if own.HasEffect(eff.Field) {
			s.AppendSystemLog("But it failed!")
			return false
		}
		own.SetEffect(eff.Field, eff.Turns)
		s.AppendSystemLog(fmt.Sprintf("The %s side is protected by a mystical veil!", side))
		return true

	case dex.EffectCureTeam:
		cured := false
		for _, p := range s.Team(side) {
			if p.Status != dex.StatusNone && !p.Fainted() {
				p.Status = dex.StatusNone
				p.SleepCounter = 0
				p.ConfusionCounter = 0
				p.StatusCounter = 0
				cured = true
			}
		}
		if !cured {
			s.AppendSystemLog("But it failed!")
			return false
		}
		s.AppendSystemLog(fmt.Sprintf("%s's team was cured of status conditions!", user.Name))
		return true

	case dex.EffectLock:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && user.LockTurns == 0 {
			user.LockTurns = eff.Turns
			user.LockedMove = mv.Name
			s.AppendSystemLog(fmt.Sprintf("%s is thrashing about!", user.Name))
		} else if user.LockTurns > 0 {
			user.LockTurns--
			if user.LockTurns == 0 {
				user.LockedMove = ""
				s.AppendSystemLog(fmt.Sprintf("%s calmed down.", user.Name))
			}
		}
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectDisable:
		if target.LastMoveUsed == "" || target.DisableTurns > 0 {
			s.AppendSystemLog("But it failed!")
			return false
		}
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		target.DisableTurns = eff.Turns
		target.DisableMove = target.LastMoveUsed
		s.AppendSystemLog(fmt.Sprintf("%s's %s was disabled!", target.Name, target.DisableMove))
		return true

	case dex.EffectEncore:
		if target.LastMoveUsed == "" || target.EncoreTurns > 0 {
			s.AppendSystemLog("But it failed!")
			return false
		}
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		target.EncoreTurns = eff.Turns
		target.EncoreMove = target.LastMoveUsed
		s.AppendSystemLog(fmt.Sprintf("%s received an encore!", target.Name))
		return true

	case dex.EffectTaunt:
		if target.TauntTurns > 0 {
			s.AppendSystemLog("But it failed!")
			return false
		}
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		target.TauntTurns = eff.Turns
		s.AppendSystemLog(fmt.Sprintf("%s fell for the taunt!", target.Name))
		return true

	case dex.EffectMultiHit:
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		if target.Protected {
			s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
			return false
		}
		hits := eff.MinHits
		if eff.MaxHits > eff.MinHits {
			hits = rng.Between(eff.MinHits, eff.MaxHits)
		}
		var last hitOutcome
		landedHits := 0
		for i := 0; i < hits && !target.Fainted(); i++ {
			last = resolveDamagingHit(rng, s, side, mv, user, target, true)
			if !last.Landed {
				break
			}
			landedHits++
		}
		if landedHits > 0 {
			s.AppendSystemLog(fmt.Sprintf("Hit %d time(s)!", landedHits))
		}
		finishAttack(s, user, last)
		return landedHits > 0

	case dex.EffectClearBoosts:
		s.Active(side).Boosts = nil
		if foe := s.Active(side.Other()); foe != nil {
			foe.Boosts = nil
		}
		s.AppendSystemLog("All stat changes were eliminated!")
		return true

	case dex.EffectSpread:
		// Singles resolution: one target.
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectProtect:
		user.Protected = true
		s.AppendSystemLog(fmt.Sprintf("%s protected itself!", user.Name))
		return true

	case dex.EffectCounter:
		user.CounterActive = true
		user.CounterCategory = mv.Category
		s.AppendSystemLog(fmt.Sprintf("%s braced to retaliate!", user.Name))
		return true

	case dex.EffectLeechSeed:
		if target.LeechSeededBy != "" || target.HasType(dex.TypeGrass) {
			s.AppendSystemLog("But it failed!")
			return false
		}
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		if target.Protected {
			s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
			return false
		}
		target.LeechSeededBy = user.Name
		s.AppendSystemLog(fmt.Sprintf("%s was seeded!", target.Name))
		return true

	case dex.EffectTrap:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && !out.KO && target.TrapTurns == 0 {
			target.TrapTurns = eff.Turns
			target.TrapMove = mv.Name
			s.AppendSystemLog(fmt.Sprintf("%s was trapped by %s!", target.Name, mv.Name))
		}
		finishAttack(s, user, out)
		return out.Landed

	case dex.EffectYawn:
		if target.DrowsyTurns > 0 || target.Status != dex.StatusNone {
			s.AppendSystemLog("But it failed!")
			return false
		}
		if target.Protected {
			s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
			return false
		}
		if shielded, msg := sideStatusGuard(s, side.Other(), target); shielded {
			s.AppendSystemLog(msg)
			return false
		}
		target.DrowsyTurns = 2
		s.AppendSystemLog(fmt.Sprintf("%s grew drowsy!", target.Name))
		return true

	case dex.EffectWish:
		if user.WishTurns > 0 {
			s.AppendSystemLog("But it failed!")
			return false
		}
		user.WishTurns = 1
		user.WishAmount = user.MaxHP / 2
		s.AppendSystemLog(fmt.Sprintf("%s made a wish!", user.Name))
		return true

	case dex.EffectRoost:
		healed := user.Heal(user.MaxHP / 2)
		if healed == 0 {
			s.AppendSystemLog(fmt.Sprintf("%s's HP is already full!", user.Name))
			return false
		}
		if user.HasType(dex.TypeFlying) && !user.FlyingRemoved {
			user.OriginalTypes = user.Types
			grounded := make([]dex.TypeID, 0, len(user.Types))
			for _, t := range user.Types {
				if t != dex.TypeFlying {
					grounded = append(grounded, t)
				}
			}
			if len(grounded) == 0 {
				grounded = []dex.TypeID{dex.TypeNormal}
			}
			user.Types = grounded
			user.FlyingRemoved = true
		}
		s.AppendSystemLog(fmt.Sprintf("%s landed and restored %d HP.", user.Name, healed))
		return true

	case dex.EffectPivot:
		out := resolveDamagingHit(rng, s, side, mv, user, target, false)
		if out.Landed && s.FirstHealthyOther(side, s.ActiveIndex(side)) >= 0 {
			s.PivotPending = true
			s.AppendSystemLog(fmt.Sprintf("%s is switching out!", user.Name))
		}
		finishAttack(s, user, out)
		return out.Landed
	}

	return false
}

// resolveBoost handles single-stat boosts, including sound-based ones
// which ignore Protect.
func resolveBoost(rng *RNG, s *Session, mv *dex.Move, user, target *BattlePokemon) bool {
	eff := mv.Effect
	recipient := target
	if eff.SelfTarget {
		recipient = user
	}
	if recipient != user {
		if !accuracyCheck(rng, mv.Accuracy, user, target) {
			s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
			return false
		}
		if target.Protected && !mv.Sound {
			s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
			return false
		}
	}
	if !recipient.Boost(eff.Stat, eff.Stages) {
		s.AppendSystemLog(fmt.Sprintf("%s's %s won't go any further!", recipient.Name, eff.Stat))
		return false
	}
	s.AppendSystemLog(boostText(recipient, eff.Stat, eff.Stages))
	return true
}

func applyBoosts(s *Session, p *BattlePokemon, boosts map[dex.StatID]int) bool {
	changed := false
	for stat, stages := range boosts {
		if p.Boost(stat, stages) {
			s.AppendSystemLog(boostText(p, stat, stages))
			changed = true
		}
	}
	if !changed {
		s.AppendSystemLog("But it failed!")
	}
	return changed
}

func boostText(p *BattlePokemon, stat dex.StatID, stages int) string {
	switch {
	case stages >= 2:
		return fmt.Sprintf("%s's %s rose sharply!", p.Name, stat)
	case stages == 1:
		return fmt.Sprintf("%s's %s rose!", p.Name, stat)
	case stages == -1:
		return fmt.Sprintf("%s's %s fell!", p.Name, stat)
	default:
		return fmt.Sprintf("%s's %s fell harshly!", p.Name, stat)
	}
}

// applyStatus inflicts a non-volatile status on target (who fights on
// targetSide), honoring existing status, Safeguard, Misty Terrain and
// ability vetoes. Returns whether the status stuck.
func applyStatus(rng *RNG, s *Session, targetSide Side, target *BattlePokemon, status dex.StatusID) bool {
	if target.Fainted() || target.Status != dex.StatusNone {
		s.AppendSystemLog("But it failed!")
		return false
	}
	if shielded, msg := sideStatusGuard(s, targetSide, target); shielded {
		s.AppendSystemLog(msg)
		return false
	}
	if statusTypeImmune(target, status) {
		s.AppendSystemLog(fmt.Sprintf("It doesn't affect %s...", target.Name))
		return false
	}
	if blocked, msg := abilityBlocksStatus(target, status); blocked {
		s.AppendSystemLog(msg)
		return false
	}

	target.Status = status
	switch status {
	case dex.StatusAsleep:
		target.SleepCounter = 2
		s.AppendSystemLog(fmt.Sprintf("%s fell asleep!", target.Name))
	case dex.StatusConfused:
		target.ConfusionCounter = rng.Between(2, 5)
		s.AppendSystemLog(fmt.Sprintf("%s became confused!", target.Name))
	case dex.StatusBadlyPoisoned:
		target.StatusCounter = 1
		s.AppendSystemLog(fmt.Sprintf("%s was badly poisoned!", target.Name))
	case dex.StatusPoisoned:
		s.AppendSystemLog(fmt.Sprintf("%s was poisoned!", target.Name))
	case dex.StatusBurned:
		s.AppendSystemLog(fmt.Sprintf("%s was burned!", target.Name))
	case dex.StatusParalyzed:
		s.AppendSystemLog(fmt.Sprintf("%s is paralyzed!", target.Name))
	}
	return true
}

// sideStatusGuard is the shared side-level protection check against
// status infliction: Safeguard and Misty Terrain (grounded creatures
// only). Drowsiness and its sleep onset go through it too.
func sideStatusGuard(s *Session, side Side, p *BattlePokemon) (bool, string) {
	if s.SideStateOf(side).HasEffect(dex.FieldSafeguard) {
		return true, fmt.Sprintf("%s is protected by Safeguard!", p.Name)
	}
	if s.Field.Terrain == dex.TerrainMisty && grounded(p) {
		return true, fmt.Sprintf("%s is protected by the misty terrain!", p.Name)
	}
	return false, ""
}

// statusTypeImmune covers the type-based status immunities.
func statusTypeImmune(p *BattlePokemon, status dex.StatusID) bool {
	switch status {
	case dex.StatusPoisoned, dex.StatusBadlyPoisoned:
		return p.HasType(dex.TypePoison) || p.HasType(dex.TypeSteel)
	case dex.StatusBurned:
		return p.HasType(dex.TypeFire)
	case dex.StatusParalyzed:
		return p.HasType(dex.TypeElectric)
	}
	return false
}

// resolveDamagingHit is the shared pipeline for every damaging branch:
// accuracy, protection, damage computation, screens, counter
// reflection, ability scaling and interception, then HP deduction.
func resolveDamagingHit(rng *RNG, s *Session, side Side, mv *dex.Move, user, target *BattlePokemon, skipAccuracy bool) hitOutcome {
	if !skipAccuracy && !accuracyCheck(rng, mv.Accuracy, user, target) {
		s.AppendSystemLog(fmt.Sprintf("%s's %s missed!", user.Name, mv.Name))
		return hitOutcome{}
	}
	if target.Protected && !mv.Sound {
		s.AppendSystemLog(fmt.Sprintf("%s protected itself!", target.Name))
		return hitOutcome{}
	}

	atkStat, defStat := dex.StatAttack, dex.StatDefense
	if mv.Category == dex.CategorySpecial {
		atkStat, defStat = dex.StatSpAttack, dex.StatSpDefense
	}

	hit := CalcDamage(rng, HitInput{
		Level:         user.Level,
		Power:         mv.Power,
		Attack:        user.EffectiveStat(atkStat),
		Defense:       target.EffectiveStat(defStat),
		MoveType:      mv.Type,
		AttackerTypes: user.Types,
		DefenderTypes: target.Types,
		Weather:       s.Field.Weather,
		Terrain:       s.Field.Terrain,
	})

	switch {
	case hit.Effectiveness == 0:
		s.AppendSystemLog(fmt.Sprintf("It doesn't affect %s...", target.Name))
		return hitOutcome{}
	case hit.Effectiveness > 1:
		s.AppendSystemLog("It's super effective!")
	case hit.Effectiveness < 1:
		s.AppendSystemLog("It's not very effective...")
	}
	if hit.Crit {
		s.AppendSystemLog("A critical hit!")
	}

	dmg := hit.Damage

	defSide := s.SideStateOf(side.Other())
	if defSide.HasEffect(dex.FieldAuroraVeil) ||
		(mv.Category == dex.CategoryPhysical && defSide.HasEffect(dex.FieldReflect)) ||
		(mv.Category == dex.CategorySpecial && defSide.HasEffect(dex.FieldLightScreen)) {
		dmg /= 2
		if dmg < 1 {
			dmg = 1
		}
	}

	if target.CounterActive && target.CounterCategory == mv.Category {
		target.CounterActive = false
		reflected := user.ApplyDamage(dmg * 2)
		s.AppendSystemLog(fmt.Sprintf("%s struck back for %d damage!", target.Name, reflected))
		if user.Fainted() {
			s.AppendSystemLog(fmt.Sprintf("%s fainted!", user.Name))
		}
	}

	dmg = abilityModifyDamage(target, dmg)
	dmg, msgs := abilityInterceptDamage(target, dmg, damageSource{
		MoveType: mv.Type,
		Category: mv.Category,
		Direct:   true,
	})
	for _, m := range msgs {
		s.AppendSystemLog(m)
	}
	if dmg <= 0 {
		return hitOutcome{Landed: true}
	}

	dealt := target.ApplyDamage(dmg)
	s.AppendSystemLog(fmt.Sprintf("%s took %d damage!", target.Name, dealt))

	ko := target.Fainted()
	if ko {
		s.AppendSystemLog(fmt.Sprintf("%s fainted!", target.Name))
	}
	for _, m := range abilityAfterHit(target, user, mv.Category) {
		s.AppendSystemLog(m)
	}
	return hitOutcome{Landed: true, Dealt: dealt, KO: ko}
}

// finishAttack runs the attacker's post-move ability hook.
func finishAttack(s *Session, user *BattlePokemon, out hitOutcome) {
	if !out.Landed {
		return
	}
	for _, m := range abilityAfterMove(user, out.KO) {
		s.AppendSystemLog(m)
	}
}
