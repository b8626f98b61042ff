package battle

import (
	"fmt"

	"github.com/pokeduel/server/game/dex"
)

// Ability hooks are resolved by explicit switches over the closed
// AbilityID enum, one function per extension point. An ability with no
// case for a hook is a no-op there.

// damageSource describes damage about to land on a creature, so
// interception hooks can tell direct hits from residual chip damage.
type damageSource struct {
	MoveType dex.TypeID   // TypeNone for indirect damage
	Category dex.Category // meaningful only when Direct
	Direct   bool
}

// abilityInterceptDamage lets the defender's ability zero, reduce or
// convert incoming damage. It runs before HP deduction for both direct
// hits and residual damage.
func abilityInterceptDamage(def *BattlePokemon, dmg int, src damageSource) (int, []string) {
	var msgs []string
	switch def.Ability {
	case dex.AbilityLevitate:
		if src.Direct && src.MoveType == dex.TypeGround {
			return 0, []string{fmt.Sprintf("%s floats above the attack with Levitate!", def.Name)}
		}
	case dex.AbilityWaterAbsorb:
		if src.Direct && src.MoveType == dex.TypeWater {
			healed := def.Heal(def.MaxHP / 4)
			return 0, []string{fmt.Sprintf("%s absorbed the water and restored %d HP!", def.Name, healed)}
		}
	case dex.AbilitySturdy:
		if src.Direct && def.CurrentHP == def.MaxHP && dmg >= def.CurrentHP {
			msgs = append(msgs, fmt.Sprintf("%s hung on with Sturdy!", def.Name))
			return def.CurrentHP - 1, msgs
		}
	}
	return dmg, msgs
}

// abilityModifyDamage is the post-hoc damage scaling hook, applied
// after screens and counter reflection.
func abilityModifyDamage(def *BattlePokemon, dmg int) int {
	if def.Ability == dex.AbilityMultiscale && def.CurrentHP == def.MaxHP {
		return dmg / 2
	}
	return dmg
}

// abilityBlocksStatus vetoes a status-infliction attempt on the holder.
func abilityBlocksStatus(p *BattlePokemon, status dex.StatusID) (bool, string) {
	switch p.Ability {
	case dex.AbilityLimber:
		if status == dex.StatusParalyzed {
			return true, fmt.Sprintf("%s's Limber prevents paralysis!", p.Name)
		}
	case dex.AbilityInsomnia:
		if status == dex.StatusAsleep {
			return true, fmt.Sprintf("%s stays awake thanks to Insomnia!", p.Name)
		}
	case dex.AbilityWaterVeil:
		if status == dex.StatusBurned {
			return true, fmt.Sprintf("%s's Water Veil prevents burns!", p.Name)
		}
	}
	return false, ""
}

// abilitySpeedMultiplier is the weather-linked speed recalculation hook.
func abilitySpeedMultiplier(p *BattlePokemon, weather dex.WeatherID) float64 {
	switch p.Ability {
	case dex.AbilityChlorophyll:
		if weather == dex.WeatherSun {
			return 2.0
		}
	case dex.AbilitySwiftSwim:
		if weather == dex.WeatherRain {
			return 2.0
		}
	}
	return 1.0
}

// abilityOnSwitchIn fires when a creature enters the field and may
// mutate the opposing active.
func abilityOnSwitchIn(self, foe *BattlePokemon) []string {
	switch self.Ability {
	case dex.AbilityIntimidate:
		if foe != nil && !foe.Fainted() && foe.Boost(dex.StatAttack, -1) {
			return []string{fmt.Sprintf("%s's Intimidate lowered %s's Attack!", self.Name, foe.Name)}
		}
	}
	return nil
}

// abilityOnSwitchOut fires on a voluntary switch of the holder.
func abilityOnSwitchOut(p *BattlePokemon) []string {
	if p.Ability == dex.AbilityRegenerator && !p.Fainted() && p.CurrentHP < p.MaxHP {
		healed := p.Heal(p.MaxHP / 3)
		return []string{fmt.Sprintf("%s regenerated %d HP on the way out!", p.Name, healed)}
	}
	return nil
}

// abilityAfterMove fires after the holder's move fully resolves.
func abilityAfterMove(user *BattlePokemon, knockedOut bool) []string {
	if user.Ability == dex.AbilityMoxie && knockedOut && user.Boost(dex.StatAttack, 1) {
		return []string{fmt.Sprintf("%s's Moxie boosted its Attack!", user.Name)}
	}
	return nil
}

// abilityAfterHit fires on the attacker after a direct hit connects
// with the holder.
func abilityAfterHit(def, attacker *BattlePokemon, category dex.Category) []string {
	if def.Ability == dex.AbilityRoughSkin && category == dex.CategoryPhysical && !attacker.Fainted() {
		lost := attacker.ApplyDamage(attacker.MaxHP / 8)
		if lost > 0 {
			return []string{fmt.Sprintf("%s was hurt by %s's Rough Skin!", attacker.Name, def.Name)}
		}
	}
	return nil
}

// abilityExtraPPCost returns the extra power points the defender's
// ability drains from moves targeting it.
func abilityExtraPPCost(def *BattlePokemon) int {
	if def != nil && def.Ability == dex.AbilityPressure {
		return 1
	}
	return 0
}
