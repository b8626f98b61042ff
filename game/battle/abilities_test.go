package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeduel/server/game/dex"
)

func TestAbilityInterceptDamage_Levitate(t *testing.T) {
	def := testCreature("Floaty")
	def.Ability = dex.AbilityLevitate

	dmg, msgs := abilityInterceptDamage(def, 50, damageSource{MoveType: dex.TypeGround, Direct: true})
	assert.Zero(t, dmg)
	assert.NotEmpty(t, msgs)

	// Residual damage is not a ground move; it still lands.
	dmg, _ = abilityInterceptDamage(def, 10, damageSource{})
	assert.Equal(t, 10, dmg)
}

func TestAbilityInterceptDamage_WaterAbsorb(t *testing.T) {
	def := testCreature("Sponge")
	def.Ability = dex.AbilityWaterAbsorb
	def.CurrentHP = 100

	dmg, msgs := abilityInterceptDamage(def, 60, damageSource{MoveType: dex.TypeWater, Direct: true})

	assert.Zero(t, dmg)
	assert.Equal(t, 100+160/4, def.CurrentHP)
	assert.NotEmpty(t, msgs)
}

func TestAbilityInterceptDamage_SturdySurvivesFromFull(t *testing.T) {
	def := testCreature("Boulder")
	def.Ability = dex.AbilitySturdy

	dmg, _ := abilityInterceptDamage(def, 999, damageSource{MoveType: dex.TypeWater, Direct: true})
	assert.Equal(t, def.MaxHP-1, dmg)

	// Already chipped: no endure.
	def.CurrentHP = def.MaxHP - 1
	dmg, _ = abilityInterceptDamage(def, 999, damageSource{MoveType: dex.TypeWater, Direct: true})
	assert.Equal(t, 999, dmg)
}

func TestAbilityModifyDamage_Multiscale(t *testing.T) {
	def := testCreature("Scaly")
	def.Ability = dex.AbilityMultiscale

	assert.Equal(t, 40, abilityModifyDamage(def, 80))
	def.CurrentHP--
	assert.Equal(t, 80, abilityModifyDamage(def, 80))
}

func TestAbilityBlocksStatus(t *testing.T) {
	limber := testCreature("Bendy")
	limber.Ability = dex.AbilityLimber
	blocked, msg := abilityBlocksStatus(limber, dex.StatusParalyzed)
	assert.True(t, blocked)
	assert.NotEmpty(t, msg)
	blocked, _ = abilityBlocksStatus(limber, dex.StatusBurned)
	assert.False(t, blocked)

	insomniac := testCreature("Owl")
	insomniac.Ability = dex.AbilityInsomnia
	blocked, _ = abilityBlocksStatus(insomniac, dex.StatusAsleep)
	assert.True(t, blocked)

	veiled := testCreature("Fin")
	veiled.Ability = dex.AbilityWaterVeil
	blocked, _ = abilityBlocksStatus(veiled, dex.StatusBurned)
	assert.True(t, blocked)
}

func TestAbilitySpeedMultiplier(t *testing.T) {
	leaf := testCreature("Leafy")
	leaf.Ability = dex.AbilityChlorophyll
	assert.Equal(t, 2.0, abilitySpeedMultiplier(leaf, dex.WeatherSun))
	assert.Equal(t, 1.0, abilitySpeedMultiplier(leaf, dex.WeatherRain))

	fish := testCreature("Fin")
	fish.Ability = dex.AbilitySwiftSwim
	assert.Equal(t, 2.0, abilitySpeedMultiplier(fish, dex.WeatherRain))
	assert.Equal(t, 1.0, abilitySpeedMultiplier(fish, dex.WeatherNone))
}

func TestAbilityOnSwitchIn_Intimidate(t *testing.T) {
	self := testCreature("Scary")
	self.Ability = dex.AbilityIntimidate
	foe := testCreature("Timid")

	msgs := abilityOnSwitchIn(self, foe)
	assert.NotEmpty(t, msgs)
	assert.Equal(t, -1, foe.StageOf(dex.StatAttack))

	// Foe already at the floor: nothing to lower, no message.
	foe.Boosts[dex.StatAttack] = -6
	assert.Empty(t, abilityOnSwitchIn(self, foe))
}

func TestAbilityOnSwitchOut_Regenerator(t *testing.T) {
	p := testCreature("Regen")
	p.Ability = dex.AbilityRegenerator
	p.CurrentHP = 60

	msgs := abilityOnSwitchOut(p)
	assert.NotEmpty(t, msgs)
	assert.Equal(t, 60+160/3, p.CurrentHP)

	// Full HP: nothing happens.
	p.CurrentHP = p.MaxHP
	assert.Empty(t, abilityOnSwitchOut(p))
}

func TestAbilityAfterMove_Moxie(t *testing.T) {
	p := testCreature("Bully")
	p.Ability = dex.AbilityMoxie

	assert.Empty(t, abilityAfterMove(p, false))
	assert.Zero(t, p.StageOf(dex.StatAttack))

	assert.NotEmpty(t, abilityAfterMove(p, true))
	assert.Equal(t, 1, p.StageOf(dex.StatAttack))
}

func TestAbilityAfterHit_RoughSkin(t *testing.T) {
	def := testCreature("Sandy")
	def.Ability = dex.AbilityRoughSkin
	attacker := testCreature("Puncher")

	msgs := abilityAfterHit(def, attacker, dex.CategoryPhysical)
	assert.NotEmpty(t, msgs)
	assert.Equal(t, 160-160/8, attacker.CurrentHP)

	// Special contactless hits do not trigger it.
	assert.Empty(t, abilityAfterHit(def, attacker, dex.CategorySpecial))
}

func TestAbilityExtraPPCost_Pressure(t *testing.T) {
	def := testCreature("Stern")
	def.Ability = dex.AbilityPressure
	assert.Equal(t, 1, abilityExtraPPCost(def))

	assert.Equal(t, 0, abilityExtraPPCost(testCreature("Plain")))
	assert.Equal(t, 0, abilityExtraPPCost(nil))
}
