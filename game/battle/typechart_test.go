package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeduel/server/game/dex"
)

func TestEffectiveness_SingleType(t *testing.T) {
	assert.Equal(t, 2.0, Effectiveness(dex.TypeWater, []dex.TypeID{dex.TypeFire}))
	assert.Equal(t, 0.5, Effectiveness(dex.TypeFire, []dex.TypeID{dex.TypeWater}))
	assert.Equal(t, 1.0, Effectiveness(dex.TypeNormal, []dex.TypeID{dex.TypeWater}))
}

func TestEffectiveness_Immunities(t *testing.T) {
	assert.Equal(t, 0.0, Effectiveness(dex.TypeElectric, []dex.TypeID{dex.TypeGround}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypeNormal, []dex.TypeID{dex.TypeGhost}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypeFighting, []dex.TypeID{dex.TypeGhost}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypeGround, []dex.TypeID{dex.TypeFlying}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypePoison, []dex.TypeID{dex.TypeSteel}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypePsychic, []dex.TypeID{dex.TypeDark}))
	assert.Equal(t, 0.0, Effectiveness(dex.TypeDragon, []dex.TypeID{dex.TypeFairy}))
}

func TestEffectiveness_DualTypeProducts(t *testing.T) {
	// Electric into Water/Flying multiplies both weaknesses.
	assert.Equal(t, 4.0, Effectiveness(dex.TypeElectric, []dex.TypeID{dex.TypeWater, dex.TypeFlying}))
	// Fire into Water/Dragon stacks both resists.
	assert.Equal(t, 0.25, Effectiveness(dex.TypeFire, []dex.TypeID{dex.TypeWater, dex.TypeDragon}))
	// One immune type zeroes the whole product.
	assert.Equal(t, 0.0, Effectiveness(dex.TypeGround, []dex.TypeID{dex.TypeRock, dex.TypeFlying}))
}

func TestEffectiveness_UnknownDefenderIsNeutral(t *testing.T) {
	assert.Equal(t, 1.0, Effectiveness(dex.TypeWater, nil))
}
