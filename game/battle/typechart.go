package battle

import "github.com/pokeduel/server/game/dex"

// typeChart maps attack type to defend type multipliers. Unlisted
// pairs are neutral (1x).
var typeChart = map[dex.TypeID]map[dex.TypeID]float64{
	dex.TypeNormal: {
		dex.TypeRock: 0.5, dex.TypeSteel: 0.5,
		dex.TypeGhost: 0,
	},
	dex.TypeFire: {
		dex.TypeGrass: 2, dex.TypeIce: 2, dex.TypeBug: 2, dex.TypeSteel: 2,
		dex.TypeFire: 0.5, dex.TypeWater: 0.5, dex.TypeRock: 0.5, dex.TypeDragon: 0.5,
	},
	dex.TypeWater: {
		dex.TypeFire: 2, dex.TypeGround: 2, dex.TypeRock: 2,
		dex.TypeWater: 0.5, dex.TypeGrass: 0.5, dex.TypeDragon: 0.5,
	},
	dex.TypeElectric: {
		dex.TypeWater: 2, dex.TypeFlying: 2,
		dex.TypeElectric: 0.5, dex.TypeGrass: 0.5, dex.TypeDragon: 0.5,
		dex.TypeGround: 0,
	},
	dex.TypeGrass: {
		dex.TypeWater: 2, dex.TypeGround: 2, dex.TypeRock: 2,
		dex.TypeFire: 0.5, dex.TypeGrass: 0.5, dex.TypePoison: 0.5, dex.TypeFlying: 0.5,
		dex.TypeBug: 0.5, dex.TypeDragon: 0.5, dex.TypeSteel: 0.5,
	},
	dex.TypeIce: {
		dex.TypeGrass: 2, dex.TypeGround: 2, dex.TypeFlying: 2, dex.TypeDragon: 2,
		dex.TypeFire: 0.5, dex.TypeWater: 0.5, dex.TypeIce: 0.5, dex.TypeSteel: 0.5,
	},
	dex.TypeFighting: {
		dex.TypeNormal: 2, dex.TypeIce: 2, dex.TypeRock: 2, dex.TypeDark: 2, dex.TypeSteel: 2,
		dex.TypePoison: 0.5, dex.TypeFlying: 0.5, dex.TypePsychic: 0.5, dex.TypeBug: 0.5, dex.TypeFairy: 0.5,
		dex.TypeGhost: 0,
	},
	dex.TypePoison: {
		dex.TypeGrass: 2, dex.TypeFairy: 2,
		dex.TypePoison: 0.5, dex.TypeGround: 0.5, dex.TypeRock: 0.5, dex.TypeGhost: 0.5,
		dex.TypeSteel: 0,
	},
	dex.TypeGround: {
		dex.TypeFire: 2, dex.TypeElectric: 2, dex.TypePoison: 2, dex.TypeRock: 2, dex.TypeSteel: 2,
		dex.TypeGrass: 0.5, dex.TypeBug: 0.5,
		dex.TypeFlying: 0,
	},
	dex.TypeFlying: {
		dex.TypeGrass: 2, dex.TypeFighting: 2, dex.TypeBug: 2,
		dex.TypeElectric: 0.5, dex.TypeRock: 0.5, dex.TypeSteel: 0.5,
	},
	dex.TypePsychic: {
		dex.TypeFighting: 2, dex.TypePoison: 2,
		dex.TypePsychic: 0.5, dex.TypeSteel: 0.5,
		dex.TypeDark: 0,
	},
	dex.TypeBug: {
		dex.TypeGrass: 2, dex.TypePsychic: 2, dex.TypeDark: 2,
		dex.TypeFire: 0.5, dex.TypeFighting: 0.5, dex.TypePoison: 0.5, dex.TypeFlying: 0.5,
		dex.TypeGhost: 0.5, dex.TypeSteel: 0.5, dex.TypeFairy: 0.5,
	},
	dex.TypeRock: {
		dex.TypeFire: 2, dex.TypeIce: 2, dex.TypeFlying: 2, dex.TypeBug: 2,
		dex.TypeFighting: 0.5, dex.TypeGround: 0.5, dex.TypeSteel: 0.5,
	},
	dex.TypeGhost: {
		dex.TypePsychic: 2, dex.TypeGhost: 2,
		dex.TypeDark: 0.5,
		dex.TypeNormal: 0,
	},
	dex.TypeDragon: {
		dex.TypeDragon: 2,
		dex.TypeSteel:  0.5,
		dex.TypeFairy:  0,
	},
	dex.TypeDark: {
		dex.TypePsychic: 2, dex.TypeGhost: 2,
		dex.TypeFighting: 0.5, dex.TypeDark: 0.5, dex.TypeFairy: 0.5,
	},
	dex.TypeSteel: {
		dex.TypeIce: 2, dex.TypeRock: 2, dex.TypeFairy: 2,
		dex.TypeFire: 0.5, dex.TypeWater: 0.5, dex.TypeElectric: 0.5, dex.TypeSteel: 0.5,
	},
	dex.TypeFairy: {
		dex.TypeFighting: 2, dex.TypeDragon: 2, dex.TypeDark: 2,
		dex.TypeFire: 0.5, dex.TypePoison: 0.5, dex.TypeSteel: 0.5,
	},
}

// Effectiveness returns the product of the chart multipliers over all
// defender types. Typeless attacks are always neutral.
func Effectiveness(attack dex.TypeID, defenders []dex.TypeID) float64 {
	row, ok := typeChart[attack]
	if !ok {
		return 1.0
	}
	mult := 1.0
	for _, d := range defenders {
		if m, listed := row[d]; listed {
			mult *= m
		}
	}
	return mult
}
