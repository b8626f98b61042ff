package battle

import (
	"math"

	"github.com/pokeduel/server/game/dex"
)

const critChance = 0.0625

// HitInput bundles everything one damage computation needs. Attack and
// Defense are the already-stage-adjusted stats for the move's category.
type HitInput struct {
	Level         int
	Power         int
	Attack        int
	Defense       int
	MoveType      dex.TypeID
	AttackerTypes []dex.TypeID
	DefenderTypes []dex.TypeID
	Weather       dex.WeatherID
	Terrain       dex.TerrainID
	// NoCrit suppresses the critical roll (confusion self-hits).
	NoCrit bool
}

// HitResult is the outcome of one damage computation.
type HitResult struct {
	Damage        int
	Crit          bool
	Effectiveness float64
}

// CalcDamage computes a single hit. Zero power short-circuits to zero,
// immunity returns zero after the type check, and any connecting hit
// deals at least 1.
func CalcDamage(rng *RNG, in HitInput) HitResult {
	if in.Power <= 0 {
		return HitResult{Effectiveness: 1}
	}

	eff := Effectiveness(in.MoveType, in.DefenderTypes)
	if eff == 0 {
		return HitResult{Effectiveness: 0}
	}

	defense := in.Defense
	if defense < 1 {
		defense = 1
	}
	base := math.Floor(float64(2*in.Level/5+2)*float64(in.Power)*float64(in.Attack)/float64(defense)/50) + 2

	stab := 1.0
	for _, t := range in.AttackerTypes {
		if t == in.MoveType {
			stab = 1.5
			break
		}
	}

	crit := false
	critMult := 1.0
	if !in.NoCrit && rng.Chance(critChance) {
		crit = true
		critMult = 1.5
	}

	final := base * stab * eff * critMult * rng.Variance()
	final *= weatherModifier(in.Weather, in.MoveType)
	final *= terrainModifier(in.Terrain, in.MoveType)

	dmg := int(math.Floor(final))
	if dmg < 1 {
		dmg = 1
	}
	return HitResult{Damage: dmg, Crit: crit, Effectiveness: eff}
}

// weatherModifier applies the ±50% weather scaling to water and fire
// moves. Sandstorm and hail deal residual damage elsewhere and do not
// touch the formula.
func weatherModifier(w dex.WeatherID, moveType dex.TypeID) float64 {
	switch w {
	case dex.WeatherRain:
		if moveType == dex.TypeWater {
			return 1.5
		}
		if moveType == dex.TypeFire {
			return 0.5
		}
	case dex.WeatherSun:
		if moveType == dex.TypeFire {
			return 1.5
		}
		if moveType == dex.TypeWater {
			return 0.5
		}
	}
	return 1.0
}

// terrainModifier boosts the terrain's matching move type and halves
// dragon moves under Misty Terrain.
func terrainModifier(t dex.TerrainID, moveType dex.TypeID) float64 {
	switch t {
	case dex.TerrainGrassy:
		if moveType == dex.TypeGrass {
			return 1.3
		}
	case dex.TerrainElectric:
		if moveType == dex.TypeElectric {
			return 1.3
		}
	case dex.TerrainPsychic:
		if moveType == dex.TypePsychic {
			return 1.3
		}
	case dex.TerrainMisty:
		if moveType == dex.TypeDragon {
			return 0.5
		}
	}
	return 1.0
}

// accuracyCheck rolls the stage-adjusted hit chance. A move with
// accuracy 0 never misses.
func accuracyCheck(rng *RNG, accuracy int, attacker, defender *BattlePokemon) bool {
	if accuracy <= 0 {
		return true
	}
	stage := attacker.StageOf(dex.StatAccuracy) - defender.StageOf(dex.StatEvasion)
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}
	chance := float64(accuracy) / 100.0 * accuracyStageMultipliers[stage]
	return rng.Chance(chance)
}
