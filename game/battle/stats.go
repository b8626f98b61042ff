package battle

import (
	"math"

	"github.com/pokeduel/server/game/dex"
)

// StatBlock holds the six derived combat stats.
type StatBlock struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Get returns the value for a combat stat. Accuracy/evasion have no
// base value and return 0.
func (b StatBlock) Get(s dex.StatID) int {
	switch s {
	case dex.StatHP:
		return b.HP
	case dex.StatAttack:
		return b.Attack
	case dex.StatDefense:
		return b.Defense
	case dex.StatSpAttack:
		return b.SpAttack
	case dex.StatSpDefense:
		return b.SpDefense
	case dex.StatSpeed:
		return b.Speed
	default:
		return 0
	}
}

// Nature scales one stat up 10% and another down 10%. The five neutral
// natures leave Up == Down == StatHP (no effect).
type Nature struct {
	Name string
	Up   dex.StatID
	Down dex.StatID
}

var natures = map[string]Nature{
	// Neutral.
	"hardy":   {Name: "Hardy", Up: dex.StatHP, Down: dex.StatHP},
	"docile":  {Name: "Docile", Up: dex.StatHP, Down: dex.StatHP},
	"bashful": {Name: "Bashful", Up: dex.StatHP, Down: dex.StatHP},
	"quirky":  {Name: "Quirky", Up: dex.StatHP, Down: dex.StatHP},
	"serious": {Name: "Serious", Up: dex.StatHP, Down: dex.StatHP},
	// -Attack.
	"bold":   {Name: "Bold", Up: dex.StatDefense, Down: dex.StatAttack},
	"modest": {Name: "Modest", Up: dex.StatSpAttack, Down: dex.StatAttack},
	"calm":   {Name: "Calm", Up: dex.StatSpDefense, Down: dex.StatAttack},
	"timid":  {Name: "Timid", Up: dex.StatSpeed, Down: dex.StatAttack},
	// -Defense.
	"lonely": {Name: "Lonely", Up: dex.StatAttack, Down: dex.StatDefense},
	"mild":   {Name: "Mild", Up: dex.StatSpAttack, Down: dex.StatDefense},
	"gentle": {Name: "Gentle", Up: dex.StatSpDefense, Down: dex.StatDefense},
	"hasty":  {Name: "Hasty", Up: dex.StatSpeed, Down: dex.StatDefense},
	// -SpAttack.
	"adamant": {Name: "Adamant", Up: dex.StatAttack, Down: dex.StatSpAttack},
	"impish":  {Name: "Impish", Up: dex.StatDefense, Down: dex.StatSpAttack},
	"careful": {Name: "Careful", Up: dex.StatSpDefense, Down: dex.StatSpAttack},
	"jolly":   {Name: "Jolly", Up: dex.StatSpeed, Down: dex.StatSpAttack},
	// -SpDefense.
	"naughty": {Name: "Naughty", Up: dex.StatAttack, Down: dex.StatSpDefense},
	"lax":     {Name: "Lax", Up: dex.StatDefense, Down: dex.StatSpDefense},
	"rash":    {Name: "Rash", Up: dex.StatSpAttack, Down: dex.StatSpDefense},
	"naive":   {Name: "Naive", Up: dex.StatSpeed, Down: dex.StatSpDefense},
	// -Speed.
	"brave":   {Name: "Brave", Up: dex.StatAttack, Down: dex.StatSpeed},
	"relaxed": {Name: "Relaxed", Up: dex.StatDefense, Down: dex.StatSpeed},
	"quiet":   {Name: "Quiet", Up: dex.StatSpAttack, Down: dex.StatSpeed},
	"sassy":   {Name: "Sassy", Up: dex.StatSpDefense, Down: dex.StatSpeed},
}

// natureMultiplier returns the ±10% factor for a stat. Unknown nature
// names default to neutral.
func natureMultiplier(nature string, stat dex.StatID) float64 {
	n, ok := natures[nature]
	if !ok {
		return 1.0
	}
	switch stat {
	case n.Up:
		if n.Up != n.Down {
			return 1.1
		}
	case n.Down:
		return 0.9
	}
	return 1.0
}

// abilityStatMultiplier is the static stat scaling some abilities apply
// at stat-derivation time.
func abilityStatMultiplier(ability dex.AbilityID, stat dex.StatID) float64 {
	if ability == dex.AbilityHugePower && stat == dex.StatAttack {
		return 2.0
	}
	return 1.0
}

// Spread carries the per-stat individual or trained values of one
// creature. IVs range 0-31, EVs 0-252 per stat.
type Spread struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

func (s Spread) get(stat dex.StatID) int {
	switch stat {
	case dex.StatHP:
		return s.HP
	case dex.StatAttack:
		return s.Attack
	case dex.StatDefense:
		return s.Defense
	case dex.StatSpAttack:
		return s.SpAttack
	case dex.StatSpDefense:
		return s.SpDefense
	case dex.StatSpeed:
		return s.Speed
	default:
		return 0
	}
}

// Total returns the sum over all six stats.
func (s Spread) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpAttack + s.SpDefense + s.Speed
}

// CalcStats derives the real combat stats from base stats, IVs, EVs,
// nature and ability at the given level. All inputs are defaulted, so
// there is no error path.
func CalcStats(base dex.BaseStats, ivs, evs Spread, nature string, ability dex.AbilityID, level int) StatBlock {
	core := func(b, iv, ev int) int {
		return (2*b + iv + ev/4) * level / 100
	}
	stat := func(id dex.StatID, b int) int {
		raw := float64(core(b, ivs.get(id), evs.get(id)) + 5)
		return int(math.Floor(raw * natureMultiplier(nature, id) * abilityStatMultiplier(ability, id)))
	}
	return StatBlock{
		HP:        core(base.HP, ivs.HP, evs.HP) + level + 10,
		Attack:    stat(dex.StatAttack, base.Attack),
		Defense:   stat(dex.StatDefense, base.Defense),
		SpAttack:  stat(dex.StatSpAttack, base.SpAttack),
		SpDefense: stat(dex.StatSpDefense, base.SpDefense),
		Speed:     stat(dex.StatSpeed, base.Speed),
	}
}
