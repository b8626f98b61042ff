package dex

// TypeID identifies one of the elemental types. A closed enum is used
// instead of free-form strings so an unknown type is a compile error,
// not a silent 1x multiplier.
type TypeID int

const (
	TypeNone TypeID = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

var typeNames = map[TypeID]string{
	TypeNone:     "Typeless",
	TypeNormal:   "Normal",
	TypeFire:     "Fire",
	TypeWater:    "Water",
	TypeElectric: "Electric",
	TypeGrass:    "Grass",
	TypeIce:      "Ice",
	TypeFighting: "Fighting",
	TypePoison:   "Poison",
	TypeGround:   "Ground",
	TypeFlying:   "Flying",
	TypePsychic:  "Psychic",
	TypeBug:      "Bug",
	TypeRock:     "Rock",
	TypeGhost:    "Ghost",
	TypeDragon:   "Dragon",
	TypeDark:     "Dark",
	TypeSteel:    "Steel",
	TypeFairy:    "Fairy",
}

func (t TypeID) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Typeless"
}

// StatID indexes the six combat stats plus the two battle-only
// accuracy/evasion stages.
type StatID int

const (
	StatHP StatID = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion
)

var statNames = map[StatID]string{
	StatHP:        "HP",
	StatAttack:    "Attack",
	StatDefense:   "Defense",
	StatSpAttack:  "Sp. Attack",
	StatSpDefense: "Sp. Defense",
	StatSpeed:     "Speed",
	StatAccuracy:  "accuracy",
	StatEvasion:   "evasiveness",
}

func (s StatID) String() string { return statNames[s] }

// Category distinguishes damaging move kinds from pure utility moves.
type Category int

const (
	CategoryStatus Category = iota
	CategoryPhysical
	CategorySpecial
)

// StatusID is a non-volatile status condition. A creature holds at most one.
type StatusID int

const (
	StatusNone StatusID = iota
	StatusPoisoned
	StatusBadlyPoisoned
	StatusBurned
	StatusParalyzed
	StatusAsleep
	StatusConfused
)

var statusNames = map[StatusID]string{
	StatusNone:          "",
	StatusPoisoned:      "poisoned",
	StatusBadlyPoisoned: "badly poisoned",
	StatusBurned:        "burned",
	StatusParalyzed:     "paralyzed",
	StatusAsleep:        "asleep",
	StatusConfused:      "confused",
}

func (s StatusID) String() string { return statusNames[s] }

// WeatherID is the active field-wide weather.
type WeatherID int

const (
	WeatherNone WeatherID = iota
	WeatherRain
	WeatherSun
	WeatherSandstorm
	WeatherHail
)

var weatherNames = map[WeatherID]string{
	WeatherNone:      "",
	WeatherRain:      "rain",
	WeatherSun:       "harsh sunlight",
	WeatherSandstorm: "sandstorm",
	WeatherHail:      "hail",
}

func (w WeatherID) String() string { return weatherNames[w] }

// TerrainID is the active field-wide terrain.
type TerrainID int

const (
	TerrainNone TerrainID = iota
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
	TerrainElectric
)

var terrainNames = map[TerrainID]string{
	TerrainNone:     "",
	TerrainGrassy:   "Grassy Terrain",
	TerrainMisty:    "Misty Terrain",
	TerrainPsychic:  "Psychic Terrain",
	TerrainElectric: "Electric Terrain",
}

func (t TerrainID) String() string { return terrainNames[t] }

// HazardID is an entry hazard laid on one side of the field.
type HazardID int

const (
	HazardStealthRock HazardID = iota + 1
	HazardSpikes
	HazardToxicSpikes
)

var hazardNames = map[HazardID]string{
	HazardStealthRock: "Stealth Rock",
	HazardSpikes:      "Spikes",
	HazardToxicSpikes: "Toxic Spikes",
}

func (h HazardID) String() string { return hazardNames[h] }

// FieldEffectID is a timed field-wide or side-wide effect.
type FieldEffectID int

const (
	FieldTailwind FieldEffectID = iota + 1
	FieldTrickRoom
	FieldLightScreen
	FieldReflect
	FieldAuroraVeil
	FieldSafeguard
)

var fieldEffectNames = map[FieldEffectID]string{
	FieldTailwind:    "Tailwind",
	FieldTrickRoom:   "Trick Room",
	FieldLightScreen: "Light Screen",
	FieldReflect:     "Reflect",
	FieldAuroraVeil:  "Aurora Veil",
	FieldSafeguard:   "Safeguard",
}

func (f FieldEffectID) String() string { return fieldEffectNames[f] }
