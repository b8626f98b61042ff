package dex

// EffectKind tags a move's declarative effect descriptor. The set is
// closed: resolution dispatches over it with a switch, so adding a kind
// without handling it is caught by tests rather than by a missed map key.
type EffectKind int

const (
	EffectBoost EffectKind = iota + 1
	EffectMultiBoost
	EffectStatus
	EffectWeather
	EffectTerrain
	EffectHeal
	EffectDrain
	EffectRecoil
	EffectHazard
	EffectHazardClear
	EffectSound
	EffectCharge
	EffectDamageStatus
	EffectSelfFaint
	EffectField
	EffectCureTeam
	EffectPreventStatus
	EffectLock
	EffectDisable
	EffectMultiHit
	EffectClearBoosts
	EffectSpread
	EffectProtect
	EffectCounter
	EffectLeechSeed
	EffectTrap
	EffectYawn
	EffectWish
	EffectRoost
	EffectTaunt
	EffectEncore
	EffectPivot
)

// Effect is the declarative descriptor attached to a move. Only the
// fields relevant to its Kind are set; the rest stay zero.
type Effect struct {
	Kind EffectKind

	// EffectBoost / EffectMultiBoost
	Stat       StatID
	Stages     int
	Boosts     map[StatID]int
	SelfTarget bool

	// EffectStatus / EffectDamageStatus
	Status StatusID
	Chance float64 // 0 means always

	// EffectWeather / EffectTerrain / EffectField
	Weather WeatherID
	Terrain TerrainID
	Field   FieldEffectID
	Turns   int

	// EffectHeal / EffectDrain / EffectRecoil: 1/Fraction of the
	// relevant HP pool (max HP for heal, damage dealt for drain/recoil).
	Fraction int

	// EffectHazard
	Hazard HazardID

	// EffectMultiHit
	MinHits int
	MaxHits int

	// EffectCharge
	ChargeTurns int
}

// Move is the static definition of one move.
type Move struct {
	Name     string
	Type     TypeID
	Category Category
	Power    int
	Accuracy int // percent; 0 means the move never misses
	PP       int
	Priority int
	Sound    bool
	Effect   *Effect
}

// Damaging reports whether the move deals direct damage.
func (m *Move) Damaging() bool { return m.Power > 0 }
