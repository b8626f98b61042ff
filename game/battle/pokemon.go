package battle

import (
	"github.com/pokeduel/server/game/dex"
)

// stageMultipliers scales a combat stat by its boost stage.
var stageMultipliers = map[int]float64{
	-6: 2.0 / 8.0, -5: 2.0 / 7.0, -4: 2.0 / 6.0, -3: 2.0 / 5.0, -2: 2.0 / 4.0, -1: 2.0 / 3.0,
	0: 1, 1: 3.0 / 2.0, 2: 4.0 / 2.0, 3: 5.0 / 2.0, 4: 6.0 / 2.0, 5: 7.0 / 2.0, 6: 8.0 / 2.0,
}

// accuracyStageMultipliers scales the hit chance by the combined
// accuracy-minus-evasion stage.
var accuracyStageMultipliers = map[int]float64{
	-6: 3.0 / 9.0, -5: 3.0 / 8.0, -4: 3.0 / 7.0, -3: 3.0 / 6.0, -2: 3.0 / 5.0, -1: 3.0 / 4.0,
	0: 1, 1: 4.0 / 3.0, 2: 5.0 / 3.0, 3: 6.0 / 3.0, 4: 7.0 / 3.0, 5: 8.0 / 3.0, 6: 9.0 / 3.0,
}

// Moveslot is one learned move with its remaining power points.
type Moveslot struct {
	Name  string `json:"name"`
	PP    int    `json:"pp"`
	MaxPP int    `json:"max_pp"`
}

// BattlePokemon is one creature materialized into a battle session. It
// has no identity outside the session; CollectionID records which
// collection row it came from so RewardProcessor can transfer it.
type BattlePokemon struct {
	SpeciesID    int           `json:"species_id"`
	Name         string        `json:"name"`
	Level        int           `json:"level"`
	CollectionID int64         `json:"collection_id"`
	Shiny        bool          `json:"shiny,omitempty"`
	Types        []dex.TypeID  `json:"types"`
	Ability      dex.AbilityID `json:"ability"`
	MaxHP        int           `json:"max_hp"`
	CurrentHP    int           `json:"current_hp"`
	Stats        StatBlock     `json:"stats"`
	Moves        []Moveslot    `json:"moves"`

	Status           dex.StatusID `json:"status,omitempty"`
	SleepCounter     int          `json:"sleep_counter,omitempty"`
	ConfusionCounter int          `json:"confusion_counter,omitempty"`
	StatusCounter    int          `json:"status_counter,omitempty"` // badly-poisoned escalation

	Boosts map[dex.StatID]int `json:"boosts,omitempty"`

	// Transient battle flags.
	DrowsyTurns     int            `json:"drowsy_turns,omitempty"`
	WishTurns       int            `json:"wish_turns,omitempty"`
	WishAmount      int            `json:"wish_amount,omitempty"`
	FlyingRemoved   bool           `json:"flying_removed,omitempty"`
	OriginalTypes   []dex.TypeID   `json:"original_types,omitempty"`
	TauntTurns      int            `json:"taunt_turns,omitempty"`
	EncoreTurns     int            `json:"encore_turns,omitempty"`
	EncoreMove      string         `json:"encore_move,omitempty"`
	DisableTurns    int            `json:"disable_turns,omitempty"`
	DisableMove     string         `json:"disable_move,omitempty"`
	TrapTurns       int            `json:"trap_turns,omitempty"`
	TrapMove        string         `json:"trap_move,omitempty"`
	LockTurns       int            `json:"lock_turns,omitempty"`
	LockedMove      string         `json:"locked_move,omitempty"`
	LeechSeededBy   string         `json:"leech_seeded_by,omitempty"`
	CounterActive   bool           `json:"counter_active,omitempty"`
	CounterCategory dex.Category   `json:"counter_category,omitempty"`
	Protected       bool           `json:"protected,omitempty"`
	ChargeTurns     int            `json:"charge_turns,omitempty"`
	ChargeMove      string         `json:"charge_move,omitempty"`
	LastMoveUsed    string         `json:"last_move_used,omitempty"`
}

// Fainted reports whether the creature is out of the battle.
func (p *BattlePokemon) Fainted() bool { return p.CurrentHP <= 0 }

// HasType reports whether the creature currently has the given type.
func (p *BattlePokemon) HasType(t dex.TypeID) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// ApplyDamage subtracts HP, clamping at zero, and returns the amount
// actually lost.
func (p *BattlePokemon) ApplyDamage(n int) int {
	if n < 0 {
		n = 0
	}
	if n > p.CurrentHP {
		n = p.CurrentHP
	}
	p.CurrentHP -= n
	return n
}

// Heal adds HP, clamping at max, and returns the amount actually gained.
func (p *BattlePokemon) Heal(n int) int {
	if n < 0 {
		n = 0
	}
	if p.CurrentHP+n > p.MaxHP {
		n = p.MaxHP - p.CurrentHP
	}
	p.CurrentHP += n
	return n
}

// Boost shifts a stat stage, clamped to [-6, 6]. Returns false when the
// stage was already at the cap and nothing changed.
func (p *BattlePokemon) Boost(stat dex.StatID, stages int) bool {
	if p.Boosts == nil {
		p.Boosts = make(map[dex.StatID]int)
	}
	cur := p.Boosts[stat]
	next := cur + stages
	if next > 6 {
		next = 6
	}
	if next < -6 {
		next = -6
	}
	if next == cur {
		return false
	}
	p.Boosts[stat] = next
	return true
}

// StageOf returns the current boost stage for a stat.
func (p *BattlePokemon) StageOf(stat dex.StatID) int {
	if p.Boosts == nil {
		return 0
	}
	return p.Boosts[stat]
}

// EffectiveStat applies the boost stage to a combat stat. Burn halves
// Attack and paralysis halves Speed before ability speed hooks run.
func (p *BattlePokemon) EffectiveStat(stat dex.StatID) int {
	v := float64(p.Stats.Get(stat)) * stageMultipliers[p.StageOf(stat)]
	switch stat {
	case dex.StatAttack:
		if p.Status == dex.StatusBurned {
			v /= 2
		}
	case dex.StatSpeed:
		if p.Status == dex.StatusParalyzed {
			v /= 2
		}
	}
	n := int(v)
	if n < 1 {
		n = 1
	}
	return n
}

// MoveslotByName returns the learned slot for a move, or nil.
func (p *BattlePokemon) MoveslotByName(name string) *Moveslot {
	for i := range p.Moves {
		if p.Moves[i].Name == name {
			return &p.Moves[i]
		}
	}
	return nil
}

// ClearTurnFlags resets once-per-turn protections on the creature.
func (p *BattlePokemon) ClearTurnFlags() {
	p.Protected = false
	p.CounterActive = false
	p.CounterCategory = dex.CategoryStatus
}

// ClearVolatile wipes every battle-only flag. Called on switch-out;
// non-volatile status and its counters remain.
func (p *BattlePokemon) ClearVolatile() {
	p.Boosts = nil
	p.DrowsyTurns = 0
	p.WishTurns = 0
	p.WishAmount = 0
	if p.FlyingRemoved && len(p.OriginalTypes) > 0 {
		p.Types = p.OriginalTypes
	}
	p.FlyingRemoved = false
	p.OriginalTypes = nil
	p.TauntTurns = 0
	p.EncoreTurns = 0
	p.EncoreMove = ""
	p.DisableTurns = 0
	p.DisableMove = ""
	p.TrapTurns = 0
	p.TrapMove = ""
	p.LockTurns = 0
	p.LockedMove = ""
	p.LeechSeededBy = ""
	p.CounterActive = false
	p.Protected = false
	p.ChargeTurns = 0
	p.ChargeMove = ""
	p.LastMoveUsed = ""
}
