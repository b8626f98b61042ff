package dex

import "fmt"

// AbilityID identifies a creature ability. Hooks for each ability live
// in the battle package; the dex only records which creature has what.
type AbilityID int

const (
	AbilityNone AbilityID = iota
	AbilityIntimidate
	AbilityLevitate
	AbilityWaterAbsorb
	AbilitySturdy
	AbilityRoughSkin
	AbilityLimber
	AbilityInsomnia
	AbilityWaterVeil
	AbilityChlorophyll
	AbilitySwiftSwim
	AbilityMoxie
	AbilityRegenerator
	AbilityPressure
	AbilityHugePower
	AbilityMultiscale
)

var abilityNames = map[AbilityID]string{
	AbilityNone:        "",
	AbilityIntimidate:  "Intimidate",
	AbilityLevitate:    "Levitate",
	AbilityWaterAbsorb: "Water Absorb",
	AbilitySturdy:      "Sturdy",
	AbilityRoughSkin:   "Rough Skin",
	AbilityLimber:      "Limber",
	AbilityInsomnia:    "Insomnia",
	AbilityWaterVeil:   "Water Veil",
	AbilityChlorophyll: "Chlorophyll",
	AbilitySwiftSwim:   "Swift Swim",
	AbilityMoxie:       "Moxie",
	AbilityRegenerator: "Regenerator",
	AbilityPressure:    "Pressure",
	AbilityHugePower:   "Huge Power",
	AbilityMultiscale:  "Multiscale",
}

func (a AbilityID) String() string { return abilityNames[a] }

// BaseStats are a species' base stat values.
type BaseStats struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// LearnsetEntry marks a move as learnable at or above the given level.
type LearnsetEntry struct {
	Level int
	Move  string
}

// Species is the static definition of one creature species.
type Species struct {
	ID       int
	Name     string
	Types    []TypeID
	Stats    BaseStats
	Ability  AbilityID
	Learnset []LearnsetEntry
}

// Provider supplies static species and move data to the battle engine.
type Provider interface {
	SpeciesByID(id int) (*Species, error)
	MoveByName(name string) (*Move, error)
	// LearnableMoves returns every move the species can know at the
	// given level, in learnset order.
	LearnableMoves(speciesID, level int) ([]*Move, error)
}

// StaticProvider serves the embedded dataset.
type StaticProvider struct {
	species map[int]*Species
	moves   map[string]*Move
}

// NewProvider returns a Provider backed by the built-in dataset.
func NewProvider() *StaticProvider {
	p := &StaticProvider{
		species: make(map[int]*Species, len(allSpecies)),
		moves:   make(map[string]*Move, len(allMoves)),
	}
	for i := range allMoves {
		p.moves[allMoves[i].Name] = &allMoves[i]
	}
	for i := range allSpecies {
		p.species[allSpecies[i].ID] = &allSpecies[i]
	}
	return p
}

func (p *StaticProvider) SpeciesByID(id int) (*Species, error) {
	sp, ok := p.species[id]
	if !ok {
		return nil, fmt.Errorf("dex: unknown species id %d", id)
	}
	return sp, nil
}

func (p *StaticProvider) MoveByName(name string) (*Move, error) {
	mv, ok := p.moves[name]
	if !ok {
		return nil, fmt.Errorf("dex: unknown move %q", name)
	}
	return mv, nil
}

func (p *StaticProvider) LearnableMoves(speciesID, level int) ([]*Move, error) {
	sp, err := p.SpeciesByID(speciesID)
	if err != nil {
		return nil, err
	}
	var out []*Move
	for _, entry := range sp.Learnset {
		if entry.Level > level {
			continue
		}
		mv, ok := p.moves[entry.Move]
		if !ok {
			return nil, fmt.Errorf("dex: species %q references unknown move %q", sp.Name, entry.Move)
		}
		out = append(out, mv)
	}
	return out, nil
}
