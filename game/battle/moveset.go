package battle

import (
	"github.com/pokeduel/server/game/dex"
)

const maxMoveslots = 4

// BuildMoveset selects a bounded legal moveset for a species at the
// given level. The most recently learnable damaging moves are preferred
// and at least one utility move is retained when the learnset has one,
// so every creature can both attack and play the field.
func BuildMoveset(provider dex.Provider, speciesID, level int) ([]Moveslot, error) {
	learnable, err := provider.LearnableMoves(speciesID, level)
	if err != nil {
		return nil, err
	}

	// Walk newest-first so higher-level moves win the slots.
	var damaging, utility []*dex.Move
	seen := make(map[string]bool)
	for i := len(learnable) - 1; i >= 0; i-- {
		mv := learnable[i]
		if seen[mv.Name] {
			continue
		}
		seen[mv.Name] = true
		if mv.Damaging() {
			damaging = append(damaging, mv)
		} else {
			utility = append(utility, mv)
		}
	}

	picked := make([]*dex.Move, 0, maxMoveslots)
	damageSlots := maxMoveslots
	if len(utility) > 0 {
		damageSlots--
	}
	for _, mv := range damaging {
		if len(picked) == damageSlots {
			break
		}
		picked = append(picked, mv)
	}
	for _, mv := range utility {
		if len(picked) == maxMoveslots {
			break
		}
		picked = append(picked, mv)
	}

	slots := make([]Moveslot, len(picked))
	for i, mv := range picked {
		slots[i] = Moveslot{Name: mv.Name, PP: mv.PP, MaxPP: mv.PP}
	}
	return slots, nil
}
