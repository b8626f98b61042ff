package model

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pokeduel/server/game/battle"
)

// CollectionStore reads and writes the persistent creature collection.
type CollectionStore struct {
	db *gorm.DB
}

func NewCollectionStore(db *gorm.DB) *CollectionStore {
	return &CollectionStore{db: db}
}

var _ battle.CollectionStore = (*CollectionStore)(nil)

// ListByOwner returns every creature a player owns.
func (cs *CollectionStore) ListByOwner(ctx context.Context, ownerID int64) ([]Creature, error) {
	var rows []Creature
	err := cs.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("species_id, id").
		Find(&rows).Error
	return rows, err
}

func (cs *CollectionStore) CreaturesByIDs(ctx context.Context, ownerID int64, ids []int64) ([]battle.CollectionCreature, error) {
	var rows []Creature
	err := cs.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]battle.CollectionCreature, len(rows))
	for i := range rows {
		out[i] = toBattleCreature(&rows[i])
	}
	return out, nil
}

// TransferOwnership moves creatures between players inside one
// transaction; a mismatch on the current owner aborts the whole batch.
func (cs *CollectionStore) TransferOwnership(ctx context.Context, ids []int64, from, to int64) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Creature{}).
			Where("id IN ? AND owner_id = ?", ids, from).
			Update("owner_id", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("transfer: expected %d rows, moved %d", len(ids), res.RowsAffected)
		}
		return nil
	})
}

func toBattleCreature(c *Creature) battle.CollectionCreature {
	return battle.CollectionCreature{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		SpeciesID: c.SpeciesID,
		Nickname:  c.Nickname,
		Shiny:     c.Shiny,
		Nature:    c.Nature,
		IVs: battle.Spread{
			HP: c.IVHP, Attack: c.IVAttack, Defense: c.IVDefense,
			SpAttack: c.IVSpAttack, SpDefense: c.IVSpDefense, Speed: c.IVSpeed,
		},
		EVs: battle.Spread{
			HP: c.EVHP, Attack: c.EVAttack, Defense: c.EVDefense,
			SpAttack: c.EVSpAttack, SpDefense: c.EVSpDefense, Speed: c.EVSpeed,
		},
	}
}
