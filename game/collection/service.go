package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pokeduel/server/cache"
	"github.com/pokeduel/server/game/battle"
	"github.com/pokeduel/server/game/dex"
	"github.com/pokeduel/server/model"
)

const selectableTTL = time.Minute

// SelectableCreature is one entry of the team-selection projection.
type SelectableCreature struct {
	ID        int64  `json:"id"`
	SpeciesID int    `json:"species_id"`
	Name      string `json:"name"`
	Shiny     bool   `json:"shiny"`
	Trained   bool   `json:"trained"`
	Nature    string `json:"nature"`
}

// Lister is the collection read access the projection needs.
type Lister interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Creature, error)
}

// Service builds the de-duplicated selectable-creature projection. A
// species contributes at most one creature per shiny × trained variant,
// so the list never exceeds four entries per species.
type Service struct {
	store Lister
	dex   dex.Provider
	cache cache.Cache
	log   *zap.Logger
}

func NewService(store Lister, provider dex.Provider, c cache.Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, dex: provider, cache: c, log: log}
}

// Selectable returns the projection for one player, served from cache
// when fresh.
func (s *Service) Selectable(ctx context.Context, userID int64) ([]SelectableCreature, error) {
	key := selectableKey(userID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil && raw != "" {
			var cached []SelectableCreature
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	type variant struct {
		species int
		shiny   bool
		trained bool
	}
	seen := make(map[variant]bool)
	out := make([]SelectableCreature, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		v := variant{species: row.SpeciesID, shiny: row.Shiny, trained: row.HasNonzeroEV()}
		if seen[v] {
			continue
		}
		seen[v] = true
		name := row.Nickname
		if name == "" {
			if sp, err := s.dex.SpeciesByID(row.SpeciesID); err == nil {
				name = sp.Name
			}
		}
		out = append(out, SelectableCreature{
			ID:        row.ID,
			SpeciesID: row.SpeciesID,
			Name:      name,
			Shiny:     row.Shiny,
			Trained:   v.trained,
			Nature:    row.Nature,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), selectableTTL); err != nil {
				s.log.Debug("selectable cache write failed", zap.Error(err))
			}
		}
	}
	return out, nil
}

// Invalidate drops the cached projections for the given players.
func (s *Service) Invalidate(ctx context.Context, userIDs ...int64) {
	if s.cache == nil {
		return
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = selectableKey(id)
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.log.Debug("selectable cache invalidation failed", zap.Error(err))
	}
}

func selectableKey(userID int64) string {
	return fmt.Sprintf("collection:selectable:%d", userID)
}

// InvalidatingStore wraps a battle.CollectionStore so ownership
// transfers drop both players' cached projections.
type InvalidatingStore struct {
	battle.CollectionStore
	svc *Service
}

func NewInvalidatingStore(inner battle.CollectionStore, svc *Service) *InvalidatingStore {
	return &InvalidatingStore{CollectionStore: inner, svc: svc}
}

func (is *InvalidatingStore) TransferOwnership(ctx context.Context, ids []int64, from, to int64) error {
	if err := is.CollectionStore.TransferOwnership(ctx, ids, from, to); err != nil {
		return err
	}
	is.svc.Invalidate(ctx, from, to)
	return nil
}
