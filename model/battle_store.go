package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pokeduel/server/game/battle"
)

// BattleStore persists battle sessions as versioned JSON documents.
type BattleStore struct {
	db *gorm.DB
}

func NewBattleStore(db *gorm.DB) *BattleStore {
	return &BattleStore{db: db}
}

var _ battle.Store = (*BattleStore)(nil)

func (bs *BattleStore) Create(ctx context.Context, s *battle.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	rec := &BattleRecord{
		ID:           s.ID,
		ChallengerID: s.ChallengerID,
		OpponentID:   s.OpponentID,
		GuildID:      s.GuildID,
		Status:       int(s.Status),
		Document:     datatypes.JSON(doc),
		Version:      1,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if err := bs.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	s.Version = 1
	return nil
}

func (bs *BattleStore) Get(ctx context.Context, id string) (*battle.Session, error) {
	var rec BattleRecord
	err := bs.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, battle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(&rec)
}

// Save writes the document back, guarded by the version the session
// was loaded with. A concurrent writer bumps the version first and the
// slower save fails with ErrStaleSession.
func (bs *BattleStore) Save(ctx context.Context, s *battle.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	res := bs.db.WithContext(ctx).Model(&BattleRecord{}).
		Where("id = ? AND version = ?", s.ID, s.Version).
		Updates(map[string]interface{}{
			"status":     int(s.Status),
			"document":   datatypes.JSON(doc),
			"version":    s.Version + 1,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return battle.ErrStaleSession
	}
	s.Version++
	return nil
}

// CancelStale reaps active sessions with no transition inside the
// window. A session that moves mid-reap simply loses its stale status
// and is skipped.
func (bs *BattleStore) CancelStale(ctx context.Context, window time.Duration) (int, error) {
	cutoff := time.Now().Add(-window)
	var ids []string
	err := bs.db.WithContext(ctx).Model(&BattleRecord{}).
		Where("status = ? AND updated_at < ?", int(battle.StatusActive), cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, id := range ids {
		s, err := bs.Get(ctx, id)
		if err != nil {
			continue
		}
		if s.Status != battle.StatusActive || s.UpdatedAt.After(cutoff) {
			continue
		}
		s.Status = battle.StatusCancelled
		s.AppendSystemLog("The battle was cancelled due to inactivity.")
		s.UpdatedAt = time.Now()
		if err := bs.Save(ctx, s); err != nil {
			if errors.Is(err, battle.ErrStaleSession) {
				continue
			}
			return reaped, err
		}
		reaped++
	}
	return reaped, nil
}

func decodeRecord(rec *BattleRecord) (*battle.Session, error) {
	var s battle.Session
	if err := json.Unmarshal(rec.Document, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", rec.ID, err)
	}
	s.Version = rec.Version
	return &s, nil
}
