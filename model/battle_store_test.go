package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeduel/server/game/battle"
	"github.com/pokeduel/server/model"
	"github.com/pokeduel/server/testutil"
)

func newSession(id string) *battle.Session {
	now := time.Now()
	return &battle.Session{
		ID:           id,
		ChallengerID: 1,
		OpponentID:   2,
		GuildID:      7,
		Count:        3,
		Status:       battle.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestBattleStore_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := model.NewBattleStore(db)
	ctx := context.Background()

	s := newSession("rt-1")
	s.AppendSystemLog("battle started")
	require.NoError(t, store.Create(ctx, s))
	assert.Equal(t, int64(1), s.Version)

	got, err := store.Get(ctx, "rt-1")
	require.NoError(t, err)
	assert.Equal(t, s.ChallengerID, got.ChallengerID)
	assert.Equal(t, s.Count, got.Count)
	assert.Equal(t, battle.StatusActive, got.Status)
	assert.Equal(t, int64(1), got.Version)
	require.Len(t, got.Log, 1)
	assert.Equal(t, "battle started", got.Log[0].Text)
}

func TestBattleStore_GetUnknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := model.NewBattleStore(db)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, battle.ErrNotFound)
}

func TestBattleStore_SaveBumpsVersion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := model.NewBattleStore(db)
	ctx := context.Background()

	s := newSession("v-1")
	require.NoError(t, store.Create(ctx, s))

	s.AppendSystemLog("turn one")
	require.NoError(t, store.Save(ctx, s))
	assert.Equal(t, int64(2), s.Version)

	got, err := store.Get(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Len(t, got.Log, 1)
}

func TestBattleStore_ConcurrentSaveIsStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := model.NewBattleStore(db)
	ctx := context.Background()

	s := newSession("c-1")
	require.NoError(t, store.Create(ctx, s))

	first, err := store.Get(ctx, "c-1")
	require.NoError(t, err)
	second, err := store.Get(ctx, "c-1")
	require.NoError(t, err)

	first.AppendSystemLog("fast writer")
	require.NoError(t, store.Save(ctx, first))

	second.AppendSystemLog("slow writer")
	err = store.Save(ctx, second)
	assert.ErrorIs(t, err, battle.ErrStaleSession)

	// The fast writer's document won.
	got, err := store.Get(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, got.Log, 1)
	assert.Equal(t, "fast writer", got.Log[0].Text)
}

func TestBattleStore_CancelStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := model.NewBattleStore(db)
	ctx := context.Background()

	stale := newSession("stale-1")
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, store.Create(ctx, stale))
	// Create stamps updated_at at insert time; push it back manually.
	require.NoError(t, db.Model(&model.BattleRecord{}).
		Where("id = ?", "stale-1").
		Update("updated_at", time.Now().Add(-2*time.Hour)).Error)

	fresh := newSession("fresh-1")
	require.NoError(t, store.Create(ctx, fresh))

	finished := newSession("done-1")
	finished.Status = battle.StatusFinished
	require.NoError(t, store.Create(ctx, finished))

	reaped, err := store.CancelStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	got, err := store.Get(ctx, "stale-1")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusCancelled, got.Status)
	require.NotEmpty(t, got.Log)
	assert.Contains(t, got.Log[len(got.Log)-1].Text, "inactivity")

	got, err = store.Get(ctx, "fresh-1")
	require.NoError(t, err)
	assert.Equal(t, battle.StatusActive, got.Status)
}
