package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *LocalCache {
	c, err := NewCache(Config{GCInterval: time.Minute})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestKV_SetGetDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "session:abc", "1", 0))

	v, err := c.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	ok, err := c.Exists(ctx, "session:abc")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Del(ctx, "session:abc"))
	_, err = c.Get(ctx, "session:abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKV_TTLExpires(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := c.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_SetNXOnlyFirstWriterWins(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	ok, err := c.SetNX(ctx, "duel:settled:s1", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "duel:settled:s1", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// An expired key can be claimed again.
	require.NoError(t, c.Set(ctx, "stale", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	ok, err = c.SetNX(ctx, "stale", "v2", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKV_ExpireSlidesTheWindow(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "session:tok", "1", 15*time.Millisecond))
	require.NoError(t, c.Expire(ctx, "session:tok", time.Minute))
	time.Sleep(30 * time.Millisecond)

	v, err := c.Get(ctx, "session:tok")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	assert.ErrorIs(t, c.Expire(ctx, "missing", time.Minute), ErrNotFound)
}

func TestHash_RecordFields(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.HSet(ctx, "duel:record:7", "wins", "3"))
	require.NoError(t, c.HSet(ctx, "duel:record:7", "losses", "1"))
	require.NoError(t, c.HSet(ctx, "duel:record:7", "wins", "4"))

	v, err := c.HGet(ctx, "duel:record:7", "wins")
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	_, err = c.HGet(ctx, "duel:record:7", "draws")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := c.HGetAll(ctx, "duel:record:7")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"wins": "4", "losses": "1"}, all)
}

func TestSet_RivalRoster(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SAdd(ctx, "duel:rivals:1", "2", "3"))
	require.NoError(t, c.SAdd(ctx, "duel:rivals:1", "2")) // idempotent

	members, err := c.SMembers(ctx, "duel:rivals:1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2", "3"}, members)

	ok, err := c.SIsMember(ctx, "duel:rivals:1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SIsMember(ctx, "duel:rivals:1", "9")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestZSet_LeaderboardOrderAndUpdate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.ZAdd(ctx, "duel:leaderboard", 3, "1"))
	require.NoError(t, c.ZAdd(ctx, "duel:leaderboard", 9, "2"))
	require.NoError(t, c.ZAdd(ctx, "duel:leaderboard", 6, "3"))

	top, err := c.ZRevRange(ctx, "duel:leaderboard", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, top)

	// Re-adding a member replaces its score and reranks.
	require.NoError(t, c.ZAdd(ctx, "duel:leaderboard", 12, "1"))
	top, err = c.ZRevRange(ctx, "duel:leaderboard", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, top)

	score, err := c.ZScore(ctx, "duel:leaderboard", "1")
	require.NoError(t, err)
	assert.Equal(t, 12.0, score)

	_, err = c.ZScore(ctx, "duel:leaderboard", "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_RecentFeedPushAndTrim(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.LPush(ctx, "duel:recent", "a"))
	require.NoError(t, c.LPush(ctx, "duel:recent", "b"))
	require.NoError(t, c.LPush(ctx, "duel:recent", "c"))

	rows, err := c.LRange(ctx, "duel:recent", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, rows)

	require.NoError(t, c.LTrim(ctx, "duel:recent", 0, 1))
	rows, err = c.LRange(ctx, "duel:recent", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, rows)

	// Out-of-range reads are empty, not errors.
	rows, err = c.LRange(ctx, "duel:recent", 5, 9)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
