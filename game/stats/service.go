// Package stats maintains the cache-backed battle statistics views:
// per-player win/loss records, the ranked leaderboard, rival rosters
// and the recently-finished battle feed. Everything here is derived
// data; the session documents stay the source of truth.
package stats

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/pokeduel/server/cache"
)

const (
	leaderboardKey = "duel:leaderboard"
	recentKey      = "duel:recent"
	recentKeep     = 20
	settledTTL     = 24 * time.Hour

	rankedPoints   = 3
	friendlyPoints = 1
)

func recordKey(userID int64) string { return "duel:record:" + strconv.FormatInt(userID, 10) }
func rivalsKey(userID int64) string { return "duel:rivals:" + strconv.FormatInt(userID, 10) }

func settledKey(sessionID string) string { return "duel:settled:" + sessionID }

// Service folds finished battles into the statistics views and serves
// reads for the REST layer.
type Service struct {
	cache cache.Cache
	log   *zap.Logger
}

func New(c cache.Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{cache: c, log: log}
}

// Result describes one decided battle. Draws are not recorded.
type Result struct {
	SessionID  string
	WinnerID   int64
	LoserID    int64
	Friendly   bool
	FinishedAt time.Time
}

// RecentBattle is one entry of the recently-finished feed.
type RecentBattle struct {
	SessionID    string    `json:"session_id"`
	WinnerID     int64     `json:"winner_id"`
	LoserID      int64     `json:"loser_id"`
	Friendly     bool      `json:"friendly"`
	FirstMeeting bool      `json:"first_meeting"`
	FinishedAt   time.Time `json:"finished_at"`
}

// RankedPlayer is one leaderboard row.
type RankedPlayer struct {
	UserID int64   `json:"user_id"`
	Score  float64 `json:"score"`
}

// PlayerRecord is one player's aggregate standing.
type PlayerRecord struct {
	UserID int64   `json:"user_id"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Rivals []int64 `json:"rivals"`
}

// RecordResult folds one finished battle into every view. It is
// idempotent per session and best-effort: cache failures are logged,
// never surfaced to the battle flow.
func (s *Service) RecordResult(ctx context.Context, r Result) {
	if r.WinnerID == 0 || r.LoserID == 0 {
		return
	}
	fresh, err := s.cache.SetNX(ctx, settledKey(r.SessionID), "1", settledTTL)
	if err != nil {
		s.log.Warn("stats settle guard failed", zap.String("session", r.SessionID), zap.Error(err))
		return
	}
	if !fresh {
		return
	}

	s.bumpField(ctx, recordKey(r.WinnerID), "wins")
	s.bumpField(ctx, recordKey(r.LoserID), "losses")

	points := float64(friendlyPoints)
	if !r.Friendly {
		points = rankedPoints
	}
	member := strconv.FormatInt(r.WinnerID, 10)
	score, _ := s.cache.ZScore(ctx, leaderboardKey, member)
	if err := s.cache.ZAdd(ctx, leaderboardKey, score+points, member); err != nil {
		s.log.Warn("stats leaderboard update failed", zap.Int64("winner", r.WinnerID), zap.Error(err))
	}

	loser := strconv.FormatInt(r.LoserID, 10)
	met, _ := s.cache.SIsMember(ctx, rivalsKey(r.WinnerID), loser)
	if err := s.cache.SAdd(ctx, rivalsKey(r.WinnerID), loser); err == nil {
		_ = s.cache.SAdd(ctx, rivalsKey(r.LoserID), member)
	}

	entry := RecentBattle{
		SessionID:    r.SessionID,
		WinnerID:     r.WinnerID,
		LoserID:      r.LoserID,
		Friendly:     r.Friendly,
		FirstMeeting: !met,
		FinishedAt:   r.FinishedAt,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.cache.LPush(ctx, recentKey, string(raw)); err != nil {
		s.log.Warn("stats recent push failed", zap.String("session", r.SessionID), zap.Error(err))
		return
	}
	_ = s.cache.LTrim(ctx, recentKey, 0, recentKeep-1)
}

// bumpField increments one counter field of a record hash.
func (s *Service) bumpField(ctx context.Context, key, field string) {
	n := 0
	if raw, err := s.cache.HGet(ctx, key, field); err == nil {
		n, _ = strconv.Atoi(raw)
	}
	if err := s.cache.HSet(ctx, key, field, strconv.Itoa(n+1)); err != nil {
		s.log.Warn("stats record update failed", zap.String("key", key), zap.Error(err))
	}
}

// Leaderboard returns the top players by score, best first.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]RankedPlayer, error) {
	if limit <= 0 || limit > recentKeep {
		limit = 10
	}
	members, err := s.cache.ZRevRange(ctx, leaderboardKey, 0, int64(limit)-1)
	if err != nil {
		return nil, err
	}
	out := make([]RankedPlayer, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		score, _ := s.cache.ZScore(ctx, leaderboardKey, m)
		out = append(out, RankedPlayer{UserID: id, Score: score})
	}
	return out, nil
}

// Recent returns the latest finished battles, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]RecentBattle, error) {
	if limit <= 0 || limit > recentKeep {
		limit = recentKeep
	}
	rows, err := s.cache.LRange(ctx, recentKey, 0, int64(limit)-1)
	if err != nil {
		return nil, err
	}
	out := make([]RecentBattle, 0, len(rows))
	for _, row := range rows {
		var e RecentBattle
		if err := json.Unmarshal([]byte(row), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// RecordOf returns one player's win/loss record and rival roster.
func (s *Service) RecordOf(ctx context.Context, userID int64) (PlayerRecord, error) {
	rec := PlayerRecord{UserID: userID}
	fields, err := s.cache.HGetAll(ctx, recordKey(userID))
	if err != nil {
		return rec, err
	}
	rec.Wins, _ = strconv.Atoi(fields["wins"])
	rec.Losses, _ = strconv.Atoi(fields["losses"])

	members, err := s.cache.SMembers(ctx, rivalsKey(userID))
	if err != nil {
		return rec, err
	}
	for _, m := range members {
		if id, err := strconv.ParseInt(m, 10, 64); err == nil {
			rec.Rivals = append(rec.Rivals, id)
		}
	}
	sort.Slice(rec.Rivals, func(i, j int) bool { return rec.Rivals[i] < rec.Rivals[j] })
	return rec, nil
}
