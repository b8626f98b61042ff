package battle

import (
	"time"

	"github.com/pokeduel/server/game/dex"
)

// SessionStatus is the battle lifecycle state. Transitions are
// monotonic: pending → active|cancelled, active → finished|cancelled.
type SessionStatus int

const (
	StatusPending SessionStatus = iota
	StatusActive
	StatusFinished
	StatusCancelled
)

var sessionStatusNames = map[SessionStatus]string{
	StatusPending:   "pending",
	StatusActive:    "active",
	StatusFinished:  "finished",
	StatusCancelled: "cancelled",
}

func (s SessionStatus) String() string { return sessionStatusNames[s] }

// Side identifies one of the two teams.
type Side int

const (
	SideChallenger Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideChallenger {
		return "challenger"
	}
	return "opponent"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideChallenger {
		return SideOpponent
	}
	return SideChallenger
}

// LogEntry is one line of the battle log. The log is append-only and
// never reordered or truncated by a transition.
type LogEntry struct {
	Side   string `json:"side"`
	UserID int64  `json:"user_id,omitempty"`
	Text   string `json:"text"`
}

// SideState holds the team-wide field state for one side.
type SideState struct {
	Hazards []dex.HazardID            `json:"hazards,omitempty"`
	Effects map[dex.FieldEffectID]int `json:"effects,omitempty"` // remaining turns
}

// HasHazard reports whether a hazard is laid on this side.
func (ss *SideState) HasHazard(h dex.HazardID) bool {
	for _, laid := range ss.Hazards {
		if laid == h {
			return true
		}
	}
	return false
}

// AddHazard lays a hazard; returns false if it was already present.
func (ss *SideState) AddHazard(h dex.HazardID) bool {
	if ss.HasHazard(h) {
		return false
	}
	ss.Hazards = append(ss.Hazards, h)
	return true
}

// HasEffect reports whether a timed side effect is active.
func (ss *SideState) HasEffect(f dex.FieldEffectID) bool {
	return ss.Effects[f] > 0
}

// SetEffect arms a timed side effect for the given number of turns.
func (ss *SideState) SetEffect(f dex.FieldEffectID, turns int) {
	if ss.Effects == nil {
		ss.Effects = make(map[dex.FieldEffectID]int)
	}
	ss.Effects[f] = turns
}

// FieldState holds field-wide weather, terrain and timed effects.
type FieldState struct {
	Weather      dex.WeatherID             `json:"weather,omitempty"`
	WeatherTurns int                       `json:"weather_turns,omitempty"`
	Terrain      dex.TerrainID             `json:"terrain,omitempty"`
	TerrainTurns int                       `json:"terrain_turns,omitempty"`
	Effects      map[dex.FieldEffectID]int `json:"effects,omitempty"`
}

// Session is the root aggregate for one battle. It is persisted as a
// single document and mutated only by the orchestrator.
type Session struct {
	ID           string `json:"id"`
	ChallengerID int64  `json:"challenger_id"`
	OpponentID   int64  `json:"opponent_id"`
	GuildID      int64  `json:"guild_id"`
	Friendly     bool   `json:"friendly"`
	Count        int    `json:"count"`

	Status           SessionStatus    `json:"status"`
	Turn             Side             `json:"turn"`
	Challengers      []*BattlePokemon `json:"challengers"`
	Opponents        []*BattlePokemon `json:"opponents"`
	ActiveChallenger int              `json:"active_challenger"`
	ActiveOpponent   int              `json:"active_opponent"`
	WinnerID         int64            `json:"winner_id,omitempty"`
	Draw             bool             `json:"draw,omitempty"`

	Field          FieldState `json:"field"`
	ChallengerSide SideState  `json:"challenger_side"`
	OpponentSide   SideState  `json:"opponent_side"`

	Log []LogEntry `json:"log"`

	// PivotPending defers the turn flip while a forced switch from a
	// pivot move is outstanding.
	PivotPending bool `json:"pivot_pending,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Version is the optimistic-concurrency counter maintained by the
	// store; it is not part of the document body.
	Version int64 `json:"-"`
}

// SideOf returns which side a user plays on, or an error.
func (s *Session) SideOf(userID int64) (Side, error) {
	switch userID {
	case s.ChallengerID:
		return SideChallenger, nil
	case s.OpponentID:
		return SideOpponent, nil
	default:
		return 0, ErrNotParticipant
	}
}

// UserOf returns the user id playing the given side.
func (s *Session) UserOf(side Side) int64 {
	if side == SideChallenger {
		return s.ChallengerID
	}
	return s.OpponentID
}

// Team returns the ordered team of a side.
func (s *Session) Team(side Side) []*BattlePokemon {
	if side == SideChallenger {
		return s.Challengers
	}
	return s.Opponents
}

// Active returns the currently-fighting creature of a side, or nil
// when the team has not been selected yet.
func (s *Session) Active(side Side) *BattlePokemon {
	team := s.Team(side)
	idx := s.ActiveIndex(side)
	if idx < 0 || idx >= len(team) {
		return nil
	}
	return team[idx]
}

// ActiveIndex returns the active slot index of a side.
func (s *Session) ActiveIndex(side Side) int {
	if side == SideChallenger {
		return s.ActiveChallenger
	}
	return s.ActiveOpponent
}

// SetActiveIndex updates the active slot index of a side.
func (s *Session) SetActiveIndex(side Side, idx int) {
	if side == SideChallenger {
		s.ActiveChallenger = idx
	} else {
		s.ActiveOpponent = idx
	}
}

// SideState returns the mutable side state for a side.
func (s *Session) SideStateOf(side Side) *SideState {
	if side == SideChallenger {
		return &s.ChallengerSide
	}
	return &s.OpponentSide
}

// Defeated reports whether every member of a side's team has fainted.
// An unselected team is not defeated.
func (s *Session) Defeated(side Side) bool {
	team := s.Team(side)
	if len(team) == 0 {
		return false
	}
	for _, p := range team {
		if !p.Fainted() {
			return false
		}
	}
	return true
}

// FirstHealthy returns the index of the first non-fainted team member,
// or -1 when the side is wiped.
func (s *Session) FirstHealthy(side Side) int {
	for i, p := range s.Team(side) {
		if !p.Fainted() {
			return i
		}
	}
	return -1
}

// FirstHealthyOther returns the index of the first non-fainted team
// member other than the given slot, or -1 when no bench remains.
func (s *Session) FirstHealthyOther(side Side, except int) int {
	for i, p := range s.Team(side) {
		if i != except && !p.Fainted() {
			return i
		}
	}
	return -1
}

// AppendLog appends a side-attributed log entry.
func (s *Session) AppendLog(side Side, text string) {
	s.Log = append(s.Log, LogEntry{Side: side.String(), UserID: s.UserOf(side), Text: text})
}

// AppendSystemLog appends an entry not attributed to either player.
func (s *Session) AppendSystemLog(text string) {
	s.Log = append(s.Log, LogEntry{Side: "system", Text: text})
}

// Finish marks the session finished with the given winner. Passing 0
// records a draw. A finished or cancelled session is never reopened.
func (s *Session) Finish(winnerID int64) {
	if s.Status == StatusFinished || s.Status == StatusCancelled {
		return
	}
	s.Status = StatusFinished
	if winnerID == 0 {
		s.Draw = true
	} else {
		s.WinnerID = winnerID
	}
}
