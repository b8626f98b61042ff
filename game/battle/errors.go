package battle

import "errors"

// Sentinel errors for the battle API. The REST layer maps these onto
// HTTP status codes; all of them leave the session unchanged.
var (
	ErrNotFound        = errors.New("battle not found")
	ErrNotParticipant  = errors.New("not a participant of this battle")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrBattleNotActive = errors.New("battle is not active")
	ErrBattlePending   = errors.New("battle has not been accepted yet")
	ErrInvalidTeam     = errors.New("invalid team selection")
	ErrTeamAlreadySet  = errors.New("team already selected")
	ErrUnknownMove     = errors.New("move not known by the active creature")
	ErrNoPP            = errors.New("no power points left for that move")
	ErrInvalidSwitch   = errors.New("invalid switch target")
	ErrSwitchRequired  = errors.New("a replacement must be switched in first")
	ErrTrapped         = errors.New("creature is trapped and cannot switch")
	ErrStaleSession    = errors.New("session was modified concurrently")
)
