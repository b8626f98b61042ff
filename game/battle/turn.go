package battle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokeduel/server/game/dex"
)

// Every creature enters battle at the same level.
const battleLevel = 50

const (
	minTeamSize = 1
	maxTeamSize = 5
)

// Orchestrator sequences one player action into one committed session
// transition. It owns no cross-session state; each call loads, mutates
// and saves a single session document.
type Orchestrator struct {
	store   Store
	dex     dex.Provider
	coll    CollectionStore
	rewards *RewardProcessor
	rng     *RNG
	log     *zap.Logger
}

func NewOrchestrator(store Store, provider dex.Provider, coll CollectionStore, rewards *RewardProcessor, rng *RNG, log *zap.Logger) *Orchestrator {
	if rng == nil {
		rng = NewRNG(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{store: store, dex: provider, coll: coll, rewards: rewards, rng: rng, log: log}
}

// CreateBattle opens a pending challenge between two players.
func (o *Orchestrator) CreateBattle(ctx context.Context, challengerID, opponentID, guildID int64, count int, friendly bool) (*Session, error) {
	if challengerID == opponentID {
		return nil, fmt.Errorf("%w: cannot challenge yourself", ErrInvalidTeam)
	}
	if count < minTeamSize || count > maxTeamSize {
		return nil, fmt.Errorf("%w: team size must be between %d and %d", ErrInvalidTeam, minTeamSize, maxTeamSize)
	}
	now := time.Now()
	s := &Session{
		ID:           uuid.NewString(),
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		GuildID:      guildID,
		Friendly:     friendly,
		Count:        count,
		Status:       StatusPending,
		Turn:         SideChallenger,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.AppendSystemLog(fmt.Sprintf("Battle challenge issued for %d versus %d.", count, count))
	if err := o.store.Create(ctx, s); err != nil {
		return nil, err
	}
	o.log.Info("battle created",
		zap.String("session", s.ID),
		zap.Int64("challenger", challengerID),
		zap.Int64("opponent", opponentID),
		zap.Bool("friendly", friendly))
	return s, nil
}

// Respond accepts or declines a pending challenge. Only the challenged
// player may respond.
func (o *Orchestrator) Respond(ctx context.Context, id string, userID int64, accept bool) (*Session, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID != s.OpponentID {
		return nil, ErrNotParticipant
	}
	if s.Status != StatusPending {
		return nil, ErrBattleNotActive
	}
	if accept {
		s.Status = StatusActive
		s.AppendSystemLog("The challenge was accepted. Select your teams!")
	} else {
		s.Status = StatusCancelled
		s.AppendSystemLog("The challenge was declined.")
	}
	if err := o.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectTeam materializes the caller's chosen creatures into the
// session. Once both teams are set, entry abilities fire and the faster
// active moves first.
func (o *Orchestrator) SelectTeam(ctx context.Context, id string, userID int64, creatureIDs []int64) (*Session, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	side, err := s.SideOf(userID)
	if err != nil {
		return nil, err
	}
	if s.Status == StatusPending {
		return nil, ErrBattlePending
	}
	if s.Status != StatusActive {
		return nil, ErrBattleNotActive
	}
	if len(s.Team(side)) > 0 {
		return nil, ErrTeamAlreadySet
	}
	if len(creatureIDs) != s.Count {
		return nil, fmt.Errorf("%w: expected %d creatures, got %d", ErrInvalidTeam, s.Count, len(creatureIDs))
	}

	rows, err := o.coll.CreaturesByIDs(ctx, userID, creatureIDs)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(creatureIDs) {
		return nil, fmt.Errorf("%w: one or more creatures are not in your collection", ErrInvalidTeam)
	}

	team := make([]*BattlePokemon, 0, len(rows))
	for _, row := range rows {
		p, err := o.materialize(row)
		if err != nil {
			return nil, err
		}
		team = append(team, p)
	}
	if side == SideChallenger {
		s.Challengers = team
	} else {
		s.Opponents = team
	}
	s.AppendLog(side, "team selected")

	if len(s.Challengers) > 0 && len(s.Opponents) > 0 {
		o.startBattle(s)
	}

	if err := o.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// startBattle fires entry hooks for both leads and decides who moves
// first from effective speed; Trick Room inverts the comparison.
func (o *Orchestrator) startBattle(s *Session) {
	s.AppendSystemLog(fmt.Sprintf("%s and %s enter the field!",
		s.Active(SideChallenger).Name, s.Active(SideOpponent).Name))
	for _, side := range []Side{SideChallenger, SideOpponent} {
		for _, m := range abilityOnSwitchIn(s.Active(side), s.Active(side.Other())) {
			s.AppendSystemLog(m)
		}
	}

	challSpe := o.effectiveSpeed(s, SideChallenger)
	oppSpe := o.effectiveSpeed(s, SideOpponent)
	first := SideChallenger
	if oppSpe > challSpe {
		first = SideOpponent
	}
	if s.Field.Effects[dex.FieldTrickRoom] > 0 {
		first = first.Other()
	}
	s.Turn = first
	s.AppendSystemLog(fmt.Sprintf("The %s moves first!", first))
}

// effectiveSpeed folds stage, status, ability and Tailwind multipliers
// into one side's active speed.
func (o *Orchestrator) effectiveSpeed(s *Session, side Side) int {
	p := s.Active(side)
	spe := float64(p.EffectiveStat(dex.StatSpeed))
	spe *= abilitySpeedMultiplier(p, s.Field.Weather)
	if s.SideStateOf(side).HasEffect(dex.FieldTailwind) {
		spe *= 2
	}
	return int(spe)
}

func (o *Orchestrator) materialize(row CollectionCreature) (*BattlePokemon, error) {
	sp, err := o.dex.SpeciesByID(row.SpeciesID)
	if err != nil {
		return nil, err
	}
	stats := CalcStats(sp.Stats, row.IVs, row.EVs, row.Nature, sp.Ability, battleLevel)
	moves, err := BuildMoveset(o.dex, sp.ID, battleLevel)
	if err != nil {
		return nil, err
	}
	name := row.Nickname
	if name == "" {
		name = sp.Name
	}
	return &BattlePokemon{
		SpeciesID:    sp.ID,
		Name:         name,
		Level:        battleLevel,
		CollectionID: row.ID,
		Shiny:        row.Shiny,
		Types:        sp.Types,
		Ability:      sp.Ability,
		MaxHP:        stats.HP,
		CurrentHP:    stats.HP,
		Stats:        stats,
		Moves:        moves,
	}, nil
}

// Get returns a session the caller participates in.
func (o *Orchestrator) Get(ctx context.Context, id string, userID int64) (*Session, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.SideOf(userID); err != nil {
		return nil, err
	}
	return s, nil
}

// SubmitMove runs one full turn transition for the caller's declared
// move and returns the updated session with a one-line summary.
func (o *Orchestrator) SubmitMove(ctx context.Context, id string, userID int64, moveName string) (*Session, string, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	side, err := s.SideOf(userID)
	if err != nil {
		return nil, "", err
	}
	if s.Status != StatusActive {
		return nil, "", ErrBattleNotActive
	}
	if len(s.Challengers) == 0 || len(s.Opponents) == 0 {
		return nil, "", fmt.Errorf("%w: both teams must be selected", ErrInvalidTeam)
	}

	// Defensive pre-check: fainted actives are replaced before anything
	// else, and a wiped team terminates immediately.
	if done := o.replaceFaintedActives(ctx, s); done {
		if err := o.store.Save(ctx, s); err != nil {
			return nil, "", err
		}
		return s, "the battle is over", nil
	}

	if s.Turn != side {
		return nil, "", ErrNotYourTurn
	}
	// A pivot move leaves the turn with its user until the promised
	// switch happens; until then SwitchActive is the only legal action.
	if s.PivotPending {
		return nil, "", fmt.Errorf("%w: %s is on its way out", ErrSwitchRequired, s.Active(side).Name)
	}

	actor := s.Active(side)
	target := s.Active(side.Other())
	summary := fmt.Sprintf("%s used %s", actor.Name, moveName)

	// Once-per-turn protections from the previous round expire as the
	// owner begins to act.
	actor.ClearTurnFlags()

	skipped := processTurnStart(o.rng, s, side)
	processField(s)

	if done := o.checkTermination(ctx, s); done {
		if err := o.store.Save(ctx, s); err != nil {
			return nil, "", err
		}
		return s, "the battle is over", nil
	}

	if skipped || actor.Fainted() {
		s.Turn = side.Other()
		s.UpdatedAt = time.Now()
		if err := o.store.Save(ctx, s); err != nil {
			return nil, "", err
		}
		return s, fmt.Sprintf("%s could not move", actor.Name), nil
	}

	// A charge in progress or a locking move overrides the declaration.
	if actor.ChargeMove != "" {
		moveName = actor.ChargeMove
	} else if actor.LockTurns > 0 && actor.LockedMove != "" {
		moveName = actor.LockedMove
	}

	slot := actor.MoveslotByName(moveName)
	if slot == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownMove, moveName)
	}
	if slot.PP <= 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrNoPP, moveName)
	}
	mv, err := o.dex.MoveByName(moveName)
	if err != nil {
		return nil, "", err
	}

	if blocked, reason := restrictionGate(s, side, actor, mv); blocked {
		s.AppendSystemLog(reason)
		s.Turn = side.Other()
		s.UpdatedAt = time.Now()
		if err := o.store.Save(ctx, s); err != nil {
			return nil, "", err
		}
		return s, reason, nil
	}

	s.AppendLog(side, fmt.Sprintf("%s used %s!", actor.Name, mv.Name))
	succeeded := resolveMove(o.rng, s, side, mv, actor, target)
	if succeeded {
		cost := 1 + abilityExtraPPCost(target)
		slot.PP -= cost
		if slot.PP < 0 {
			slot.PP = 0
		}
		actor.LastMoveUsed = mv.Name
	}

	if done := o.checkTermination(ctx, s); done {
		if err := o.store.Save(ctx, s); err != nil {
			return nil, "", err
		}
		return s, summary, nil
	}
	o.replaceFaintedActives(ctx, s)

	if s.PivotPending {
		s.AppendSystemLog(fmt.Sprintf("Waiting for the %s to send in a replacement.", side))
	} else {
		s.Turn = side.Other()
	}
	s.UpdatedAt = time.Now()
	if err := o.store.Save(ctx, s); err != nil {
		return nil, "", err
	}
	return s, summary, nil
}

// restrictionGate enforces the fixed-order action restrictions. A
// violation wastes the turn without PP cost.
func restrictionGate(s *Session, side Side, actor *BattlePokemon, mv *dex.Move) (bool, string) {
	if actor.TauntTurns > 0 && mv.Category == dex.CategoryStatus {
		return true, fmt.Sprintf("%s can't use %s after the taunt!", actor.Name, mv.Name)
	}
	if actor.EncoreTurns > 0 && mv.Name != actor.EncoreMove {
		return true, fmt.Sprintf("%s must keep using %s!", actor.Name, actor.EncoreMove)
	}
	if actor.DisableTurns > 0 && mv.Name == actor.DisableMove {
		return true, fmt.Sprintf("%s's %s is disabled!", actor.Name, mv.Name)
	}
	target := s.Active(side.Other())
	if s.Field.Terrain == dex.TerrainMisty && inflictsStatus(mv) && grounded(target) {
		return true, "the misty terrain blocked the move!"
	}
	if s.Field.Terrain == dex.TerrainPsychic && mv.Priority > 0 && grounded(target) {
		return true, "the psychic terrain blocked the priority move!"
	}
	return false, ""
}

func inflictsStatus(mv *dex.Move) bool {
	if mv.Effect == nil {
		return false
	}
	return mv.Effect.Kind == dex.EffectStatus || mv.Effect.Kind == dex.EffectYawn
}

func grounded(p *BattlePokemon) bool {
	return p != nil && !p.HasType(dex.TypeFlying) && p.Ability != dex.AbilityLevitate
}

// SwitchActive swaps the caller's active creature. A pivot completion
// flips the turn that was deferred by the pivot move.
func (o *Orchestrator) SwitchActive(ctx context.Context, id string, userID int64, newIndex int) (*Session, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	side, err := s.SideOf(userID)
	if err != nil {
		return nil, err
	}
	if s.Status != StatusActive {
		return nil, ErrBattleNotActive
	}
	if s.Turn != side {
		return nil, ErrNotYourTurn
	}
	team := s.Team(side)
	if newIndex < 0 || newIndex >= len(team) {
		return nil, fmt.Errorf("%w: index out of range", ErrInvalidSwitch)
	}
	if newIndex == s.ActiveIndex(side) {
		return nil, fmt.Errorf("%w: already active", ErrInvalidSwitch)
	}
	incoming := team[newIndex]
	if incoming.Fainted() {
		return nil, fmt.Errorf("%w: %s has fainted", ErrInvalidSwitch, incoming.Name)
	}

	outgoing := s.Active(side)
	if outgoing != nil && !outgoing.Fainted() {
		if outgoing.TrapTurns > 0 && !outgoing.HasType(dex.TypeGhost) {
			return nil, fmt.Errorf("%w: %s is trapped by %s", ErrTrapped, outgoing.Name, outgoing.TrapMove)
		}
		for _, m := range abilityOnSwitchOut(outgoing) {
			s.AppendSystemLog(m)
		}
		outgoing.ClearVolatile()
	}

	s.SetActiveIndex(side, newIndex)
	s.AppendLog(side, fmt.Sprintf("%s was sent out!", incoming.Name))
	o.enterField(s, side, incoming)

	if s.PivotPending {
		s.PivotPending = false
	}
	if done := o.checkTermination(ctx, s); !done {
		s.Turn = side.Other()
	}
	s.UpdatedAt = time.Now()
	if err := o.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// enterField applies entry hazards and the switch-in ability hook to a
// creature arriving on the field.
func (o *Orchestrator) enterField(s *Session, side Side, p *BattlePokemon) {
	ss := s.SideStateOf(side)
	for _, h := range ss.Hazards {
		if p.Fainted() {
			break
		}
		switch h {
		case dex.HazardStealthRock:
			eff := Effectiveness(dex.TypeRock, p.Types)
			dmg := int(float64(p.MaxHP) / 8.0 * eff)
			if dmg > 0 {
				p.ApplyDamage(dmg)
				s.AppendSystemLog(fmt.Sprintf("Pointed stones dug into %s!", p.Name))
			}
		case dex.HazardSpikes:
			if grounded(p) {
				p.ApplyDamage(p.MaxHP / 8)
				s.AppendSystemLog(fmt.Sprintf("%s was hurt by spikes!", p.Name))
			}
		case dex.HazardToxicSpikes:
			if grounded(p) {
				applyStatus(o.rng, s, side, p, dex.StatusPoisoned)
			}
		}
	}
	if p.Fainted() {
		s.AppendSystemLog(fmt.Sprintf("%s fainted!", p.Name))
		return
	}
	for _, m := range abilityOnSwitchIn(p, s.Active(side.Other())) {
		s.AppendSystemLog(m)
	}
}

// Forfeit concedes the battle. No rewards are processed.
func (o *Orchestrator) Forfeit(ctx context.Context, id string, userID int64) (*Session, error) {
	s, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	side, err := s.SideOf(userID)
	if err != nil {
		return nil, err
	}
	if s.Status != StatusActive && s.Status != StatusPending {
		return nil, ErrBattleNotActive
	}
	winner := s.UserOf(side.Other())
	s.AppendLog(side, "forfeited the battle")
	s.Finish(winner)
	s.UpdatedAt = time.Now()
	if err := o.store.Save(ctx, s); err != nil {
		return nil, err
	}
	o.log.Info("battle forfeited", zap.String("session", s.ID), zap.Int64("by", userID))
	return s, nil
}

// replaceFaintedActives auto-switches any fainted active to the first
// healthy teammate. Returns true when the battle terminated instead.
func (o *Orchestrator) replaceFaintedActives(ctx context.Context, s *Session) bool {
	if done := o.checkTermination(ctx, s); done {
		return true
	}
	for _, side := range []Side{SideChallenger, SideOpponent} {
		p := s.Active(side)
		if p == nil || !p.Fainted() {
			continue
		}
		next := s.FirstHealthy(side)
		if next < 0 || next == s.ActiveIndex(side) {
			continue
		}
		s.SetActiveIndex(side, next)
		incoming := s.Active(side)
		s.AppendSystemLog(fmt.Sprintf("%s was sent out to replace its fallen teammate!", incoming.Name))
		o.enterField(s, side, incoming)
	}
	return o.checkTermination(ctx, s)
}

// checkTermination finishes the session when a team is wiped and runs
// reward processing. Reward failures are logged into the session but
// never block termination.
func (o *Orchestrator) checkTermination(ctx context.Context, s *Session) bool {
	if s.Status != StatusActive {
		return true
	}
	challWiped := s.Defeated(SideChallenger)
	oppWiped := s.Defeated(SideOpponent)
	if !challWiped && !oppWiped {
		return false
	}

	switch {
	case challWiped && oppWiped:
		s.Finish(0)
		s.AppendSystemLog("Both teams are unable to battle. The match is a draw!")
	case oppWiped:
		o.finishWithWinner(ctx, s, SideChallenger)
	default:
		o.finishWithWinner(ctx, s, SideOpponent)
	}
	s.UpdatedAt = time.Now()
	return true
}

func (o *Orchestrator) finishWithWinner(ctx context.Context, s *Session, winner Side) {
	s.Finish(s.UserOf(winner))
	s.AppendSystemLog(fmt.Sprintf("The %s wins the battle!", winner))
	if o.rewards == nil {
		return
	}
	if err := o.rewards.Process(ctx, s, winner); err != nil {
		o.log.Warn("reward processing failed",
			zap.String("session", s.ID), zap.Error(err))
		s.AppendSystemLog(fmt.Sprintf("Reward processing failed: %v", err))
	}
}
