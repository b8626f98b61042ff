package battle

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// CollectionCreature is one row of a player's persistent collection,
// as read at team-selection time.
type CollectionCreature struct {
	ID        int64
	OwnerID   int64
	SpeciesID int
	Nickname  string
	Shiny     bool
	Nature    string
	IVs       Spread
	EVs       Spread
}

// CollectionStore is the persistent creature collection. The engine
// reads it when materializing teams and writes it only through the
// loss transfer.
type CollectionStore interface {
	// CreaturesByIDs returns the owner's rows for the given ids;
	// rows not owned by ownerID are omitted.
	CreaturesByIDs(ctx context.Context, ownerID int64, ids []int64) ([]CollectionCreature, error)
	TransferOwnership(ctx context.Context, ids []int64, from, to int64) error
}

// Ledger credits currency and experience to a player's account.
type Ledger interface {
	Credit(ctx context.Context, userID, guildID int64, coins, exp int) error
}

// RewardConfig carries the per-creature reward bases.
type RewardConfig struct {
	BaseCoins int
	BaseExp   int
}

// RewardProcessor settles a finished battle: it credits the winner,
// grants consolation experience to the loser, and on non-friendly
// battles transfers the losing team to the winner. Partial failures
// are reported but never roll back the parts that succeeded.
type RewardProcessor struct {
	ledger Ledger
	coll   CollectionStore
	cfg    RewardConfig
	log    *zap.Logger
}

func NewRewardProcessor(ledger Ledger, coll CollectionStore, cfg RewardConfig, log *zap.Logger) *RewardProcessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &RewardProcessor{ledger: ledger, coll: coll, cfg: cfg, log: log}
}

// Process runs the full settlement for the given winner.
func (rp *RewardProcessor) Process(ctx context.Context, s *Session, winner Side) error {
	loser := winner.Other()
	coins := rp.cfg.BaseCoins * s.Count
	exp := rp.cfg.BaseExp * s.Count
	if !s.Friendly {
		coins *= 2
		exp *= 2
	}

	var errs []error
	if err := rp.ledger.Credit(ctx, s.UserOf(winner), s.GuildID, coins, exp); err != nil {
		errs = append(errs, fmt.Errorf("credit winner: %w", err))
	} else {
		s.AppendSystemLog(fmt.Sprintf("The %s earned %d coins and %d experience.", winner, coins, exp))
	}
	if err := rp.ledger.Credit(ctx, s.UserOf(loser), s.GuildID, 0, exp/2); err != nil {
		errs = append(errs, fmt.Errorf("credit loser: %w", err))
	}

	if !s.Friendly {
		losing := s.Team(loser)
		ids := make([]int64, 0, len(losing))
		for _, p := range losing {
			if p.CollectionID != 0 {
				ids = append(ids, p.CollectionID)
			}
		}
		if len(ids) > 0 {
			if err := rp.coll.TransferOwnership(ctx, ids, s.UserOf(loser), s.UserOf(winner)); err != nil {
				errs = append(errs, fmt.Errorf("transfer losing team: %w", err))
			} else {
				s.AppendSystemLog(fmt.Sprintf("The %s's team was transferred to the %s.", loser, winner))
			}
		}
	}

	rp.log.Info("battle settled",
		zap.String("session", s.ID),
		zap.Int64("winner", s.UserOf(winner)),
		zap.Int("coins", coins),
		zap.Int("exp", exp),
		zap.Bool("friendly", s.Friendly),
		zap.Int("failures", len(errs)))
	return errors.Join(errs...)
}
