package battle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLedger struct {
	failFor int64
	memLedger
}

func (f *failingLedger) Credit(ctx context.Context, userID, guildID int64, coins, exp int) error {
	if userID == f.failFor {
		return errors.New("account frozen")
	}
	return f.memLedger.Credit(ctx, userID, guildID, coins, exp)
}

func rewardSession(friendly bool) *Session {
	loser := testCreature("Loser")
	loser.CollectionID = 201
	return &Session{
		ID:           "settle-test",
		ChallengerID: 1,
		OpponentID:   2,
		GuildID:      7,
		Friendly:     friendly,
		Count:        1,
		Status:       StatusFinished,
		Challengers:  []*BattlePokemon{testCreature("Winner")},
		Opponents:    []*BattlePokemon{loser},
	}
}

func TestRewardProcessor_PartialFailureStillSettlesTheRest(t *testing.T) {
	ledger := &failingLedger{failFor: 1}
	coll := &memColl{rows: map[int64]*CollectionCreature{
		201: {ID: 201, OwnerID: 2, SpeciesID: 130},
	}}
	rp := NewRewardProcessor(ledger, coll, RewardConfig{BaseCoins: 100, BaseExp: 50}, nil)

	s := rewardSession(false)
	err := rp.Process(context.Background(), s, SideChallenger)

	// The winner credit failed but the loser credit and the transfer
	// still went through.
	require.Error(t, err)
	require.Len(t, ledger.credits, 1)
	assert.Equal(t, int64(2), ledger.credits[0].UserID)
	assert.Equal(t, int64(1), coll.rows[201].OwnerID)
}

func TestRewardProcessor_FriendlySkipsTransfer(t *testing.T) {
	ledger := &memLedger{}
	coll := &memColl{rows: map[int64]*CollectionCreature{
		201: {ID: 201, OwnerID: 2, SpeciesID: 130},
	}}
	rp := NewRewardProcessor(ledger, coll, RewardConfig{BaseCoins: 100, BaseExp: 50}, nil)

	s := rewardSession(true)
	require.NoError(t, rp.Process(context.Background(), s, SideChallenger))

	assert.Zero(t, coll.transfers)
	require.Len(t, ledger.credits, 2)
	assert.Equal(t, 100, ledger.credits[0].Coins)
	assert.Equal(t, 50, ledger.credits[0].Exp)
	assert.Equal(t, 25, ledger.credits[1].Exp)
}
