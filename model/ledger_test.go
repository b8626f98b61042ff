package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeduel/server/model"
	"github.com/pokeduel/server/testutil"
)

func TestLedger_CreditAccumulates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	acct := model.Account{Username: "ash", Coins: 10, Exp: 5}
	require.NoError(t, db.Create(&acct).Error)

	ledger := model.NewLedger(db)
	ctx := context.Background()

	require.NoError(t, ledger.Credit(ctx, acct.ID, 0, 200, 100))
	require.NoError(t, ledger.Credit(ctx, acct.ID, 0, 50, 0))

	var got model.Account
	require.NoError(t, db.First(&got, acct.ID).Error)
	assert.Equal(t, int64(260), got.Coins)
	assert.Equal(t, int64(105), got.Exp)
}

func TestLedger_UnknownAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := model.NewLedger(db)

	err := ledger.Credit(context.Background(), 999, 0, 10, 10)
	assert.Error(t, err)
}
