package model

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pokeduel/server/game/battle"
)

// Ledger credits coins and experience onto account rows.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

var _ battle.Ledger = (*Ledger)(nil)

func (l *Ledger) Credit(ctx context.Context, userID, guildID int64, coins, exp int) error {
	res := l.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"coins": gorm.Expr("coins + ?", coins),
			"exp":   gorm.Expr("exp + ?", exp),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("ledger: unknown account")
	}
	return nil
}
