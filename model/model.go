package model

import (
	"time"

	"gorm.io/datatypes"
)

// Account is a registered player.
type Account struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	Coins        int64     `json:"coins"`
	Exp          int64     `json:"exp"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Creature is one row of a player's persistent collection.
type Creature struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID   int64  `gorm:"index" json:"owner_id"`
	SpeciesID int    `gorm:"index" json:"species_id"`
	Nickname  string `gorm:"size:64" json:"nickname"`
	Shiny     bool   `json:"shiny"`
	Nature    string `gorm:"size:16" json:"nature"`

	IVHP        int `json:"iv_hp"`
	IVAttack    int `json:"iv_attack"`
	IVDefense   int `json:"iv_defense"`
	IVSpAttack  int `json:"iv_sp_attack"`
	IVSpDefense int `json:"iv_sp_defense"`
	IVSpeed     int `json:"iv_speed"`

	EVHP        int `json:"ev_hp"`
	EVAttack    int `json:"ev_attack"`
	EVDefense   int `json:"ev_defense"`
	EVSpAttack  int `json:"ev_sp_attack"`
	EVSpDefense int `json:"ev_sp_defense"`
	EVSpeed     int `json:"ev_speed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasNonzeroEV reports whether any effort value is set. The selectable
// projection distinguishes trained from untrained variants with it.
func (c *Creature) HasNonzeroEV() bool {
	return c.EVHP != 0 || c.EVAttack != 0 || c.EVDefense != 0 ||
		c.EVSpAttack != 0 || c.EVSpDefense != 0 || c.EVSpeed != 0
}

// BattleRecord persists one battle session as a single JSON document
// plus the scalar columns queries need. Version backs the optimistic
// concurrency check on every save.
type BattleRecord struct {
	ID           string         `gorm:"primaryKey;size:36"`
	ChallengerID int64          `gorm:"index"`
	OpponentID   int64          `gorm:"index"`
	GuildID      int64          `gorm:"index"`
	Status       int            `gorm:"index"`
	Document     datatypes.JSON `gorm:"type:json"`
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"index"`
}

// AuditLog is one persisted audit event.
type AuditLog struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	TraceID    string         `gorm:"size:64;index"`
	UserID     *int64         `gorm:"index"`
	SessionID  string         `gorm:"size:36;index"`
	Action     string         `gorm:"size:64;index"`
	Request    datatypes.JSON `gorm:"type:json"`
	Response   datatypes.JSON `gorm:"type:json"`
	Error      string         `gorm:"size:512"`
	IP         string         `gorm:"size:64"`
	DurationMs int
	CreatedAt  time.Time `gorm:"index"`
}
