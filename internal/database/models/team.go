package models

import "time"

// Team represents a club squad. Its numeric id is chosen by the client and
// referenced by players.
type Team struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"nome" gorm:"size:100;not null;uniqueIndex"`
	Photo     Image     `json:"-" gorm:"embedded;embeddedPrefix:foto_"`
	GameLogo  Image     `json:"-" gorm:"embedded;embeddedPrefix:jogo_"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
