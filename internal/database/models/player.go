package models

// Player represents a roster member shown on the team pages
type Player struct {
	BaseModel
	Name        string `json:"nome" gorm:"size:100;not null"`
	Title       string `json:"titulo" gorm:"size:100"`
	Description string `json:"descricao" gorm:"type:text"`
	TeamID      int    `json:"time" gorm:"not null;index"`
	Instagram   string `json:"insta" gorm:"size:255"`
	Twitter     string `json:"twitter" gorm:"size:255"`
	Twitch      string `json:"twitch" gorm:"size:255"`
	Photo       Image  `json:"-" gorm:"embedded;embeddedPrefix:foto_"`

	// Relationships
	Team *Team `json:"-" gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
