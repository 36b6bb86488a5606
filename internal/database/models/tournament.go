package models

import "time"

// Tournament represents a championship listed on one of the tournament boards
type Tournament struct {
	BaseModel
	Name                   string           `json:"name" gorm:"size:200;not null"`
	Description            string           `json:"description" gorm:"type:text"`
	Price                  string           `json:"price" gorm:"size:100"`
	GameName               string           `json:"gameName" gorm:"size:100"`
	StartDate              *time.Time       `json:"startDate"`
	FirstPrize             string           `json:"firstPrize" gorm:"size:200"`
	SecondPrize            string           `json:"secondPrize" gorm:"size:200"`
	ThirdPrize             string           `json:"thirdPrize" gorm:"size:200"`
	RegistrationLink       string           `json:"registrationLink" gorm:"size:500"`
	TeamPosition           string           `json:"teamPosition" gorm:"size:100"`
	PerformanceDescription string           `json:"performanceDescription" gorm:"type:text"`
	Status                 TournamentStatus `json:"status" gorm:"size:20;not null;default:'campeonatos';index"`
	Image                  Image            `json:"-" gorm:"embedded;embeddedPrefix:image_"`
	GameIcon               Image            `json:"-" gorm:"embedded;embeddedPrefix:game_icon_"`
	OrganizerImage         Image            `json:"-" gorm:"embedded;embeddedPrefix:organizer_image_"`
}

// TableName returns the table name for Tournament
func (Tournament) TableName() string {
	return "tournaments"
}
