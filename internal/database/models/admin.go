package models

// Admin represents a staff member shown on the club's about page
type Admin struct {
	BaseModel
	Name        string `json:"nome" gorm:"size:100;not null"`
	Title       string `json:"titulo" gorm:"size:100"`
	Description string `json:"descricao" gorm:"type:text"`
	Instagram   string `json:"insta" gorm:"size:255"`
	Twitter     string `json:"twitter" gorm:"size:255"`
	Twitch      string `json:"twitch" gorm:"size:255"`
	Photo       Image  `json:"-" gorm:"embedded;embeddedPrefix:foto_"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
