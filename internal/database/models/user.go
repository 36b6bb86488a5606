package models

// User is an account of the club web app, identified by institutional email
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Role         UserRole `json:"tipoUsuario" gorm:"size:40;not null;default:'Jogador'"`
	DiscordID    *string  `json:"discordID,omitempty" gorm:"size:20;index"`
	Team         string   `json:"time" gorm:"size:100"`
	ProfilePhoto Image    `json:"-" gorm:"embedded;embeddedPrefix:foto_perfil_"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
