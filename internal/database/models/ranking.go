package models

// Ranking is a named rank badge with its artwork
type Ranking struct {
	BaseModel
	Name  string `json:"nome" gorm:"size:100;not null"`
	Image Image  `json:"-" gorm:"embedded;embeddedPrefix:imagem_"`
}

// TableName returns the table name for Ranking
func (Ranking) TableName() string {
	return "rankings"
}
