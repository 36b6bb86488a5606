package models

import "gorm.io/datatypes"

// NewsItem is the single highlighted news block of the home page
type NewsItem struct {
	BaseModel
	Title       string `json:"titulo" gorm:"size:200;not null"`
	Subtitle    string `json:"subtitulo" gorm:"size:200"`
	Description string `json:"descricao" gorm:"type:text;not null"`
	ButtonName  string `json:"nomeBotao" gorm:"size:100"`
	ButtonURL   string `json:"urlBotao" gorm:"size:500"`
	Image       Image  `json:"-" gorm:"embedded;embeddedPrefix:imagem_"`
}

// TableName returns the table name for NewsItem
func (NewsItem) TableName() string {
	return "news_items"
}

// PresentationIcon is a game icon linked from the home presentation.
// Image bytes are base64 encoded inside the jsonb column.
type PresentationIcon struct {
	ID        string `json:"id"`
	Image     []byte `json:"imagem,omitempty"`
	ImageType string `json:"imagemType,omitempty"`
	Link      string `json:"link"`
}

// Presentation is the single hero block of the home page
type Presentation struct {
	BaseModel
	Title1       string                                `json:"titulo1" gorm:"size:200;not null"`
	Title2       string                                `json:"titulo2" gorm:"size:200;not null"`
	Description1 string                                `json:"descricao1" gorm:"type:text;not null"`
	Description2 string                                `json:"descricao2" gorm:"type:text;not null"`
	Button1Name  string                                `json:"botao1Nome" gorm:"size:100;not null"`
	Button1Link  string                                `json:"botao1Link" gorm:"size:500;not null"`
	Button2Name  string                                `json:"botao2Nome" gorm:"size:100;not null"`
	Button2Link  string                                `json:"botao2Link" gorm:"size:500;not null"`
	Image        Image                                 `json:"-" gorm:"embedded;embeddedPrefix:imagem_"`
	Icons        datatypes.JSONSlice[PresentationIcon] `json:"icones" gorm:"type:jsonb"`
}

// TableName returns the table name for Presentation
func (Presentation) TableName() string {
	return "presentations"
}
