package models

// Policy is one section of the club policies page
type Policy struct {
	BaseModel
	Title       string `json:"titulo" gorm:"size:200;not null"`
	Description string `json:"descricao" gorm:"type:text;not null"`
}

// TableName returns the table name for Policy
func (Policy) TableName() string {
	return "policies"
}
