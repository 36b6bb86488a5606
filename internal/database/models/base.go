package models

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Image is an uploaded file kept inline in the owning row.
// Embed it with a column prefix, e.g. `gorm:"embedded;embeddedPrefix:foto_"`.
type Image struct {
	Data         []byte `json:"-" gorm:"type:bytea"`
	ContentType  string `json:"-" gorm:"size:100"`
	OriginalName string `json:"-" gorm:"size:255"`
}

// IsEmpty reports whether no file was stored
func (i Image) IsEmpty() bool {
	return len(i.Data) == 0
}

// MimeType returns the stored content type, defaulting to image/jpeg
func (i Image) MimeType() string {
	if i.ContentType == "" {
		return "image/jpeg"
	}
	return i.ContentType
}

// DataURL renders the image inline as data:<type>;base64,<payload>
func (i Image) DataURL() string {
	if i.IsEmpty() {
		return ""
	}
	return "data:" + i.MimeType() + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}
