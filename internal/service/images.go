package service

import (
	"fmt"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
)

// imageURL returns the byte-serving route for img, or nil when nothing is stored.
// List queries skip the bytes, so the content type marks a stored image.
func imageURL(img models.Image, format string, args ...interface{}) *string {
	if img.IsEmpty() && img.ContentType == "" {
		return nil
	}
	url := fmt.Sprintf(format, args...)
	return &url
}

// replaceImage overwrites dst when a new upload was provided
func replaceImage(dst *models.Image, upload *models.Image) {
	if upload != nil && !upload.IsEmpty() {
		*dst = *upload
	}
}

// storedImage returns img or ErrImageNotFound when it holds no bytes
func storedImage(img models.Image) (*models.Image, error) {
	if img.IsEmpty() {
		return nil, apperrors.ErrImageNotFound
	}
	return &img, nil
}

// setText overwrites dst when a value was provided
func setText(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
