package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentBlock is a keyed chunk of editable storefront copy (about text,
// footer blurbs, policy pages).
type ContentBlock struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Key     string `gorm:"size:100;not null;uniqueIndex" json:"key"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cb *ContentBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if cb.ID == "" {
		cb.ID = uuid.New().String()
	}
	return
}
