package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is looked up by Name during bulk import, so Name carries a
// unique index alongside the derived Slug.
type Category struct {
	ID          string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string     `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Slug        string     `gorm:"size:150;not null;uniqueIndex" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	ParentID    *string    `gorm:"size:36;index" json:"parent_id,omitempty"`
	Parent      *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children    []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
