package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is looked up by Name during bulk import.
type Vendor struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name         string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	Phone        string `gorm:"size:50" json:"phone"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Products []Product `gorm:"foreignKey:VendorID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}
