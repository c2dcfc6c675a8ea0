package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;not null;index" json:"product_id"`
	Path      string `gorm:"size:255;not null" json:"path"`
	IsMain    bool   `gorm:"default:false" json:"is_main"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}

// BeforeSave keeps a single main image per product: promoting one image
// demotes whichever image was main before it.
func (pi *ProductImage) BeforeSave(tx *gorm.DB) error {
	if !pi.IsMain {
		return nil
	}
	return tx.Model(&ProductImage{}).
		Where("product_id = ? AND is_main = ? AND id <> ?", pi.ProductID, true, pi.ID).
		Update("is_main", false).Error
}
