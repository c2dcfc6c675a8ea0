package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductPriceHistory records every price a product has carried; a row is
// appended whenever an update changes Price.
type ProductPriceHistory struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string          `gorm:"size:36;not null;index" json:"product_id"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ChangedAt time.Time       `gorm:"autoCreateTime" json:"changed_at"`
}

func (h *ProductPriceHistory) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}
