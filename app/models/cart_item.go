package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID    string   `gorm:"size:36;not null;index" json:"cart_id"`
	Cart      *Cart    `gorm:"foreignKey:CartID" json:"-"`
	ProductID string   `gorm:"size:36;not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Qty       int      `gorm:"not null" json:"qty"`
	// PriceSnapshot is the effective unit price at the moment the item was
	// added; checkout charges this, not the live catalog price.
	PriceSnapshot decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_snapshot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
