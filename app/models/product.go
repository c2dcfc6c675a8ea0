package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID   string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`
	Slug string `gorm:"size:255;not null;uniqueIndex" json:"slug"`

	Description string `gorm:"type:text" json:"description"`
	// TechnicalSpecs holds a free-form JSON document supplied by the
	// catalog team (or a spreadsheet column); it is stored opaque.
	TechnicalSpecs string `gorm:"type:text" json:"technical_specs"`

	Price      decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	PromoPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"promo_price,omitempty"`

	CategoryID *string   `gorm:"size:36;index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	VendorID   *string   `gorm:"size:36;index" json:"vendor_id,omitempty"`
	Vendor     *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	IsActive   bool `gorm:"default:true" json:"is_active"`

	CreatedByID *string `gorm:"size:36;index" json:"created_by_id,omitempty"`
	CreatedBy   *User   `gorm:"foreignKey:CreatedByID" json:"-"`

	ProductImages []ProductImage `json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// EffectivePrice is the price the storefront charges: the promo price when
// one is set, the list price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}
