package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusCreated   = "CREATED"
	OrderStatusPaid      = "PAID"
	OrderStatusPreparing = "PREPARING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	PaymentMethodManual   = "manual"
	PaymentMethodMidtrans = "midtrans"
)

type Order struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID string `gorm:"size:36;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	OrderCode string `gorm:"size:50;not null;uniqueIndex" json:"order_code"`
	Status    string `gorm:"size:20;default:'CREATED';not null" json:"status"`

	PaymentMethod string `gorm:"size:20;default:'manual'" json:"payment_method"`
	PaymentID     string `gorm:"size:100" json:"payment_id,omitempty"`
	PaymentURL    string `gorm:"type:text" json:"payment_url,omitempty"`

	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	InternalNotes string          `gorm:"type:text" json:"-"`

	OrderItems []OrderItem `json:"items"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// ValidOrderStatus reports whether s is one of the known lifecycle states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
