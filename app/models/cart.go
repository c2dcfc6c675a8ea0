package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID         string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID     *string    `gorm:"size:36;index" json:"user_id,omitempty"`
	User       *User      `gorm:"foreignKey:UserID" json:"-"`
	SessionKey string     `gorm:"size:100;index" json:"-"`
	CartItems  []CartItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
