package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DepartmentMarketing = "MARKETING"
	DepartmentLogistics = "LOGISTICS"
	DepartmentFinance   = "FINANCE"
	DepartmentIT        = "IT"
)

type StaffProfile struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID     string `gorm:"size:36;not null;uniqueIndex" json:"user_id"`
	Department string `gorm:"size:50;not null" json:"department"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StaffProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
