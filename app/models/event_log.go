package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventImportCompleted   = "import_completed"
	EventOrderStatusChange = "order_status_change"
)

// EventLog is an append-only audit trail; Metadata carries an
// event-specific JSON document.
type EventLog struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    *string `gorm:"size:36;index" json:"user_id,omitempty"`
	EventType string  `gorm:"size:100;not null;index" json:"event_type"`
	Metadata  string  `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *EventLog) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
