package repositories

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

type EventLogRepositoryImpl interface {
	Record(ctx context.Context, userID *string, eventType string, metadata map[string]interface{})
	ListRecent(ctx context.Context, limit int) ([]models.EventLog, error)
}

type eventLogRepository struct {
	db *gorm.DB
}

func NewEventLogRepository(db *gorm.DB) EventLogRepositoryImpl {
	return &eventLogRepository{db}
}

// Record appends an audit row. Auditing is best-effort: a failure is logged
// and swallowed so it never breaks the operation being audited.
func (r *eventLogRepository) Record(ctx context.Context, userID *string, eventType string, metadata map[string]interface{}) {
	var payload string
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("EventLog: failed to marshal metadata for %s: %v", eventType, err)
		} else {
			payload = string(raw)
		}
	}

	event := models.EventLog{UserID: userID, EventType: eventType, Metadata: payload}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		log.Printf("EventLog: failed to record %s: %v", eventType, err)
	}
}

func (r *eventLogRepository) ListRecent(ctx context.Context, limit int) ([]models.EventLog, error) {
	var events []models.EventLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
