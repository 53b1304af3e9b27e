package domain

import (
	"context"
	"time"
)

type ActivityRecord struct {
	ActivityID    int       `gorm:"primaryKey;autoIncrement" json:"activity_id"`
	CorrelationID string    `gorm:"type:varchar(36)" json:"correlation_id"`
	ActorID       int       `gorm:"not null;index" json:"actor_id"`
	Action        string    `gorm:"type:varchar(100);not null" json:"action"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ActivityRecord) TableName() string { return "activity_logs" }

// ActivityLog is a best-effort sink. Callers must not fail their primary
// operation when recording fails.
type ActivityLog interface {
	Record(ctx context.Context, actorID int, action, description string) error
}
