package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub/domain"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(database *gorm.DB) domain.ActivityLog {
	return &activityRepository{
		db: database,
	}
}

func (ar *activityRepository) Record(ctx context.Context, actorID int, action, description string) error {
	row := domain.ActivityRecord{
		CorrelationID: uuid.NewString(),
		ActorID:       actorID,
		Action:        action,
		Description:   description,
	}
	if err := ar.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError("record activity", "activity record", err)
	}
	return nil
}
