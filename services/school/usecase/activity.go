package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"schoolhub/domain"
)

// recordActivity is best-effort: a failed insert is logged and never
// propagated to the caller's success path.
func recordActivity(log domain.ActivityLog, timeOut time.Duration, actorID int, action, description string) {
	if log == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeOut)
	defer cancel()

	if err := log.Record(ctx, actorID, action, description); err != nil {
		logrus.Warnf("could not record activity %q: %v", action, err)
	}
}
