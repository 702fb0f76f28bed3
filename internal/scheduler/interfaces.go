package scheduler

import (
	"context"

	"github.com/dhima/calorie-tracker/internal/models"
)

// SummaryPublisher builds and publishes the previous day's summary.
type SummaryPublisher interface {
	PublishPreviousDay(ctx context.Context) (*models.DailySummary, error)
}
