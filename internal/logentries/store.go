package logentries

import (
	"context"

	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/dhima/calorie-tracker/platform/events"
)

// Store defines the persistence methods required by the log entry service.
type Store interface {
	FindAll(ctx context.Context) ([]models.LogEntry, error)
	FindByType(ctx context.Context, entryType models.LogEntryType) ([]models.LogEntry, error)
	FindByID(ctx context.Context, id int) (*models.LogEntry, error)
	Insert(ctx context.Context, entry *models.LogEntry) (*models.LogEntry, error)
	UpdateByID(ctx context.Context, entry models.LogEntry) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// EventPublisher receives entry events after successful mutations.
type EventPublisher interface {
	PublishEntryEvent(ctx context.Context, event events.EntryEvent) error
}
