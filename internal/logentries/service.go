package logentries

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/dhima/calorie-tracker/pkg/clock"
	"github.com/dhima/calorie-tracker/platform/events"
	"go.uber.org/zap"
)

const (
	maxCalories          = 3000
	maxDescriptionLength = 100
)

// Messages returned in a Result.
const (
	MsgEntryNull           = "entry cannot be null"
	MsgIDProvided          = "id is auto-generated and cannot be provided"
	MsgIDRequired          = "id is required and must be positive"
	MsgCaloriesTooHigh     = "calories is too high"
	MsgCaloriesNotPositive = "calories must be a positive number"
	MsgDescriptionRequired = "description is required"
	MsgDescriptionTooLong  = "description must be less than or equal to 100 characters"
	MsgLoggedOnRequired    = "logged date is required"
	MsgUnableToCreate      = "unable to create"
	MsgUnableToUpdate      = "unable to update"
)

// Service validates log entries and orchestrates their persistence.
type Service struct {
	store     Store
	publisher EventPublisher
	logger    logging.Logger
	clock     clock.Clock
}

// NewService creates a log entry service. A nil publisher disables entry events.
func NewService(store Store, publisher EventPublisher, logger logging.Logger) *Service {
	return NewServiceWithClock(store, publisher, logger, clock.RealClock{})
}

// NewServiceWithClock is NewService with an injectable clock for event timestamps.
func NewServiceWithClock(store Store, publisher EventPublisher, logger logging.Logger, c clock.Clock) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "log_entries")),
		clock:     c,
	}
}

// List returns every entry.
func (s *Service) List(ctx context.Context) ([]models.LogEntry, error) {
	entries, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}

// FindByType returns the entries of one category.
func (s *Service) FindByType(ctx context.Context, entryType models.LogEntryType) ([]models.LogEntry, error) {
	entries, err := s.store.FindByType(ctx, entryType)
	if err != nil {
		return nil, fmt.Errorf("find log entries by type: %w", err)
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}

// FindByID returns the entry or nil when it does not exist.
func (s *Service) FindByID(ctx context.Context, id int) (*models.LogEntry, error) {
	entry, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find log entry %d: %w", id, err)
	}
	return entry, nil
}

// Create validates a new entry and inserts it. The store assigns the id.
func (s *Service) Create(ctx context.Context, entry *models.LogEntry) (*Result, error) {
	result := validate(entry, true)
	if !result.Successful() {
		s.rejected("create", result)
		return result, nil
	}

	created, err := s.store.Insert(ctx, entry)
	if err != nil {
		metrics.RecordEntryOperation("create", metrics.OutcomeFailed)
		return nil, fmt.Errorf("insert log entry: %w", err)
	}
	if created == nil {
		result.AddMessage(MsgUnableToCreate)
		s.rejected("create", result)
		return result, nil
	}

	result.setPayload(created)
	metrics.RecordEntryOperation("create", metrics.OutcomeCreated)
	s.publish(ctx, events.EntryActionCreated, created.ID, created)
	return result, nil
}

// Update validates an existing entry and replaces the stored row. The
// payload is the input entry, not a re-read of the row.
func (s *Service) Update(ctx context.Context, entry *models.LogEntry) (*Result, error) {
	result := validate(entry, false)
	if !result.Successful() {
		s.rejected("update", result)
		return result, nil
	}

	updated, err := s.store.UpdateByID(ctx, *entry)
	if err != nil {
		metrics.RecordEntryOperation("update", metrics.OutcomeFailed)
		return nil, fmt.Errorf("update log entry %d: %w", entry.ID, err)
	}
	if !updated {
		result.AddMessage(MsgUnableToUpdate)
		s.rejected("update", result)
		return result, nil
	}

	result.setPayload(entry)
	metrics.RecordEntryOperation("update", metrics.OutcomeUpdated)
	s.publish(ctx, events.EntryActionUpdated, entry.ID, entry)
	return result, nil
}

// DeleteByID removes an entry and reports whether a row was removed.
// Non-positive ids never reach the store.
func (s *Service) DeleteByID(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		metrics.RecordEntryOperation("delete", metrics.OutcomeFailed)
		return false, fmt.Errorf("delete log entry %d: %w", id, err)
	}
	if deleted {
		metrics.RecordEntryOperation("delete", metrics.OutcomeDeleted)
		s.publish(ctx, events.EntryActionDeleted, id, nil)
	}
	return deleted, nil
}

func (s *Service) rejected(operation string, result *Result) {
	metrics.RecordEntryOperation(operation, metrics.OutcomeRejected)
	metrics.RecordValidationMessages(result.Messages())
	s.logger.Debug("log entry rejected",
		zap.String("operation", operation),
		zap.Strings("messages", result.Messages()),
	)
}

func (s *Service) publish(ctx context.Context, action events.EntryAction, id int, entry *models.LogEntry) {
	event := events.NewEntryEvent(action, id, entry, s.clock.Now())
	if err := s.publisher.PublishEntryEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish entry event",
			zap.String("event_id", event.EventID),
			zap.String("action", string(action)),
			zap.Int("entry_id", id),
			zap.Error(err),
		)
	}
}

// validate checks an entry. The nil and id checks end validation on failure;
// the field checks after them all run and accumulate.
func validate(entry *models.LogEntry, isNewEntry bool) *Result {
	result := &Result{}

	if entry == nil {
		result.AddMessage(MsgEntryNull)
		return result
	}

	if isNewEntry {
		if entry.ID > 0 {
			result.AddMessage(MsgIDProvided)
			return result
		}
	} else if entry.ID <= 0 {
		result.AddMessage(MsgIDRequired)
		return result
	}

	if entry.Calories > maxCalories {
		result.AddMessage(MsgCaloriesTooHigh)
	}
	if entry.Calories <= 0 {
		result.AddMessage(MsgCaloriesNotPositive)
	}

	if entry.Description == "" {
		result.AddMessage(MsgDescriptionRequired)
	} else if utf8.RuneCountInString(entry.Description) > maxDescriptionLength {
		result.AddMessage(MsgDescriptionTooLong)
	}

	if entry.LoggedOn == "" {
		result.AddMessage(MsgLoggedOnRequired)
	}

	return result
}
