package summaries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/dhima/calorie-tracker/pkg/clock"
	"github.com/dhima/calorie-tracker/platform/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidDay is returned when a day is not in YYYY-MM-DD form.
var ErrInvalidDay = errors.New("day must be formatted as YYYY-MM-DD")

// Store reads the per-category totals of one day.
type Store interface {
	SummarizeDay(ctx context.Context, day string) ([]models.TypeTotal, error)
}

// Publisher receives finished summaries.
type Publisher interface {
	PublishSummary(ctx context.Context, event events.SummaryEvent) error
}

// Service builds daily calorie summaries.
type Service struct {
	store     Store
	publisher Publisher
	logger    logging.Logger
	clock     clock.Clock
	location  *time.Location
}

// NewService creates a summary service. Days roll over at midnight in loc.
func NewService(store Store, publisher Publisher, logger logging.Logger, c clock.Clock, loc *time.Location) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if c == nil {
		c = clock.RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "summaries")),
		clock:     c,
		location:  loc,
	}
}

// Summarize totals the entries logged on day. Every category is present in
// ByType, with zero totals when nothing was logged for it.
func (s *Service) Summarize(ctx context.Context, day string) (*models.DailySummary, error) {
	if _, err := clock.ParseDay(day, s.location); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	totals, err := s.store.SummarizeDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", day, err)
	}

	summary := &models.DailySummary{
		Day:    day,
		ByType: make(map[string]models.CategoryTotals, len(models.LogEntryTypes())),
	}
	for _, t := range models.LogEntryTypes() {
		summary.ByType[t.String()] = models.CategoryTotals{}
	}
	for _, total := range totals {
		summary.ByType[total.Type.String()] = models.CategoryTotals{
			Entries:  total.Entries,
			Calories: total.Calories,
		}
		summary.EntryCount += total.Entries
		summary.TotalCalories += total.Calories
	}

	return summary, nil
}

// PublishPreviousDay summarizes the day before now and publishes it.
func (s *Service) PublishPreviousDay(ctx context.Context) (*models.DailySummary, error) {
	day := clock.Yesterday(s.clock, s.location).Format(clock.DayLayout)

	summary, err := s.Summarize(ctx, day)
	if err != nil {
		metrics.RecordSummaryRun(false)
		return nil, err
	}

	event := events.SummaryEvent{
		EventID:     uuid.New().String(),
		Summary:     *summary,
		GeneratedAt: s.clock.Now().UTC(),
	}
	if err := s.publisher.PublishSummary(ctx, event); err != nil {
		metrics.RecordSummaryRun(false)
		return nil, fmt.Errorf("publish summary %s: %w", day, err)
	}

	metrics.RecordSummaryRun(true)
	s.logger.Info("daily summary published",
		zap.String("day", day),
		zap.Int("entries", summary.EntryCount),
		zap.Int("calories", summary.TotalCalories),
	)
	return summary, nil
}
