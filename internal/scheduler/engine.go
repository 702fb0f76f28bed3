package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSummarySchedule runs the summary job at 00:05:00 every day.
const DefaultSummarySchedule = "0 5 0 * * *"

// Engine runs registered jobs on cron schedules until its context ends.
type Engine struct {
	cron   *cron.Cron
	logger logging.Logger
}

// NewEngine builds an engine whose schedules are evaluated in loc. Schedules
// accept an optional leading seconds field.
func NewEngine(loc *time.Location, logger logging.Logger) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return &Engine{
		cron:   cron.New(cron.WithParser(parser), cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With(zap.String("component", "scheduler")),
	}
}

// AddJob registers job under name on spec.
func (e *Engine) AddJob(name, spec string, job func(ctx context.Context) error) error {
	_, err := e.cron.AddFunc(spec, func() {
		started := time.Now()
		if err := job(context.Background()); err != nil {
			e.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
			return
		}
		e.logger.Info("scheduled job finished", zap.String("job", name), zap.Duration("took", time.Since(started)))
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q for %s: %w", spec, name, err)
	}
	return nil
}

// AddSummaryJob registers the daily summary job.
func (e *Engine) AddSummaryJob(spec string, summaries SummaryPublisher) error {
	if spec == "" {
		spec = DefaultSummarySchedule
	}
	return e.AddJob("daily_summary", spec, func(ctx context.Context) error {
		_, err := summaries.PublishPreviousDay(ctx)
		return err
	})
}

// Next reports when the next registered job fires, or the zero time if none is registered.
func (e *Engine) Next() time.Time {
	var next time.Time
	for _, entry := range e.cron.Entries() {
		if next.IsZero() || (!entry.Next.IsZero() && entry.Next.Before(next)) {
			next = entry.Next
		}
	}
	return next
}

// Run starts the cron loop and blocks until ctx is done, then waits for
// running jobs to finish.
func (e *Engine) Run(ctx context.Context) error {
	e.cron.Start()
	e.logger.Info("scheduler started", zap.Int("jobs", len(e.cron.Entries())), zap.Time("next", e.Next()))

	<-ctx.Done()

	stopped := e.cron.Stop()
	<-stopped.Done()
	e.logger.Info("scheduler stopped")
	return ctx.Err()
}
