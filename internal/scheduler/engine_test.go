package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type countingSummaries struct {
	calls atomic.Int32
	err   error
}

func (c *countingSummaries) PublishPreviousDay(context.Context) (*models.DailySummary, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &models.DailySummary{Day: "2020-10-01"}, nil
}

func TestAddJob_RejectsInvalidExpression(t *testing.T) {
	eng := NewEngine(time.UTC, nil)

	err := eng.AddJob("broken", "not a cron", func(context.Context) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestAddJob_AcceptsFiveAndSixFieldExpressions(t *testing.T) {
	eng := NewEngine(time.UTC, nil)

	assert.NoError(t, eng.AddJob("five", "5 0 * * *", func(context.Context) error { return nil }))
	assert.NoError(t, eng.AddJob("six", "0 5 0 * * *", func(context.Context) error { return nil }))
}

func TestAddSummaryJob_DefaultsSchedule(t *testing.T) {
	eng := NewEngine(nil, nil)

	require.NoError(t, eng.AddSummaryJob("", &countingSummaries{}))
	assert.Len(t, eng.cron.Entries(), 1)
}

func TestRun_FiresJobsUntilCancelled(t *testing.T) {
	logger, logs := logging.NewObserved(zapcore.InfoLevel)
	eng := NewEngine(time.UTC, logger)
	summaries := &countingSummaries{}
	require.NoError(t, eng.AddSummaryJob("* * * * * *", summaries))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- eng.Run(ctx) }()

	assert.Eventually(t, func() bool { return summaries.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("engine did not stop")
	}
	assert.NotZero(t, logs.FilterMessage("scheduled job finished").Len())
}

func TestRun_LogsJobFailures(t *testing.T) {
	logger, logs := logging.NewObserved(zapcore.InfoLevel)
	eng := NewEngine(time.UTC, logger)
	summaries := &countingSummaries{err: errors.New("store unavailable")}
	require.NoError(t, eng.AddSummaryJob("* * * * * *", summaries))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- eng.Run(ctx) }()

	assert.Eventually(t, func() bool { return logs.FilterMessage("scheduled job failed").Len() > 0 }, 3*time.Second, 50*time.Millisecond)
	cancel()
	<-done
}
