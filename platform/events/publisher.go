package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EntryAction names the mutation an EntryEvent describes.
type EntryAction string

const (
	EntryActionCreated EntryAction = "log_entry.created"
	EntryActionUpdated EntryAction = "log_entry.updated"
	EntryActionDeleted EntryAction = "log_entry.deleted"
)

// EntryEvent is published after a log entry has been persisted or removed.
// Entry is nil for deletions.
type EntryEvent struct {
	EventID    string           `json:"eventId"`
	Action     EntryAction      `json:"action"`
	EntryID    int              `json:"entryId"`
	Entry      *models.LogEntry `json:"entry,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewEntryEvent stamps a fresh event id.
func NewEntryEvent(action EntryAction, entryID int, entry *models.LogEntry, at time.Time) EntryEvent {
	return EntryEvent{
		EventID:    uuid.New().String(),
		Action:     action,
		EntryID:    entryID,
		Entry:      entry,
		OccurredAt: at.UTC(),
	}
}

// SummaryEvent carries a finished DailySummary.
type SummaryEvent struct {
	EventID     string              `json:"eventId"`
	Summary     models.DailySummary `json:"summary"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// Publisher writes JSON events to a single Kafka topic.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher builds a publisher for topic with acks from all in-sync replicas.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
			Compression:  kafka.Snappy,
		},
		logger: logger.With(zap.String("topic", topic)),
	}
}

// PublishEntryEvent keys the message by entry id so events for one entry stay ordered.
func (p *Publisher) PublishEntryEvent(ctx context.Context, event EntryEvent) error {
	return p.publish(ctx, strconv.Itoa(event.EntryID), event.EventID, event)
}

// PublishSummary keys the message by day.
func (p *Publisher) PublishSummary(ctx context.Context, event SummaryEvent) error {
	return p.publish(ctx, event.Summary.Day, event.EventID, event)
}

func (p *Publisher) publish(ctx context.Context, key, eventID string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	p.logger.Debug("event published", zap.String("event_id", eventID), zap.String("key", key))
	return nil
}

// Close flushes pending writes and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishEntryEvent(context.Context, EntryEvent) error { return nil }
func (NoopPublisher) PublishSummary(context.Context, SummaryEvent) error  { return nil }
func (NoopPublisher) Close() error                                        { return nil }
