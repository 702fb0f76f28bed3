package fakes

import (
	"context"
	"errors"
	"sync"

	platformEvents "github.com/dhima/calorie-tracker/platform/events"
)

// FakePublisher captures published events and can simulate failures.
type FakePublisher struct {
	mu        sync.Mutex
	Events    []platformEvents.EntryEvent
	Summaries []platformEvents.SummaryEvent
	FailNext  bool
	FailError error
}

func (p *FakePublisher) fail() error {
	if !p.FailNext {
		return nil
	}
	p.FailNext = false
	if p.FailError == nil {
		p.FailError = errors.New("publish failed")
	}
	return p.FailError
}

func (p *FakePublisher) PublishEntryEvent(_ context.Context, e platformEvents.EntryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail(); err != nil {
		return err
	}
	p.Events = append(p.Events, e)
	return nil
}

func (p *FakePublisher) PublishSummary(_ context.Context, e platformEvents.SummaryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail(); err != nil {
		return err
	}
	p.Summaries = append(p.Summaries, e)
	return nil
}
