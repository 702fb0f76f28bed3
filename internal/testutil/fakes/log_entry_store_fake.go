package fakes

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/dhima/calorie-tracker/internal/models"
)

// ErrStoreUnavailable simulates a connectivity failure.
var ErrStoreUnavailable = errors.New("store unavailable")

// FakeLogEntryStore is an in-memory log entry store with auto-increment ids.
type FakeLogEntryStore struct {
	mu      sync.Mutex
	entries map[int]models.LogEntry
	nextID  int

	// Err, when set, is returned by every call.
	Err error
	// RejectInserts makes Insert report that no row was written.
	RejectInserts bool
	// Calls counts invocations per method name.
	Calls map[string]int
}

func NewFakeLogEntryStore() *FakeLogEntryStore {
	return &FakeLogEntryStore{
		entries: make(map[int]models.LogEntry),
		nextID:  1,
		Calls:   make(map[string]int),
	}
}

// SetNextID makes the next insert receive id.
func (f *FakeLogEntryStore) SetNextID(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID = id
}

// Seed stores entries as-is, keeping their ids.
func (f *FakeLogEntryStore) Seed(entries ...models.LogEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range entries {
		f.entries[e.ID] = e
		if e.ID >= f.nextID {
			f.nextID = e.ID + 1
		}
	}
}

func (f *FakeLogEntryStore) call(name string) error {
	f.Calls[name]++
	return f.Err
}

func (f *FakeLogEntryStore) sorted(keep func(models.LogEntry) bool) []models.LogEntry {
	out := make([]models.LogEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *FakeLogEntryStore) FindAll(_ context.Context) ([]models.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("FindAll"); err != nil {
		return nil, err
	}
	return f.sorted(func(models.LogEntry) bool { return true }), nil
}

func (f *FakeLogEntryStore) FindByType(_ context.Context, entryType models.LogEntryType) ([]models.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("FindByType"); err != nil {
		return nil, err
	}
	return f.sorted(func(e models.LogEntry) bool { return e.Type == entryType }), nil
}

func (f *FakeLogEntryStore) FindByID(_ context.Context, id int) (*models.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("FindByID"); err != nil {
		return nil, err
	}
	e, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *FakeLogEntryStore) Insert(_ context.Context, entry *models.LogEntry) (*models.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("Insert"); err != nil {
		return nil, err
	}
	if f.RejectInserts {
		return nil, nil
	}
	entry.ID = f.nextID
	f.nextID++
	f.entries[entry.ID] = *entry
	return entry, nil
}

func (f *FakeLogEntryStore) UpdateByID(_ context.Context, entry models.LogEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("UpdateByID"); err != nil {
		return false, err
	}
	if _, ok := f.entries[entry.ID]; !ok {
		return false, nil
	}
	f.entries[entry.ID] = entry
	return true, nil
}

func (f *FakeLogEntryStore) DeleteByID(_ context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("DeleteByID"); err != nil {
		return false, err
	}
	if _, ok := f.entries[id]; !ok {
		return false, nil
	}
	delete(f.entries, id)
	return true, nil
}

// SummarizeDay groups entries whose loggedOn starts with day.
func (f *FakeLogEntryStore) SummarizeDay(_ context.Context, day string) ([]models.TypeTotal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call("SummarizeDay"); err != nil {
		return nil, err
	}
	totals := make(map[models.LogEntryType]*models.TypeTotal)
	for _, e := range f.entries {
		if !strings.HasPrefix(e.LoggedOn, day) {
			continue
		}
		tt, ok := totals[e.Type]
		if !ok {
			tt = &models.TypeTotal{Type: e.Type}
			totals[e.Type] = tt
		}
		tt.Entries++
		tt.Calories += e.Calories
	}
	out := make([]models.TypeTotal, 0, len(totals))
	for _, tt := range totals {
		out = append(out, *tt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (f *FakeLogEntryStore) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.call("Ping")
}
