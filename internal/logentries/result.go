package logentries

import (
	"encoding/json"

	"github.com/dhima/calorie-tracker/internal/models"
)

// Result is the outcome of a create or update: either a payload or the
// messages explaining why the entry was refused. It is never persisted.
type Result struct {
	messages []string
	payload  *models.LogEntry
}

// Successful reports whether no message was added.
func (r *Result) Successful() bool {
	return len(r.messages) == 0
}

// Messages returns a copy of the accumulated messages.
func (r *Result) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// AddMessage records a failure and drops any payload.
func (r *Result) AddMessage(message string) {
	r.messages = append(r.messages, message)
	r.payload = nil
}

// Payload returns the resulting entry, nil unless the result is successful.
func (r *Result) Payload() *models.LogEntry {
	return r.payload
}

func (r *Result) setPayload(entry *models.LogEntry) {
	r.payload = entry
}

type resultJSON struct {
	Successful bool             `json:"successful"`
	Messages   []string         `json:"messages"`
	Payload    *models.LogEntry `json:"payload"`
}

// MarshalJSON renders {"successful", "messages", "payload"}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Successful: r.Successful(),
		Messages:   r.Messages(),
		Payload:    r.payload,
	})
}

// UnmarshalJSON restores a Result, mainly for clients and tests.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.messages = raw.Messages
	r.payload = raw.Payload
	return nil
}

