package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category code or name does not map to a LogEntryType.
var ErrUnknownCategory = errors.New("unknown log entry category")

// LogEntryType is the meal category of a log entry. The numeric value is the
// code stored in log_entry.log_entry_type_id and must never be renumbered.
type LogEntryType int

const (
	LogEntryTypeBreakfast       LogEntryType = 1
	LogEntryTypeLunch           LogEntryType = 2
	LogEntryTypeDinner          LogEntryType = 3
	LogEntryTypeSnack           LogEntryType = 4
	LogEntryTypeSecondBreakfast LogEntryType = 5
)

type logEntryTypeInfo struct {
	name  string
	label string
}

var logEntryTypes = map[LogEntryType]logEntryTypeInfo{
	LogEntryTypeBreakfast:       {name: "BREAKFAST", label: "Breakfast"},
	LogEntryTypeLunch:           {name: "LUNCH", label: "Lunch"},
	LogEntryTypeDinner:          {name: "DINNER", label: "Dinner"},
	LogEntryTypeSnack:           {name: "SNACK", label: "Snack"},
	LogEntryTypeSecondBreakfast: {name: "SECOND_BREAKFAST", label: "Second Breakfast"},
}

// LogEntryTypes lists every category in code order.
func LogEntryTypes() []LogEntryType {
	return []LogEntryType{
		LogEntryTypeBreakfast,
		LogEntryTypeLunch,
		LogEntryTypeDinner,
		LogEntryTypeSnack,
		LogEntryTypeSecondBreakfast,
	}
}

// FindLogEntryTypeByValue resolves a stored category code.
func FindLogEntryTypeByValue(value int) (LogEntryType, error) {
	t := LogEntryType(value)
	if _, ok := logEntryTypes[t]; !ok {
		return 0, fmt.Errorf("%w: no LogEntryType with value %d", ErrUnknownCategory, value)
	}
	return t, nil
}

// ParseLogEntryType resolves a category by its wire name, e.g. "SECOND_BREAKFAST".
func ParseLogEntryType(name string) (LogEntryType, error) {
	for t, info := range logEntryTypes {
		if info.name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: no LogEntryType named %q", ErrUnknownCategory, name)
}

// Value returns the stable numeric code.
func (t LogEntryType) Value() int { return int(t) }

// Valid reports whether t is a known category.
func (t LogEntryType) Valid() bool {
	_, ok := logEntryTypes[t]
	return ok
}

// Label returns the human readable name ("Second Breakfast").
func (t LogEntryType) Label() string {
	return logEntryTypes[t].label
}

func (t LogEntryType) String() string {
	if info, ok := logEntryTypes[t]; ok {
		return info.name
	}
	return fmt.Sprintf("LogEntryType(%d)", int(t))
}

// MarshalJSON encodes the category by name.
func (t LogEntryType) MarshalJSON() ([]byte, error) {
	info, ok := logEntryTypes[t]
	if !ok {
		return nil, fmt.Errorf("%w: no LogEntryType with value %d", ErrUnknownCategory, int(t))
	}
	return json.Marshal(info.name)
}

// UnmarshalJSON decodes a category name.
func (t *LogEntryType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("log entry type must be a string: %w", err)
	}
	parsed, err := ParseLogEntryType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LogEntry is one food/calorie event.
type LogEntry struct {
	ID          int          `json:"id" example:"1"`
	LoggedOn    string       `json:"loggedOn" example:"2020-01-01 09:00 AM"`
	Type        LogEntryType `json:"type" swaggertype:"string" enums:"BREAKFAST,LUNCH,DINNER,SNACK,SECOND_BREAKFAST" example:"SNACK"`
	Description string       `json:"description" example:"Apple"`
	Calories    int          `json:"calories" example:"95"`
} // @name LogEntry
