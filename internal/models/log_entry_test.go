package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLogEntryTypeByValue_KnownCodes(t *testing.T) {
	tests := []struct {
		value int
		want  LogEntryType
		label string
	}{
		{1, LogEntryTypeBreakfast, "Breakfast"},
		{2, LogEntryTypeLunch, "Lunch"},
		{3, LogEntryTypeDinner, "Dinner"},
		{4, LogEntryTypeSnack, "Snack"},
		{5, LogEntryTypeSecondBreakfast, "Second Breakfast"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := FindLogEntryTypeByValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.Value())
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestFindLogEntryTypeByValue_UnknownCode(t *testing.T) {
	for _, value := range []int{0, -1, 6, 100} {
		_, err := FindLogEntryTypeByValue(value)
		assert.True(t, errors.Is(err, ErrUnknownCategory), "value %d", value)
	}
}

func TestLogEntryType_JSONUsesName(t *testing.T) {
	entry := LogEntry{ID: 3, LoggedOn: "2020-10-01", Type: LogEntryTypeSecondBreakfast, Description: "elevenses", Calories: 300}

	b, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"loggedOn":"2020-10-01","type":"SECOND_BREAKFAST","description":"elevenses","calories":300}`, string(b))

	var decoded LogEntry
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, entry, decoded)
}

func TestLogEntryType_UnmarshalUnknownName(t *testing.T) {
	var entry LogEntry
	err := json.Unmarshal([]byte(`{"type":"BRUNCH"}`), &entry)
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	err = json.Unmarshal([]byte(`{"type":4}`), &entry)
	assert.Error(t, err)
}

func TestLogEntryType_MarshalInvalidFails(t *testing.T) {
	_, err := json.Marshal(LogEntry{Type: 0})
	assert.Error(t, err)
	assert.False(t, LogEntryType(0).Valid())
	assert.Equal(t, "LogEntryType(9)", LogEntryType(9).String())
}

func TestLogEntryTypes_InCodeOrder(t *testing.T) {
	types := LogEntryTypes()
	require.Len(t, types, 5)
	for i, typ := range types {
		assert.Equal(t, i+1, typ.Value())
		assert.True(t, typ.Valid())
	}
}
