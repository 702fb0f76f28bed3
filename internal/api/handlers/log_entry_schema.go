package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dhima/calorie-tracker/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

// logEntrySchema checks the request shape only. Field rules such as calorie
// bounds are left to the log entry service so they come back as messages.
var logEntrySchema = mustCompileLogEntrySchema()

func mustCompileLogEntrySchema() *gojsonschema.Schema {
	names := make([]interface{}, 0, len(models.LogEntryTypes()))
	for _, t := range models.LogEntryTypes() {
		names = append(names, t.String())
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]interface{}{
		"$schema":  "http://json-schema.org/draft-07/schema#",
		"type":     []interface{}{"object", "null"},
		"required": []interface{}{"type"},
		"properties": map[string]interface{}{
			"id":          map[string]interface{}{"type": []interface{}{"integer", "null"}},
			"loggedOn":    map[string]interface{}{"type": []interface{}{"string", "null"}},
			"type":        map[string]interface{}{"type": "string", "enum": names},
			"description": map[string]interface{}{"type": []interface{}{"string", "null"}},
			"calories":    map[string]interface{}{"type": []interface{}{"integer", "null"}},
		},
	}))
	if err != nil {
		panic(fmt.Sprintf("compile log entry schema: %v", err))
	}
	return schema
}

// schemaError reports a body that does not match logEntrySchema.
type schemaError struct {
	problems []string
}

func (e *schemaError) Error() string {
	return fmt.Sprintf("validation errors: %v", e.problems)
}

// decodeLogEntry validates body against logEntrySchema and decodes it. A JSON
// null body decodes to a nil entry.
func decodeLogEntry(body []byte) (*models.LogEntry, error) {
	result, err := logEntrySchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &schemaError{problems: problems}
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, nil
	}

	var entry models.LogEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("decode log entry: %w", err)
	}
	return &entry, nil
}
