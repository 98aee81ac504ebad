package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FieldMessages holds the messages reported for one request field.
type FieldMessages struct {
	Field    string
	Messages []string
}

// ErrorDetail is the value of the "error" key in a keepno error response. The
// server sends either a single message or a mapping from field name to a list
// of messages.
type ErrorDetail struct {
	Message string
	Fields  []FieldMessages
}

// IsZero reports whether the detail carries no information.
func (d ErrorDetail) IsZero() bool {
	return d.Message == "" && len(d.Fields) == 0
}

// String flattens the detail into a single line.
func (d ErrorDetail) String() string {
	if d.Message != "" {
		return d.Message
	}
	parts := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		parts = append(parts, f.Field+": "+strings.Join(f.Messages, "; "))
	}
	return strings.Join(parts, ", ")
}

// UnmarshalJSON implements json.Unmarshaler. Fields are sorted by name so the
// rendered order is stable.
func (d *ErrorDetail) UnmarshalJSON(b []byte) error {
	var msg string
	if err := json.Unmarshal(b, &msg); err == nil {
		*d = ErrorDetail{Message: msg}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("error detail is neither a string nor an object: %w", err)
	}

	fields := make([]FieldMessages, 0, len(raw))
	for name, value := range raw {
		fields = append(fields, FieldMessages{Field: name, Messages: decodeMessages(value)})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	*d = ErrorDetail{Fields: fields}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d ErrorDetail) MarshalJSON() ([]byte, error) {
	if len(d.Fields) == 0 {
		return json.Marshal(d.Message)
	}
	m := make(map[string][]string, len(d.Fields))
	for _, f := range d.Fields {
		m[f.Field] = f.Messages
	}
	return json.Marshal(m)
}

func decodeMessages(value json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(value, &single); err == nil {
		return []string{single}
	}
	// nested schemas report objects; keep them readable rather than dropping them
	return []string{strings.TrimSpace(string(value))}
}

// ValidationError is returned when the server rejects a request with a
// structured "error" payload.
type ValidationError struct {
	StatusCode int
	Detail     ErrorDetail
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Detail.String())
}
