package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDetail_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ErrorDetail
	}{
		{
			name: "single message",
			body: `"Note does not exist."`,
			want: ErrorDetail{Message: "Note does not exist."},
		},
		{
			name: "field messages sorted by field",
			body: `{"title": ["Note must have title."], "description": ["Too long.", "Bad chars."]}`,
			want: ErrorDetail{Fields: []FieldMessages{
				{Field: "description", Messages: []string{"Too long.", "Bad chars."}},
				{Field: "title", Messages: []string{"Note must have title."}},
			}},
		},
		{
			name: "field with plain string",
			body: `{"content": "Content cannot be empty"}`,
			want: ErrorDetail{Fields: []FieldMessages{
				{Field: "content", Messages: []string{"Content cannot be empty"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ErrorDetail
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorDetail_UnmarshalJSON_Invalid(t *testing.T) {
	var got ErrorDetail
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{StatusCode: 400, Detail: ErrorDetail{Fields: []FieldMessages{
		{Field: "content", Messages: []string{"Content cannot be empty"}},
	}}}
	assert.Contains(t, err.Error(), "Content cannot be empty")
	assert.Contains(t, err.Error(), "400")
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var note Note
	body := `{"id": 3, "title": "t", "created": "2021-05-01T10:20:30.123456", "updated": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &note))

	assert.Equal(t, ItemID(3), note.ID)
	assert.Equal(t, time.Date(2021, 5, 1, 10, 20, 30, 123456000, time.UTC), note.Created.Time)
	assert.True(t, note.Updated.IsZero())
}

func TestItem_WithFields_KeepsIdentity(t *testing.T) {
	item := Item{ID: 7, Fields: map[string]string{FieldContent: "old", FieldCreated: "Jan 1"}}

	updated := item.WithFields(map[string]string{FieldContent: "new"})

	assert.Equal(t, ItemID(7), updated.ID)
	assert.Equal(t, "new", updated.Field(FieldContent))
	assert.Equal(t, "Jan 1", updated.Field(FieldCreated))
	assert.Equal(t, "old", item.Field(FieldContent), "original item must not change")
}
