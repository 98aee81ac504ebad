package listsync

import (
	"testing"

	"github.com/MKhiriev/keepno/models"
	"github.com/stretchr/testify/assert"
)

func TestCursor_StartsAtFirstPage(t *testing.T) {
	c := NewCursor()

	assert.True(t, c.HasMore())
	assert.Equal(t, models.FirstCursor, c.Next())
	assert.Zero(t, c.Pages())
}

func TestCursor_Advance(t *testing.T) {
	tests := []struct {
		name     string
		pages    []models.CollectionPage
		wantMore bool
		wantNext models.Cursor
	}{
		{
			name:     "middle page",
			pages:    []models.CollectionPage{{HasNext: true, NextCursor: "2"}},
			wantMore: true,
			wantNext: "2",
		},
		{
			name:     "last page",
			pages:    []models.CollectionPage{{HasNext: true, NextCursor: "2"}, {HasNext: false}},
			wantMore: false,
			wantNext: "",
		},
		{
			name:     "successor without token ends pagination",
			pages:    []models.CollectionPage{{HasNext: true}},
			wantMore: false,
			wantNext: "",
		},
		{
			name: "follows server tokens in order",
			pages: []models.CollectionPage{
				{HasNext: true, NextCursor: "2"},
				{HasNext: true, NextCursor: "3"},
			},
			wantMore: true,
			wantNext: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor()
			for _, p := range tt.pages {
				c.Advance(p)
			}

			assert.Equal(t, tt.wantMore, c.HasMore())
			assert.Equal(t, tt.wantNext, c.Next())
			assert.Equal(t, len(tt.pages), c.Pages())
		})
	}
}

func TestPositionAndModeStrings(t *testing.T) {
	assert.Equal(t, "append", Append.String())
	assert.Equal(t, "prepend", Prepend.String())
	assert.Equal(t, "eager", Eager.String())
	assert.Equal(t, "lazy", Lazy.String())
}
