package tui

import (
	"fmt"

	"github.com/MKhiriev/keepno/models"
)

type detailModel struct {
	item models.Item
}

func (m detailModel) view() (title, body, hotKeys string) {
	body = fmt.Sprintf("Created │ %s\n\n%s", m.item.Field(models.FieldCreated), m.item.Field(models.FieldContent))
	return "ENTRY", body, "e: edit │ d: delete │ c: copy │ esc: back"
}
