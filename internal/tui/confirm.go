package tui

import "github.com/MKhiriev/keepno/models"

type confirmModel struct {
	item models.Item
}

func (m confirmModel) View() string {
	content := "Delete entry \"" + fitText(firstLine(m.item.Field(models.FieldContent)), 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
