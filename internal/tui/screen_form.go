package tui

import (
	"strings"

	"github.com/MKhiriev/keepno/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formNewNote formKind = iota
	formNewEntry
	formEditEntry
)

// formModel collects a draft for one create or update call. Submitting
// keeps the form open until the mutation result arrives; a rejected draft
// stays editable.
type formModel struct {
	kind   formKind
	editID models.ItemID

	title       textinput.Model
	description textinput.Model
	content     textarea.Model
	focus       int

	submitting bool
}

func newNoteForm() formModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 48
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "description (optional)"
	desc.CharLimit = 500
	desc.Width = 48

	return formModel{kind: formNewNote, title: title, description: desc}
}

func newEntryForm() formModel {
	return formModel{kind: formNewEntry, content: newContentArea("")}
}

func editEntryForm(item models.Item) formModel {
	return formModel{
		kind:    formEditEntry,
		editID:  item.ID,
		content: newContentArea(item.Field(models.FieldContent)),
	}
}

func newContentArea(value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.ShowLineNumbers = false
	ta.SetValue(value)
	ta.Focus()
	return ta
}

func (f formModel) heading() string {
	switch f.kind {
	case formNewNote:
		return "NEW NOTE"
	case formEditEntry:
		return "EDIT ENTRY"
	default:
		return "NEW ENTRY"
	}
}

// draft returns the entered values keyed by display field name.
func (f formModel) draft() models.Draft {
	if f.kind == formNewNote {
		return models.Draft{
			models.FieldTitle:       strings.TrimSpace(f.title.Value()),
			models.FieldDescription: strings.TrimSpace(f.description.Value()),
		}
	}
	return models.Draft{models.FieldContent: f.content.Value()}
}

// update handles editing keys. submit is true when the user asked to save.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	if f.submitting {
		return f, nil, false
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.save):
			return f, nil, true
		case f.kind == formNewNote && key.Matches(k, keys.enter):
			return f, nil, true
		case f.kind == formNewNote && (key.Matches(k, keys.tab) || key.Matches(k, keys.backtab)):
			f.focus = 1 - f.focus
			if f.focus == 0 {
				f.description.Blur()
				return f, f.title.Focus(), false
			}
			f.title.Blur()
			return f, f.description.Focus(), false
		}
	}

	var cmd tea.Cmd
	switch {
	case f.kind != formNewNote:
		f.content, cmd = f.content.Update(msg)
	case f.focus == 0:
		f.title, cmd = f.title.Update(msg)
	default:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd, false
}

func (f formModel) view() (title, body, hotKeys string) {
	var b strings.Builder
	if f.kind == formNewNote {
		b.WriteString("Title       │ " + f.title.View() + "\n")
		b.WriteString("Description │ " + f.description.View() + "\n")
		hotKeys = "tab: next field │ enter: save │ esc: cancel"
	} else {
		b.WriteString(f.content.View() + "\n")
		hotKeys = "ctrl+s: save │ esc: cancel"
	}
	if f.submitting {
		b.WriteString("\nSaving...")
	}
	return f.heading(), strings.TrimRight(b.String(), "\n"), hotKeys
}
