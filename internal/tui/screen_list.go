package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/models"
	tea "github.com/charmbracelet/bubbletea"
)

type listKind int

const (
	kindNotes listKind = iota
	kindEntries
)

// listScreen binds one collection to a pane through a list engine and a
// fill controller. Each screen owns its context; leaving the screen closes
// the engine and cancels whatever is still in flight.
type listScreen struct {
	kind   listKind
	title  string
	noteID models.ItemID

	engine *listsync.Engine
	fill   *listsync.FillController
	pane   *listPane

	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger
}

func newListScreen(
	parent context.Context,
	kind listKind,
	title string,
	collection listsync.Collection,
	sink notify.Sink,
	height int,
	log *logger.Logger,
) *listScreen {
	ctx, cancel := context.WithCancel(parent)
	pane := newListPane(height)
	engine := listsync.NewEngine(collection, pane, sink, log)

	return &listScreen{
		kind:   kind,
		title:  title,
		engine: engine,
		fill:   listsync.NewFillController(engine, pane, log),
		pane:   pane,
		ctx:    ctx,
		cancel: cancel,
		logger: log,
	}
}

// start runs the eager fill. It is also the retry path after a failed
// eager fetch, since the controller stays in Eager mode in that case.
func (s *listScreen) start() tea.Cmd {
	return func() tea.Msg {
		return fillDoneMsg{screen: s, err: s.fill.Start(s.ctx)}
	}
}

// loadVisible fires the lazy trigger when the loading indicator is in view.
func (s *listScreen) loadVisible() tea.Cmd {
	trigger := s.pane.pendingTrigger()
	if trigger == nil {
		return nil
	}
	before := s.pane.currentVersion()
	return func() tea.Msg {
		trigger()
		return paneChangedMsg{screen: s, grew: s.pane.currentVersion() != before}
	}
}

// reload retries the fill in whichever mode the controller is in.
func (s *listScreen) reload() tea.Cmd {
	if s.fill.Done() {
		return nil
	}
	if s.fill.Mode() == listsync.Eager {
		return s.start()
	}
	return s.loadVisible()
}

func (s *listScreen) create(draft models.Draft) tea.Cmd {
	return func() tea.Msg {
		item, err := s.engine.Create(s.ctx, draft)
		return mutationDoneMsg{screen: s, op: opCreate, item: item, err: err}
	}
}

func (s *listScreen) update(id models.ItemID, draft models.Draft) tea.Cmd {
	return func() tea.Msg {
		item, err := s.engine.Update(s.ctx, id, draft)
		return mutationDoneMsg{screen: s, op: opUpdate, item: item, err: err}
	}
}

func (s *listScreen) delete(id models.ItemID) tea.Cmd {
	return func() tea.Msg {
		err := s.engine.Delete(s.ctx, id)
		return mutationDoneMsg{screen: s, op: opDelete, item: models.Item{ID: id}, err: err}
	}
}

func (s *listScreen) close() {
	s.fill.Stop()
	s.engine.Close()
	s.cancel()
}

func (s *listScreen) view(indicator string, width int) string {
	switch s.kind {
	case kindEntries:
		return s.pane.view(entryRow, indicator, "No entries.", width)
	default:
		return s.pane.view(noteRow, indicator, "No notes yet. Press n to add one.", width)
	}
}

func (s *listScreen) hotKeys() string {
	switch s.kind {
	case kindEntries:
		return "n: new │ enter: view │ e: edit │ d: delete │ p: export │ r: reload │ esc: back"
	default:
		return "n: new │ enter: open │ r: reload │ ↑/↓: nav │ q: quit"
	}
}

func noteRow(item models.Item, selected, highlighted bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	title := item.Field(models.FieldTitle)
	if desc := item.Field(models.FieldDescription); desc != "" {
		title = fmt.Sprintf("%s · %s", title, desc)
	}
	line := cursor + fitText(title, max(10, width-22)) + "  " + dateStyle.Render(item.Field(models.FieldCreated))

	switch {
	case selected:
		return selectedStyle.Render(line)
	case highlighted:
		return highlightStyle.Render(line)
	}
	return line
}

func entryRow(item models.Item, selected, _ bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	line := cursor + dateStyle.Render(item.Field(models.FieldCreated)) + "  " +
		fitText(firstLine(item.Field(models.FieldContent)), max(10, width-22))
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}
