package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/service"
	"github.com/MKhiriev/keepno/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
	modeDetail
	modeExport
)

// appModel is the root model. The notes list lives for the whole program;
// the entries list of the opened note sits on top of it until esc.
type appModel struct {
	ctx         context.Context
	collections Collections
	session     service.ClientSessionService
	exports     service.ClientExportService
	sink        notify.Sink
	format      string
	logger      *logger.Logger

	width   int
	height  int
	spinner spinner.Model
	alerts  alertsModel

	notes   *listScreen
	entries *listScreen

	mode    mode
	form    formModel
	confirm confirmModel
	detail  detailModel
	export  *exportScreen

	sessionExpired bool
	status         string
}

func newAppModel(ctx context.Context, t *TUI) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:         ctx,
		collections: t.collections,
		session:     t.session,
		exports:     t.exports,
		sink:        t.sink,
		format:      t.format,
		logger:      t.logger,
		spinner:     s,
		alerts:      newAlertsModel(t.alerts),
	}
	m.notes = newListScreen(ctx, kindNotes, "NOTES", t.collections.Notes(), t.sink, defaultPaneHeight, t.logger.WithComponent("notes"))
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.alerts.listen(),
		m.notes.start(),
		m.cmdLastNote(),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := m.listHeight()
		m.notes.pane.setHeight(h)
		if m.entries != nil {
			m.entries.pane.setHeight(h)
		}
		return m, m.active().loadVisible()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case alertMsg:
		var cmd tea.Cmd
		m.alerts, cmd = m.alerts.push(msg.notification)
		return m, cmd

	case alertExpiredMsg:
		m.alerts = m.alerts.expire(msg.id)
		return m, nil

	case lastNoteMsg:
		if !msg.ok || m.entries != nil {
			return m, nil
		}
		return m, m.openNote(msg.id)

	case fillDoneMsg:
		if !m.live(msg.screen) {
			return m, nil
		}
		if msg.err != nil {
			m.noteError(msg.err)
			return m, nil
		}
		return m, msg.screen.loadVisible()

	case paneChangedMsg:
		if !m.live(msg.screen) || !msg.grew {
			return m, nil
		}
		return m, msg.screen.loadVisible()

	case mutationDoneMsg:
		return m.onMutationDone(msg)

	case exportUpdateMsg:
		if msg.screen != m.export {
			return m, nil
		}
		m.export.update = msg.update
		return m, m.export.waitUpdate()

	case exportDoneMsg:
		if msg.screen != m.export {
			return m, nil
		}
		m.export.done = true
		m.export.location = msg.location
		m.export.err = msg.err
		if msg.err == nil {
			m.export.update.Progress = 100
		}
		m.noteError(msg.err)
		return m, m.export.loadHistory(m.exports)

	case exportHistoryMsg:
		if msg.screen != m.export {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("export history")
			return m, nil
		}
		m.export.history = msg.records
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		if m.mode == modeExport && m.export != nil {
			m.export.copied = true
		} else {
			m.status = "Copied"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm {
			var cmd tea.Cmd
			m.form, cmd, _ = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.mode != modeForm && key.Matches(keyMsg, keys.dismiss) && !m.alerts.empty() {
		m.alerts = m.alerts.dismissAll()
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeExport:
		return m.updateExport(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m appModel) updateList(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.active()
	m.status = ""

	switch {
	case key.Matches(k, keys.quit):
		return m.quit()
	case key.Matches(k, keys.up):
		screen.pane.move(-1)
		return m, screen.loadVisible()
	case key.Matches(k, keys.down):
		screen.pane.move(1)
		return m, screen.loadVisible()
	case key.Matches(k, keys.pgUp):
		screen.pane.move(-m.listHeight())
		return m, screen.loadVisible()
	case key.Matches(k, keys.pgDown):
		screen.pane.move(m.listHeight())
		return m, screen.loadVisible()
	case key.Matches(k, keys.reload):
		return m, screen.reload()
	case key.Matches(k, keys.newItem):
		if screen.kind == kindNotes {
			m.form = newNoteForm()
		} else {
			m.form = newEntryForm()
		}
		m.mode = modeForm
		return m, nil
	case key.Matches(k, keys.esc):
		if m.entries != nil {
			m.entries.close()
			m.entries = nil
			return m, m.notes.loadVisible()
		}
		return m, nil
	}

	item, ok := screen.pane.selectedItem()
	if !ok {
		return m, nil
	}

	if screen.kind == kindNotes {
		if key.Matches(k, keys.enter) {
			return m, m.openNote(item.ID)
		}
		return m, nil
	}

	switch {
	case key.Matches(k, keys.enter):
		m.detail = detailModel{item: item}
		m.mode = modeDetail
	case key.Matches(k, keys.edit):
		m.form = editEntryForm(item)
		m.mode = modeForm
	case key.Matches(k, keys.delete):
		m.confirm = confirmModel{item: item}
		m.mode = modeConfirm
	case key.Matches(k, keys.export):
		return m, m.startExport()
	}
	return m, nil
}

func (m appModel) updateForm(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(k, keys.esc) {
		m.mode = modeList
		return m, nil
	}

	form, cmd, submit := m.form.update(k)
	m.form = form
	if !submit {
		return m, cmd
	}

	m.form.submitting = true
	screen := m.active()
	if m.form.kind == formEditEntry {
		return m, screen.update(m.form.editID, m.form.draft())
	}
	return m, screen.create(m.form.draft())
}

func (m appModel) updateConfirm(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.yes):
		m.mode = modeList
		return m, m.active().delete(m.confirm.item.ID)
	case key.Matches(k, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m appModel) updateDetail(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.esc):
		m.mode = modeList
	case key.Matches(k, keys.edit):
		m.form = editEntryForm(m.detail.item)
		m.mode = modeForm
	case key.Matches(k, keys.delete):
		m.confirm = confirmModel{item: m.detail.item}
		m.mode = modeConfirm
	case key.Matches(k, keys.copy):
		text := m.detail.item.Field(models.FieldContent)
		return m, func() tea.Msg { return copiedMsg{err: clipboard.WriteAll(text)} }
	}
	return m, nil
}

func (m appModel) updateExport(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.esc):
		m.export.close()
		m.export = nil
		m.mode = modeList
	case key.Matches(k, keys.copy):
		return m, m.export.copyLocation()
	}
	return m, nil
}

func (m appModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if !m.live(msg.screen) {
		return m, nil
	}
	if msg.op != opDelete && m.mode == modeForm && m.form.submitting {
		m.form.submitting = false
		if msg.err == nil {
			m.mode = modeList
		}
	}
	if msg.err != nil {
		m.noteError(msg.err)
		return m, nil
	}
	return m, msg.screen.loadVisible()
}

// openNote shows the entries of the note with id on top of the notes list.
func (m *appModel) openNote(id models.ItemID) tea.Cmd {
	if m.entries != nil {
		m.entries.close()
	}

	title := fmt.Sprintf("Note #%d", id)
	if note, ok := m.notes.pane.find(id); ok {
		title = note.Field(models.FieldTitle)
	}

	m.entries = newListScreen(m.ctx, kindEntries, title, m.collections.Entries(id), m.sink, m.listHeight(), m.logger.WithComponent("entries"))
	m.entries.noteID = id
	m.notes.pane.setHighlight(id)

	return tea.Batch(m.entries.start(), m.cmdRememberNote(id))
}

func (m *appModel) startExport() tea.Cmd {
	if m.entries == nil {
		return nil
	}
	m.export = newExportScreen(m.ctx, m.entries.noteID, m.entries.title, m.format)
	m.mode = modeExport
	return m.export.start(m.exports)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.export != nil {
		m.export.close()
	}
	if m.entries != nil {
		m.entries.close()
	}
	m.notes.close()
	return m, tea.Quit
}

// noteError turns a session expiry into the persistent hint. Every other
// failure has already been notified by the component that saw it.
func (m *appModel) noteError(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if errors.Is(err, service.ErrSessionExpired) && !m.sessionExpired {
		m.sessionExpired = true
		if forgetErr := m.session.Forget(context.WithoutCancel(m.ctx)); forgetErr != nil {
			m.logger.Err(forgetErr).Str("func", "appModel.noteError").Msg("forget session")
		}
	}
}

func (m appModel) cmdLastNote() tea.Cmd {
	ctx, svc := m.ctx, m.session
	return func() tea.Msg {
		id, ok := svc.LastOpenedNote(ctx)
		return lastNoteMsg{id: id, ok: ok}
	}
}

func (m appModel) cmdRememberNote(id models.ItemID) tea.Cmd {
	ctx, svc, log := m.ctx, m.session, m.logger
	return func() tea.Msg {
		if err := svc.RememberOpenedNote(ctx, id); err != nil {
			log.Err(err).Str("func", "appModel.cmdRememberNote").Msg("remember opened note")
		}
		return nil
	}
}

func (m appModel) active() *listScreen {
	if m.entries != nil {
		return m.entries
	}
	return m.notes
}

func (m appModel) live(s *listScreen) bool {
	return s != nil && (s == m.notes || s == m.entries)
}

func (m appModel) listHeight() int {
	if m.height == 0 {
		return defaultPaneHeight
	}
	// page chrome, app padding and the status line
	return max(3, m.height-pageChromeLines-3)
}

func (m appModel) View() string {
	var title, body, hotKeys string

	switch m.mode {
	case modeForm:
		title, body, hotKeys = m.form.view()
	case modeDetail:
		title, body, hotKeys = m.detail.view()
	case modeExport:
		title, body, hotKeys = m.export.view()
	default:
		screen := m.active()
		title = screen.title
		if screen.kind == kindNotes {
			title = "KEEPNO · NOTES"
		}
		body = screen.view(m.spinner.View()+" loading...", max(40, m.width-6))
		hotKeys = screen.hotKeys()
		if m.status != "" {
			body += "\n\n" + m.status
		}
	}

	page := renderPage(title, body, hotKeys)
	if m.mode == modeConfirm {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", m.confirm.View())
	}

	var parts []string
	if m.sessionExpired {
		parts = append(parts, sessionHintStyle.Render(sessionExpiredHint))
	}
	if a := m.alerts.view(); a != "" {
		parts = append(parts, a)
	}
	parts = append(parts, page)

	return appStyle.Render(strings.Join(parts, "\n\n"))
}
