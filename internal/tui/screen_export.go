package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/internal/service"
	"github.com/MKhiriev/keepno/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const exportHistoryLimit = 5

// exportScreen follows one export of a note. Progress updates come from the
// poller goroutine through updates, which is closed once Export returns.
type exportScreen struct {
	noteID    models.ItemID
	noteTitle string
	format    string

	bar      progress.Model
	update   poller.Update
	location string
	err      error
	done     bool
	history  []models.ExportRecord
	copied   bool

	updates chan poller.Update
	ctx     context.Context
	cancel  context.CancelFunc
}

func newExportScreen(parent context.Context, noteID models.ItemID, noteTitle, format string) *exportScreen {
	ctx, cancel := context.WithCancel(parent)
	return &exportScreen{
		noteID:    noteID,
		noteTitle: noteTitle,
		format:    format,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		updates:   make(chan poller.Update, 16),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// start runs the export and starts listening for progress.
func (s *exportScreen) start(svc service.ClientExportService) tea.Cmd {
	run := func() tea.Msg {
		defer close(s.updates)
		observer := poller.ObserverFunc(func(u poller.Update) {
			select {
			case s.updates <- u:
			default:
				// the outcome arrives with exportDoneMsg
			}
		})
		loc, err := svc.Export(s.ctx, s.noteID, s.format, observer)
		return exportDoneMsg{screen: s, location: loc, err: err}
	}
	return tea.Batch(run, s.waitUpdate())
}

func (s *exportScreen) waitUpdate() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-s.updates
		if !ok {
			return nil
		}
		return exportUpdateMsg{screen: s, update: u}
	}
}

func (s *exportScreen) loadHistory(svc service.ClientExportService) tea.Cmd {
	ctx := s.ctx
	return func() tea.Msg {
		records, err := svc.History(context.WithoutCancel(ctx), s.noteID, exportHistoryLimit)
		return exportHistoryMsg{screen: s, records: records, err: err}
	}
}

func (s *exportScreen) copyLocation() tea.Cmd {
	loc := s.location
	if loc == "" {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(loc)}
	}
}

func (s *exportScreen) close() {
	s.cancel()
}

func (s *exportScreen) view() (title, body, hotKeys string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Note    │ %s\n", s.noteTitle)
	fmt.Fprintf(&b, "Format  │ %s\n", strings.ToUpper(s.format))
	fmt.Fprintf(&b, "Status  │ %s\n\n", s.status())
	b.WriteString(s.bar.ViewAs(float64(s.update.Progress) / 100))
	b.WriteString("\n")

	if s.location != "" {
		b.WriteString("\nDownload: " + s.location + "\n")
		if s.copied {
			b.WriteString("Link copied to clipboard\n")
		}
	}

	if len(s.history) > 0 {
		b.WriteString("\nRecent exports\n")
		for _, r := range s.history {
			fmt.Fprintf(&b, "  %s  %-9s %s\n",
				r.FinishedAt.Local().Format(service.DisplayTimeLayout), r.State, valueOrDash(r.Location))
		}
	}

	hotKeys = "esc: cancel"
	if s.done {
		hotKeys = "esc: back"
		if s.location != "" {
			hotKeys = "c: copy link │ esc: back"
		}
	}
	return "EXPORT", strings.TrimRight(b.String(), "\n"), hotKeys
}

func (s *exportScreen) status() string {
	switch {
	case !s.done:
		if s.update.State == poller.Polling {
			return fmt.Sprintf("in progress, %d%%", s.update.Progress)
		}
		return "starting..."
	case s.err == nil:
		return "done"
	case errors.Is(s.err, poller.ErrPollingCancelled), errors.Is(s.err, context.Canceled):
		return "cancelled"
	default:
		return "failed: " + humanizeServerUnavailableError(s.err)
	}
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
