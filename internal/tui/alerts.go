package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/keepno/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxAlerts     = 3
	alertLifetime = 6 * time.Second
)

type alert struct {
	id           uint64
	notification notify.Notification
}

// alertsModel shows the newest notifications above the page. Each alert
// expires on its own; x dismisses all of them.
type alertsModel struct {
	source <-chan notify.Notification
	items  []alert
	nextID uint64
}

func newAlertsModel(source <-chan notify.Notification) alertsModel {
	return alertsModel{source: source}
}

// listen waits for the next notification. It must be re-issued after every
// alertMsg.
func (a alertsModel) listen() tea.Cmd {
	if a.source == nil {
		return nil
	}
	src := a.source
	return func() tea.Msg {
		n, ok := <-src
		if !ok {
			return nil
		}
		return alertMsg{notification: n}
	}
}

func (a alertsModel) push(n notify.Notification) (alertsModel, tea.Cmd) {
	a.nextID++
	id := a.nextID
	a.items = append(a.items, alert{id: id, notification: n})
	if len(a.items) > maxAlerts {
		a.items = a.items[len(a.items)-maxAlerts:]
	}
	expire := tea.Tick(alertLifetime, func(time.Time) tea.Msg { return alertExpiredMsg{id: id} })
	return a, tea.Batch(expire, a.listen())
}

func (a alertsModel) expire(id uint64) alertsModel {
	for i, it := range a.items {
		if it.id == id {
			a.items = append(a.items[:i:i], a.items[i+1:]...)
			break
		}
	}
	return a
}

func (a alertsModel) dismissAll() alertsModel {
	a.items = nil
	return a
}

func (a alertsModel) empty() bool {
	return len(a.items) == 0
}

func (a alertsModel) view() string {
	if len(a.items) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(a.items))
	for _, it := range a.items {
		n := it.notification
		body := alertHeaderStyle(n.Severity).Render(n.Title()) + "\n" + n.Body
		blocks = append(blocks, alertStyle(n.Severity).Render(body))
	}
	return strings.Join(blocks, "\n")
}
