package listsync_test

import (
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/keepno/internal/listsync"
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/models"
)

var testMessages = listsync.Messages{
	LoadFailed:     "There was a problem. Entries couldn't be downloaded.",
	Created:        "New entry has been added successfully!",
	CreateRejected: "Your entry was not added:",
	CreateFailed:   "There was a problem. The entry was not added!",
	Updated:        "Entry has been updated successfully!",
	UpdateRejected: "Your entry was not updated:",
	UpdateFailed:   "There was a problem. The entry was not updated!",
	Deleted:        "Entry has been deleted successfully!",
	DeleteRejected: "Your entry was not deleted:",
	DeleteFailed:   "There was a problem. Entry couldn't be deleted.",
}

// recordingPresenter mirrors the rendered list the way a UI would.
type recordingPresenter struct {
	mu               sync.Mutex
	ids              []models.ItemID
	fields           map[models.ItemID]map[string]string
	indicatorVisible bool
	indicatorChanges int
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{fields: make(map[models.ItemID]map[string]string)}
}

func (p *recordingPresenter) RenderItem(pos listsync.Position, item models.Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pos == listsync.Prepend {
		p.ids = slices.Insert(p.ids, 0, item.ID)
	} else {
		p.ids = append(p.ids, item.ID)
	}
	p.fields[item.ID] = item.Fields
}

func (p *recordingPresenter) RemoveRenderedItem(id models.ItemID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = slices.DeleteFunc(p.ids, func(other models.ItemID) bool { return other == id })
	delete(p.fields, id)
}

func (p *recordingPresenter) UpdateRenderedItem(id models.ItemID, fields map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	merged := make(map[string]string)
	for k, v := range p.fields[id] {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	p.fields[id] = merged
}

func (p *recordingPresenter) SetLoadingIndicatorVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.indicatorVisible = visible
	p.indicatorChanges++
}

func (p *recordingPresenter) IDs() []models.ItemID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.ids)
}

func (p *recordingPresenter) Field(id models.ItemID, name string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fields[id][name]
}

func (p *recordingPresenter) IndicatorVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.indicatorVisible
}

// recordingSink collects notifications.
type recordingSink struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (s *recordingSink) Notify(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
}

func (s *recordingSink) All() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.got)
}

func item(id int64) models.Item {
	return models.Item{
		ID:     models.ItemID(id),
		Fields: map[string]string{models.FieldContent: "entry " + strconv.FormatInt(id, 10)},
	}
}

func page(next models.Cursor, ids ...int64) models.CollectionPage {
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, item(id))
	}
	return models.CollectionPage{Items: items, HasNext: next != "", NextCursor: next}
}
