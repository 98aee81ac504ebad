package listsync

import (
	"context"

	"github.com/MKhiriev/keepno/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/listsync_mock.go -package=mock

// Position tells the presenter where a rendered item goes.
type Position int

const (
	// Append places the item after the last rendered item.
	Append Position = iota
	// Prepend places the item before the first rendered item.
	Prepend
)

func (p Position) String() string {
	if p == Prepend {
		return "prepend"
	}
	return "append"
}

// Collection is the server side of one list: paged reads plus mutations.
type Collection interface {
	// FetchPage returns the page addressed by cursor.
	FetchPage(ctx context.Context, cursor models.Cursor) (models.CollectionPage, error)

	// Create stores a new item and returns it as the server stored it.
	Create(ctx context.Context, draft models.Draft) (models.Item, error)

	// Update changes an item and returns its new state.
	Update(ctx context.Context, id models.ItemID, draft models.Draft) (models.Item, error)

	// Delete removes an item and returns the removed identity.
	Delete(ctx context.Context, id models.ItemID) (models.Item, error)

	// Messages returns the user-facing texts of this collection.
	Messages() Messages
}

// Presenter renders the list. Calls arrive from any goroutine but never
// concurrently for one Engine.
type Presenter interface {
	RenderItem(pos Position, item models.Item)
	RemoveRenderedItem(id models.ItemID)
	UpdateRenderedItem(id models.ItemID, fields map[string]string)
	SetLoadingIndicatorVisible(visible bool)
}

// Viewport reports the geometry of the rendered list.
type Viewport interface {
	// Overflows reports whether the rendered content no longer fits the
	// visible area.
	Overflows() bool

	// WatchIndicator arranges for trigger to be called whenever the loading
	// indicator becomes at least partially visible. The returned func
	// detaches the trigger.
	WatchIndicator(trigger func()) (stop func())
}

// Pager is the part of an Engine the FillController drives.
type Pager interface {
	LoadNextPage(ctx context.Context) (bool, error)
}

// Messages holds the notification texts of one collection. The *Rejected
// texts head a server-reported validation detail; the *Failed texts stand
// alone for any other failure.
type Messages struct {
	LoadFailed string

	Created        string
	CreateRejected string
	CreateFailed   string

	Updated        string
	UpdateRejected string
	UpdateFailed   string

	Deleted        string
	DeleteRejected string
	DeleteFailed   string
}
