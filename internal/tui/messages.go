package tui

import (
	"github.com/MKhiriev/keepno/internal/notify"
	"github.com/MKhiriev/keepno/internal/poller"
	"github.com/MKhiriev/keepno/models"
)

// fillDoneMsg reports the end of an eager fill of a list screen.
type fillDoneMsg struct {
	screen *listScreen
	err    error
}

// paneChangedMsg reports that a lazily triggered page fetch returned. grew
// is false when the fetch changed nothing, e.g. because it failed.
type paneChangedMsg struct {
	screen *listScreen
	grew   bool
}

type mutationOp int

const (
	opCreate mutationOp = iota
	opUpdate
	opDelete
)

type mutationDoneMsg struct {
	screen *listScreen
	op     mutationOp
	item   models.Item
	err    error
}

type alertMsg struct {
	notification notify.Notification
}

type alertExpiredMsg struct {
	id uint64
}

type exportUpdateMsg struct {
	screen *exportScreen
	update poller.Update
}

type exportDoneMsg struct {
	screen   *exportScreen
	location string
	err      error
}

type exportHistoryMsg struct {
	screen  *exportScreen
	records []models.ExportRecord
	err     error
}

type copiedMsg struct {
	err error
}

type lastNoteMsg struct {
	id models.ItemID
	ok bool
}
