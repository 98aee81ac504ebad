package models

import "time"

// ExportState is the final state of an export remembered by the client.
type ExportState string

const (
	ExportSucceeded ExportState = "succeeded"
	ExportFailed    ExportState = "failed"
)

// ExportRecord is one finished export kept in the local history.
type ExportRecord struct {
	ID         int64
	NoteID     ItemID
	TaskID     string
	Format     string
	State      ExportState
	Location   string
	FinishedAt time.Time
}
