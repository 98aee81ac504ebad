package service

import "github.com/MKhiriev/keepno/internal/listsync"

// NotesMessages are the notification texts of the notes list.
var NotesMessages = listsync.Messages{
	LoadFailed:     "There was a problem. Notes couldn't be downloaded.",
	Created:        "New note has been added successfully!",
	CreateRejected: "Your note was not added:",
	CreateFailed:   "There was a problem. The note was not added!",
	Updated:        "Note has been updated successfully!",
	UpdateRejected: "Your note was not updated:",
	UpdateFailed:   "There was a problem. The note was not updated!",
	Deleted:        "Note has been deleted successfully!",
	DeleteRejected: "Your note was not deleted:",
	DeleteFailed:   "There was a problem. Note couldn't be deleted.",
}

// EntriesMessages are the notification texts of the entries of a note.
var EntriesMessages = listsync.Messages{
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

// Export notification texts.
const (
	MsgExportSucceeded = "Note has been generated successfully!"
	MsgExportRejected  = "Your note has been not dumped to PDF:"
	MsgExportFailed    = "There was a problem. Your note has been not dumped to PDF!"
)
