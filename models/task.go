// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskState is the state reported by the task-status endpoint.
type TaskState string

const (
	TaskPending  TaskState = "PENDING"
	TaskProgress TaskState = "PROGRESS"
	TaskSuccess  TaskState = "SUCCESS"
	TaskFailure  TaskState = "FAILURE"
)

// TaskHandle identifies a background export job started on the server.
type TaskHandle struct {
	TaskID    string
	StatusURL string
}

// TaskStatus is one observation of a background job.
type TaskStatus struct {
	State    TaskState `json:"status"`
	Progress int       `json:"progress"`
	Result   string    `json:"result,omitempty"`
}

// ExportResponse is the answer to an export trigger request. Exactly one of
// TaskID (with ReportStatus "started") or Error is set.
type ExportResponse struct {
	ReportStatus string       `json:"report_status,omitempty"`
	TaskID       string       `json:"task_id,omitempty"`
	Error        *ErrorDetail `json:"error,omitempty"`
}

// ExportStarted is the ReportStatus value of an accepted export request.
const ExportStarted = "started"
