// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRepoWithMock(t *testing.T) (ExportRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewExportRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func TestExportRepository_SaveExport(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO exports (note_id,task_id,format,state,location,finished_at)")).
		WithArgs(int64(42), "t-42", "pdf", "succeeded", "http://h/media/42.pdf", at).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveExport(context.Background(), models.ExportRecord{
		NoteID:     42,
		TaskID:     "t-42",
		Format:     "pdf",
		State:      models.ExportSucceeded,
		Location:   "http://h/media/42.pdf",
		FinishedAt: at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportRepository_SaveExport_Error(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO exports")).WillReturnError(errors.New("disk full"))

	err := repo.SaveExport(context.Background(), models.ExportRecord{NoteID: 1})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestExportRepository_RecentExports(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)
	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(exportColumns).
		AddRow(int64(2), int64(7), "t-2", "pdf", "succeeded", "http://h/2.pdf", newer).
		AddRow(int64(1), int64(7), "t-1", "pdf", "failed", "", older)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, note_id, task_id, format, state, location, finished_at FROM exports WHERE note_id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.RecentExports(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.ItemID(7), got[0].NoteID)
	assert.Equal(t, models.ExportSucceeded, got[0].State)
	assert.Equal(t, "http://h/2.pdf", got[0].Location)
	assert.Equal(t, newer, got[0].FinishedAt)
	assert.Equal(t, models.ExportFailed, got[1].State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportRepository_RecentExports_Empty(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exports")).WillReturnRows(sqlmock.NewRows(exportColumns))

	got, err := repo.RecentExports(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportRepository_RecentExports_ScanError(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM exports")).WillReturnRows(rows)

	_, err := repo.RecentExports(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestExportRepository_RecentExports_QueryError(t *testing.T) {
	repo, mock := newExportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exports")).WillReturnError(errors.New("no such table: exports"))

	_, err := repo.RecentExports(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
