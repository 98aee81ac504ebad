// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/keepno/models"
)

const (
	stateTable  = "client_state"
	exportTable = "exports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var exportColumns = []string{
	"id",
	"note_id",
	"task_id",
	"format",
	"state",
	"location",
	"finished_at",
}

func buildGetStateQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertStateQuery(key, value string, at time.Time) (string, []any, error) {
	return psql.
		Insert(stateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return psql.
		Delete(stateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildInsertExportQuery(r models.ExportRecord) (string, []any, error) {
	return psql.
		Insert(exportTable).
		Columns(exportColumns[1:]...).
		Values(int64(r.NoteID), r.TaskID, r.Format, string(r.State), r.Location, r.FinishedAt).
		ToSql()
}

func buildRecentExportsQuery(noteID models.ItemID, limit uint64) (string, []any, error) {
	q := psql.
		Select(exportColumns...).
		From(exportTable).
		OrderBy("finished_at DESC", "id DESC")
	if noteID != 0 {
		q = q.Where(sq.Eq{"note_id": int64(noteID)})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}
