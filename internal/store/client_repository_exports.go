package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/models"
)

type exportRepository struct {
	*DB
	logger *logger.Logger
}

// NewExportRepository returns an [ExportRepository] backed by the exports
// table.
func NewExportRepository(db *DB, logger *logger.Logger) ExportRepository {
	return &exportRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *exportRepository) SaveExport(ctx context.Context, record models.ExportRecord) error {
	query, args, err := buildInsertExportQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		e.logger.Err(err).
			Str("func", "exportRepository.SaveExport").
			Int64("note_id", int64(record.NoteID)).
			Str("task_id", record.TaskID).
			Msg("failed to save export record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (e *exportRepository) RecentExports(ctx context.Context, noteID models.ItemID, limit uint64) ([]models.ExportRecord, error) {
	query, args, err := buildRecentExportsQuery(noteID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		e.logger.Err(err).
			Str("func", "exportRepository.RecentExports").
			Int64("note_id", int64(noteID)).
			Msg("failed to query export history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	for rows.Next() {
		var (
			r      models.ExportRecord
			noteID int64
			state  string
		)
		if err = rows.Scan(&r.ID, &noteID, &r.TaskID, &r.Format, &state, &r.Location, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		r.NoteID = models.ItemID(noteID)
		r.State = models.ExportState(state)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
