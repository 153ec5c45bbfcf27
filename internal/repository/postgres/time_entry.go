package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type timeEntryRepository struct {
	db *sql.DB
}

func NewTimeEntryRepository(db *sql.DB) repository.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) ListClockedOut(ctx context.Context, orgID, userID string, from, to time.Time) ([]domain.TimeEntry, error) {
	query := `SELECT id, user_id, organization_id, entry_date, status, duration_seconds, clock_in, clock_out
	          FROM time_entries
	          WHERE organization_id = $1 AND user_id = $2 AND status = $3
	            AND entry_date >= $4 AND entry_date <= $5
	          ORDER BY entry_date`
	rows, err := r.db.QueryContext(ctx, query, orgID, userID, string(domain.TimeEntryClockedOut), from, to)
	if err != nil {
		return nil, fmt.Errorf("list time entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var entry domain.TimeEntry
		var duration sql.NullFloat64
		var clockIn, clockOut sql.NullTime
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.OrganizationID,
			&entry.Date,
			&entry.Status,
			&duration,
			&clockIn,
			&clockOut,
		)
		if err != nil {
			return nil, fmt.Errorf("list time entries for user %s: %w", userID, err)
		}
		if duration.Valid {
			entry.DurationSeconds = duration.Float64
		}
		if clockIn.Valid {
			entry.ClockInTime = clockIn.Time
		}
		if clockOut.Valid {
			entry.ClockOutTime = clockOut.Time
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
