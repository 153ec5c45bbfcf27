package accrual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shiftline-backend/internal/domain"
)

func TestAggregateHours_UsesRecordedDuration(t *testing.T) {
	entries := []domain.TimeEntry{
		{Status: domain.TimeEntryClockedOut, DurationSeconds: 4 * 3600},
		{Status: domain.TimeEntryClockedOut, DurationSeconds: 3.5 * 3600},
	}
	assert.InDelta(t, 7.5, AggregateHours(entries), 1e-9)
}

func TestAggregateHours_ReconstructsFromClockTimes(t *testing.T) {
	entries := []domain.TimeEntry{
		{
			Status:       domain.TimeEntryClockedOut,
			ClockInTime:  time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
			ClockOutTime: time.Date(2025, time.January, 1, 17, 0, 0, 0, time.UTC),
		},
	}
	assert.InDelta(t, 8, AggregateHours(entries), 1e-9)
}

func TestAggregateHours_ClockOutBeforeClockInContributesZero(t *testing.T) {
	entries := []domain.TimeEntry{
		{
			Status:       domain.TimeEntryClockedOut,
			ClockInTime:  time.Date(2025, time.January, 1, 17, 0, 0, 0, time.UTC),
			ClockOutTime: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	assert.Zero(t, AggregateHours(entries))
}

func TestAggregateHours_MalformedEntriesSkipped(t *testing.T) {
	entries := []domain.TimeEntry{
		{Status: domain.TimeEntryClockedOut}, // no duration, no timestamps
		{
			Status:      domain.TimeEntryClockedOut,
			ClockInTime: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
			// missing clock-out
		},
		{Status: domain.TimeEntryClockedOut, DurationSeconds: -120},
		{Status: domain.TimeEntryClockedOut, DurationSeconds: 2 * 3600},
	}
	assert.InDelta(t, 2, AggregateHours(entries), 1e-9)
}

func TestAggregateHours_Empty(t *testing.T) {
	assert.Zero(t, AggregateHours(nil))
}
