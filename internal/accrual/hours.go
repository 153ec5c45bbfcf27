// Package accrual implements the banking PTO accrual algorithm and the
// worked-hours aggregation feeding it.
package accrual

import "shiftline-backend/internal/domain"

// AggregateHours sums worked hours over a pre-filtered slice of clocked-out
// time entries. The recorded duration wins when present; otherwise the
// duration is reconstructed from the clock timestamps, but only when both
// parse to a valid ordered pair. Malformed entries contribute zero — a bad
// entry never fails the aggregation.
func AggregateHours(entries []domain.TimeEntry) float64 {
	var seconds float64
	for _, e := range entries {
		if e.DurationSeconds > 0 {
			seconds += e.DurationSeconds
			continue
		}
		if !e.ClockInTime.IsZero() && !e.ClockOutTime.IsZero() && e.ClockOutTime.After(e.ClockInTime) {
			seconds += e.ClockOutTime.Sub(e.ClockInTime).Seconds()
		}
	}
	if seconds <= 0 {
		return 0
	}
	return seconds / 3600
}
