package domain

import "time"

// TimeEntryStatus is the clock state of a time entry.
type TimeEntryStatus string

const (
	TimeEntryClockedIn  TimeEntryStatus = "clocked-in"
	TimeEntryClockedOut TimeEntryStatus = "clocked-out"
)

// TimeEntry is one clock-in/out cycle, owned by the time-tracking subsystem
// and read-only here. DurationSeconds may be absent on legacy entries; when it
// is, the worked duration is reconstructed from the clock timestamps.
type TimeEntry struct {
	ID              string          `firestore:"-" json:"id"`
	UserID          string          `firestore:"userId" json:"user_id"`
	OrganizationID  string          `firestore:"organizationID" json:"organization_id"`
	Date            time.Time       `firestore:"date" json:"date"`
	Status          TimeEntryStatus `firestore:"status" json:"status"`
	DurationSeconds float64         `firestore:"duration" json:"duration_seconds"`
	ClockInTime     time.Time       `firestore:"clockInTime" json:"clock_in_time"`
	ClockOutTime    time.Time       `firestore:"clockOutTime" json:"clock_out_time"`
}
