// Package payperiod computes pay-period boundaries for the four period types
// an organization can configure. All computations are calendar-day based:
// period starts are normalized to 00:00:00 and period ends to 23:59:59.999 of
// their last day, in UTC.
package payperiod

import (
	"fmt"
	"time"

	"shiftline-backend/internal/domain"
)

// Period is a pay period value object. Identity for idempotence purposes is
// the (Start, End) calendar-day pair; Label is display/audit only.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls within [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// StartDate returns the period start as a calendar-day string.
func (p Period) StartDate() string { return p.Start.Format(domain.DateLayout) }

// EndDate returns the period end as a calendar-day string.
func (p Period) EndDate() string { return p.End.Format(domain.DateLayout) }

// EndsOn reports whether the period ends on the same calendar day as t.
func (p Period) EndsOn(t time.Time) bool {
	return sameDay(p.End, t)
}

// CalculateBoundaries returns, in order, every pay period overlapping
// [rangeStart, rangeEnd] under the given settings. Unknown period types and
// unusable config values are validation errors, never silently coerced.
func CalculateBoundaries(rangeStart, rangeEnd time.Time, settings domain.PayPeriodSettings) ([]Period, error) {
	if rangeStart.IsZero() || rangeEnd.IsZero() {
		return nil, fmt.Errorf("payperiod: range dates must be set")
	}
	from := startOfDay(rangeStart)
	to := endOfDay(rangeEnd)
	if to.Before(from) {
		return nil, fmt.Errorf("payperiod: range end %s precedes range start %s",
			rangeEnd.Format(domain.DateLayout), rangeStart.Format(domain.DateLayout))
	}

	switch settings.Type {
	case domain.PayPeriodWeekly:
		return weeklyBoundaries(from, to, settings.Config)
	case domain.PayPeriodBiWeekly:
		return biWeeklyBoundaries(from, to, settings.Config)
	case domain.PayPeriodSemiMonthly:
		return semiMonthlyBoundaries(from, to, settings.Config)
	case domain.PayPeriodMonthly:
		return monthlyBoundaries(from, to, settings.Config)
	default:
		return nil, fmt.Errorf("payperiod: unknown pay period type %q", settings.Type)
	}
}

// weeklyBoundaries anchors to the configured weekday: the first occurrence at
// or before the range start begins the sequence of 7-day periods.
func weeklyBoundaries(from, to time.Time, cfg domain.PayPeriodConfig) ([]Period, error) {
	if cfg.DayOfWeek < 0 || cfg.DayOfWeek > 6 {
		return nil, fmt.Errorf("payperiod: weekly dayOfWeek %d out of range 0-6", cfg.DayOfWeek)
	}
	offset := (int(from.Weekday()) - cfg.DayOfWeek + 7) % 7
	start := from.AddDate(0, 0, -offset)

	var periods []Period
	for !start.After(to) {
		end := endOfDay(start.AddDate(0, 0, 6))
		periods = append(periods, Period{
			Start: start,
			End:   end,
			Label: "Week of " + start.Format("Jan 2, 2006"),
		})
		start = start.AddDate(0, 0, 7)
	}
	return periods, nil
}

// biWeeklyBoundaries anchors to the configured reference date and walks
// complete 14-day cycles. Floor division keeps negative offsets rounding
// toward earlier cycles so the period overlapping the range start is always
// included.
func biWeeklyBoundaries(from, to time.Time, cfg domain.PayPeriodConfig) ([]Period, error) {
	if cfg.StartDate == "" {
		return nil, fmt.Errorf("payperiod: bi-weekly config requires a startDate")
	}
	ref, err := time.ParseInLocation(domain.DateLayout, cfg.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("payperiod: invalid bi-weekly startDate %q: %w", cfg.StartDate, err)
	}

	days := daysBetween(ref, from)
	cycles := floorDiv(days, 14)
	start := ref.AddDate(0, 0, cycles*14)

	var periods []Period
	for !start.After(to) {
		last := start.AddDate(0, 0, 13)
		end := endOfDay(last)
		if !end.Before(from) {
			periods = append(periods, Period{
				Start: start,
				End:   end,
				Label: rangeLabel(start, last),
			})
		}
		start = start.AddDate(0, 0, 14)
	}
	return periods, nil
}

// semiMonthlyBoundaries splits every month touched by the range into two
// pieces: [firstDate, secondDate-1] and [secondDate, last day of month].
func semiMonthlyBoundaries(from, to time.Time, cfg domain.PayPeriodConfig) ([]Period, error) {
	first, second := cfg.FirstDate, cfg.SecondDate
	if first == 0 {
		first = 1
	}
	if second == 0 {
		second = 15
	}
	if first < 1 || second > 31 || first >= second {
		return nil, fmt.Errorf("payperiod: invalid semi-monthly split %d/%d", first, second)
	}

	var periods []Period
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(to) {
		firstDay := clampToMonth(month, first)
		secondDay := clampToMonth(month, second)
		lastDay := lastDayOfMonth(month)

		halves := []Period{
			{
				Start: firstDay,
				End:   endOfDay(secondDay.AddDate(0, 0, -1)),
				Label: rangeLabel(firstDay, secondDay.AddDate(0, 0, -1)),
			},
			{
				Start: secondDay,
				End:   endOfDay(lastDay),
				Label: rangeLabel(secondDay, lastDay),
			},
		}
		for _, p := range halves {
			if overlaps(p, from, to) {
				periods = append(periods, p)
			}
		}
		month = month.AddDate(0, 1, 0)
	}
	return periods, nil
}

// monthlyBoundaries runs one period per month from the configured day of
// month to the day before that day in the following month. Starting the scan
// a month early catches a period that begins before the range and overlaps
// into it. Configured days past a month's end clamp to the month's last day.
func monthlyBoundaries(from, to time.Time, cfg domain.PayPeriodConfig) ([]Period, error) {
	day := cfg.DayOfMonth
	if day == 0 {
		day = 1
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("payperiod: monthly dayOfMonth %d out of range 1-31", day)
	}

	var periods []Period
	month := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	for !month.After(to) {
		start := clampToMonth(month, day)
		next := clampToMonth(month.AddDate(0, 1, 0), day)
		last := next.AddDate(0, 0, -1)

		label := rangeLabel(start, last)
		if day == 1 {
			label = start.Format("January 2006")
		}

		p := Period{Start: start, End: endOfDay(last), Label: label}
		if overlaps(p, from, to) {
			periods = append(periods, p)
		}
		month = month.AddDate(0, 1, 0)
	}
	return periods, nil
}

func overlaps(p Period, from, to time.Time) bool {
	return !p.Start.After(to) && !p.End.Before(from)
}

// rangeLabel renders "Jan 1-14, 2025", widening to month or year spans as
// needed ("Jan 27 - Feb 9, 2025", "Dec 29, 2025 - Jan 11, 2026").
func rangeLabel(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	case start.Month() != end.Month():
		return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	default:
		return fmt.Sprintf("%s %d-%d, %d", start.Format("Jan"), start.Day(), end.Day(), start.Year())
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func clampToMonth(month time.Time, day int) time.Time {
	if last := lastDayOfMonth(month); day > last.Day() {
		return last
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(month time.Time) time.Time {
	firstOfNext := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
