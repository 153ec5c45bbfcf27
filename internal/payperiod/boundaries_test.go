package payperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftline-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weeklySettings(dayOfWeek int) domain.PayPeriodSettings {
	return domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodWeekly,
		Config:   domain.PayPeriodConfig{DayOfWeek: dayOfWeek},
	}
}

func TestCalculateBoundaries_WeeklyMondayAnchor(t *testing.T) {
	periods, err := CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 20), weeklySettings(1))
	require.NoError(t, err)

	// Jan 1, 2025 is a Wednesday; the anchor Monday is Dec 30, 2024.
	require.Len(t, periods, 4)
	assert.Equal(t, "2024-12-30", periods[0].StartDate())
	assert.Equal(t, "2025-01-05", periods[0].EndDate())

	assert.Equal(t, "2025-01-06", periods[1].StartDate())
	assert.Equal(t, "2025-01-12", periods[1].EndDate())
	assert.Equal(t, "Week of Jan 6, 2025", periods[1].Label)

	assert.Equal(t, "2025-01-13", periods[2].StartDate())
	assert.Equal(t, "2025-01-19", periods[2].EndDate())
	assert.Equal(t, "Week of Jan 13, 2025", periods[2].Label)

	assert.Equal(t, "2025-01-20", periods[3].StartDate())
}

func TestCalculateBoundaries_WeeklyPeriodEndTime(t *testing.T) {
	periods, err := CalculateBoundaries(date(2025, time.January, 6), date(2025, time.January, 6), weeklySettings(1))
	require.NoError(t, err)
	require.Len(t, periods, 1)

	end := periods[0].End
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestCalculateBoundaries_WeeklyInvalidDayOfWeek(t *testing.T) {
	_, err := CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 20), weeklySettings(7))
	assert.Error(t, err)
}

func TestCalculateBoundaries_BiWeekly(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodBiWeekly,
		Config:   domain.PayPeriodConfig{StartDate: "2025-01-06"},
	}

	periods, err := CalculateBoundaries(date(2025, time.January, 20), date(2025, time.February, 10), settings)
	require.NoError(t, err)

	// Jan 20 is exactly one full cycle past the reference date.
	require.Len(t, periods, 2)
	assert.Equal(t, "2025-01-20", periods[0].StartDate())
	assert.Equal(t, "2025-02-02", periods[0].EndDate())
	assert.Equal(t, "Jan 20 - Feb 2, 2025", periods[0].Label)
	assert.Equal(t, "2025-02-03", periods[1].StartDate())
	assert.Equal(t, "2025-02-16", periods[1].EndDate())
}

func TestCalculateBoundaries_BiWeeklyBeforeReference(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodBiWeekly,
		Config:   domain.PayPeriodConfig{StartDate: "2025-01-06"},
	}

	// A range entirely before the reference date still resolves: floor
	// division rounds the cycle offset toward earlier periods.
	periods, err := CalculateBoundaries(date(2024, time.December, 25), date(2025, time.January, 5), settings)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-12-23", periods[0].StartDate())
	assert.Equal(t, "2025-01-05", periods[0].EndDate())
	assert.Equal(t, "Dec 23, 2024 - Jan 5, 2025", periods[0].Label)
}

func TestCalculateBoundaries_BiWeeklyMissingStartDate(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodBiWeekly,
	}
	_, err := CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 20), settings)
	assert.Error(t, err)

	settings.Config.StartDate = "not-a-date"
	_, err = CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 20), settings)
	assert.Error(t, err)
}

func TestCalculateBoundaries_SemiMonthlyDefaults(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodSemiMonthly,
	}

	periods, err := CalculateBoundaries(date(2025, time.January, 10), date(2025, time.February, 20), settings)
	require.NoError(t, err)

	require.Len(t, periods, 4)
	assert.Equal(t, "2025-01-01", periods[0].StartDate())
	assert.Equal(t, "2025-01-14", periods[0].EndDate())
	assert.Equal(t, "Jan 1-14, 2025", periods[0].Label)
	assert.Equal(t, "2025-01-15", periods[1].StartDate())
	assert.Equal(t, "2025-01-31", periods[1].EndDate())
	assert.Equal(t, "2025-02-01", periods[2].StartDate())
	assert.Equal(t, "2025-02-14", periods[2].EndDate())
	assert.Equal(t, "2025-02-15", periods[3].StartDate())
	assert.Equal(t, "2025-02-28", periods[3].EndDate())
}

func TestCalculateBoundaries_SemiMonthlyInvalidSplit(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodSemiMonthly,
		Config:   domain.PayPeriodConfig{FirstDate: 20, SecondDate: 10},
	}
	_, err := CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 31), settings)
	assert.Error(t, err)
}

func TestCalculateBoundaries_MonthlyFirstOfMonth(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodMonthly,
		Config:   domain.PayPeriodConfig{DayOfMonth: 1},
	}

	periods, err := CalculateBoundaries(date(2025, time.January, 5), date(2025, time.March, 10), settings)
	require.NoError(t, err)

	require.Len(t, periods, 3)
	assert.Equal(t, "2025-01-01", periods[0].StartDate())
	assert.Equal(t, "2025-01-31", periods[0].EndDate())
	assert.Equal(t, "January 2025", periods[0].Label)
	assert.Equal(t, "February 2025", periods[1].Label)
	assert.Equal(t, "2025-02-28", periods[1].EndDate())
	assert.Equal(t, "March 2025", periods[2].Label)
}

func TestCalculateBoundaries_MonthlyMidMonthAnchor(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodMonthly,
		Config:   domain.PayPeriodConfig{DayOfMonth: 15},
	}

	// The period containing Jan 5 starts in December.
	periods, err := CalculateBoundaries(date(2025, time.January, 5), date(2025, time.January, 20), settings)
	require.NoError(t, err)

	require.Len(t, periods, 2)
	assert.Equal(t, "2024-12-15", periods[0].StartDate())
	assert.Equal(t, "2025-01-14", periods[0].EndDate())
	assert.Equal(t, "2025-01-15", periods[1].StartDate())
	assert.Equal(t, "2025-02-14", periods[1].EndDate())
}

func TestCalculateBoundaries_MonthlyClampsToShortMonths(t *testing.T) {
	settings := domain.PayPeriodSettings{
		IsActive: true,
		Type:     domain.PayPeriodMonthly,
		Config:   domain.PayPeriodConfig{DayOfMonth: 31},
	}

	periods, err := CalculateBoundaries(date(2025, time.February, 1), date(2025, time.February, 28), settings)
	require.NoError(t, err)

	require.Len(t, periods, 2)
	assert.Equal(t, "2025-01-31", periods[0].StartDate())
	assert.Equal(t, "2025-02-27", periods[0].EndDate())
	assert.Equal(t, "2025-02-28", periods[1].StartDate())
	assert.Equal(t, "2025-03-30", periods[1].EndDate())
}

func TestCalculateBoundaries_UnknownType(t *testing.T) {
	settings := domain.PayPeriodSettings{IsActive: true, Type: "fortnightly"}
	_, err := CalculateBoundaries(date(2025, time.January, 1), date(2025, time.January, 20), settings)
	assert.Error(t, err)
}

func TestCalculateBoundaries_InvertedRange(t *testing.T) {
	_, err := CalculateBoundaries(date(2025, time.February, 1), date(2025, time.January, 1), weeklySettings(1))
	assert.Error(t, err)
}

// Every calendar day in the range must land in exactly one period: no gaps,
// no overlaps, for every period type that partitions the calendar.
func TestCalculateBoundaries_PartitionProperty(t *testing.T) {
	cases := []struct {
		name     string
		settings domain.PayPeriodSettings
	}{
		{"weekly", weeklySettings(3)},
		{"bi-weekly", domain.PayPeriodSettings{
			IsActive: true,
			Type:     domain.PayPeriodBiWeekly,
			Config:   domain.PayPeriodConfig{StartDate: "2024-11-04"},
		}},
		{"semi-monthly", domain.PayPeriodSettings{
			IsActive: true,
			Type:     domain.PayPeriodSemiMonthly,
		}},
		{"monthly", domain.PayPeriodSettings{
			IsActive: true,
			Type:     domain.PayPeriodMonthly,
			Config:   domain.PayPeriodConfig{DayOfMonth: 31},
		}},
	}

	rangeStart := date(2024, time.December, 1)
	rangeEnd := date(2025, time.March, 31)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			periods, err := CalculateBoundaries(rangeStart, rangeEnd, tc.settings)
			require.NoError(t, err)
			require.NotEmpty(t, periods)

			for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
				containing := 0
				for _, p := range periods {
					if p.Contains(day) {
						containing++
					}
				}
				assert.Equalf(t, 1, containing, "day %s contained in %d periods", day.Format(domain.DateLayout), containing)
			}
		})
	}
}
