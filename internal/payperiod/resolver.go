package payperiod

import (
	"time"

	"shiftline-backend/internal/domain"
)

// resolverWindowDays is wide enough to contain a full period of any type
// regardless of anchor: the longest period is a month (≤31 days).
const resolverWindowDays = 35

// ResolveCurrentPeriod finds the single pay period containing target, or nil
// when the configuration is inactive or leaves a gap at target. Callers that
// need "a period ending today" must check the end date themselves; resolving
// is deliberately broader than the accrual trigger.
func ResolveCurrentPeriod(settings domain.PayPeriodSettings, target time.Time) (*Period, error) {
	if !settings.IsActive {
		return nil, nil
	}

	periods, err := CalculateBoundaries(
		target.AddDate(0, 0, -resolverWindowDays),
		target.AddDate(0, 0, resolverWindowDays),
		settings,
	)
	if err != nil {
		return nil, err
	}

	for i := range periods {
		if periods[i].Contains(target.UTC()) {
			return &periods[i], nil
		}
	}
	return nil, nil
}
