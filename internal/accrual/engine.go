package accrual

import (
	"math"
	"time"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/payperiod"
)

// Result reports what one accrual application did to a balance.
type Result struct {
	// HoursAdded is the net PTO credited, after the cap. Never negative.
	HoursAdded float64
	// PTOEarned is the uncapped conversion of completed accrual blocks.
	PTOEarned float64
	// AlreadyProcessed is true when the period was applied before; the
	// balance is untouched.
	AlreadyProcessed bool
	// Recorded is true when a processed-period marker was appended and the
	// balance needs persisting.
	Recorded bool
}

// Accrue applies one pay period's worked hours to a balance, in place.
//
// Banked hours carry across periods: hoursWorked joins the banking balance,
// every completed accrualPeriod block converts to accrualRate hours of PTO,
// the remainder stays banked, and the total is capped at maxAccrual. A period
// already present in the processed list is a no-op — checked before any
// arithmetic, so a re-run can never double-bank hours. Periods with no hours
// and no credit are not recorded at all; periods that only grow the bank are
// still recorded so the hours aren't re-banked on the next run.
func Accrue(balance *domain.PTOBalance, hoursWorked float64, policy domain.PTOSettings, period payperiod.Period, now time.Time) Result {
	if balance.HasProcessed(period.StartDate(), period.EndDate()) {
		return Result{AlreadyProcessed: true}
	}

	balance.Normalize()

	newBanking := balance.BankingBalance + hoursWorked
	ptoEarned := 0.0
	remaining := newBanking
	if policy.AccrualPeriod > 0 {
		ptoEarned = math.Floor(newBanking/policy.AccrualPeriod) * policy.AccrualRate
		remaining = math.Mod(newBanking, policy.AccrualPeriod)
	}

	newTotal := balance.TotalBalance + ptoEarned
	if policy.MaxAccrual > 0 && newTotal > policy.MaxAccrual {
		newTotal = policy.MaxAccrual
	}
	hoursAdded := newTotal - balance.TotalBalance
	if hoursAdded < 0 {
		// Legacy balances can sit above the cap; clamping credits nothing
		// but never reports a negative grant.
		hoursAdded = 0
	}

	if hoursAdded <= 0 && hoursWorked <= 0 {
		return Result{}
	}

	balance.TotalBalance = newTotal
	balance.BankingBalance = remaining
	balance.LastUpdated = now
	balance.ProcessedPeriods = append(balance.ProcessedPeriods, domain.ProcessedPeriod{
		StartDate:      period.StartDate(),
		EndDate:        period.EndDate(),
		Label:          period.Label,
		HoursWorked:    hoursWorked,
		PTOEarned:      hoursAdded,
		BankingBalance: remaining,
		ProcessedAt:    now,
	})

	return Result{
		HoursAdded: hoursAdded,
		PTOEarned:  ptoEarned,
		Recorded:   true,
	}
}
