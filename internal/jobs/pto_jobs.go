package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/logger"
	"shiftline-backend/internal/payperiod"
)

// RunSummary accumulates the counters one accrual run produces. It is
// informational: operators observe outcomes through logs and these counts.
type RunSummary struct {
	RunID           string  `json:"run_id"`
	Date            string  `json:"date"`
	OrgsProcessed   int     `json:"orgs_processed"`
	UsersProcessed  int     `json:"users_processed"`
	TotalHoursAdded float64 `json:"total_hours_added"`
	Errors          int     `json:"errors"`
}

// ProcessAutomaticPTO is the daily accrual driver. For every organization
// with PTO enabled it resolves the pay period containing today and, only when
// that period ends today, runs the banking accrual for each active user.
// Failures are contained per org and per user; the run always completes.
func (jr *JobRunner) ProcessAutomaticPTO() {
	jr.runWithRecovery("ProcessAutomaticPTO", func() {
		jr.RunPTOAccrual(context.Background())
	})
}

// RunPTOAccrual executes one accrual run and returns its summary. Exposed so
// the admin API can trigger a run manually; re-running the same day is safe
// because processed periods are never applied twice.
func (jr *JobRunner) RunPTOAccrual(ctx context.Context) *RunSummary {
	// The reference day is captured once so a run straddling midnight keeps
	// one consistent "today" across every boundary check.
	today := time.Now().UTC()
	summary := &RunSummary{
		RunID: uuid.NewString(),
		Date:  today.Format(domain.DateLayout),
	}

	orgs, err := jr.store.Organizations.List(ctx)
	if err != nil {
		logger.Error("Failed to list organizations for PTO run",
			"run_id", summary.RunID, "error", err)
		summary.Errors++
		return summary
	}

	for i := range orgs {
		org := &orgs[i]
		if !org.PTOSettings.Enabled || !org.PayPeriodSettings.IsActive {
			continue
		}

		processed, err := jr.processOrgPTO(ctx, org, today, summary)
		if err != nil {
			logger.Error("Failed to process PTO for org",
				"run_id", summary.RunID, "org_id", org.ID, "org_name", org.Name, "error", err)
			summary.Errors++
			continue
		}
		if processed {
			summary.OrgsProcessed++
		}
	}

	logger.Info("Completed automatic PTO run",
		"run_id", summary.RunID,
		"date", summary.Date,
		"orgs_processed", summary.OrgsProcessed,
		"users_processed", summary.UsersProcessed,
		"total_hours_added", summary.TotalHoursAdded,
		"errors", summary.Errors)
	return summary
}

// processOrgPTO handles one organization. Returns false when the org was
// skipped because no pay period ends today.
func (jr *JobRunner) processOrgPTO(ctx context.Context, org *domain.Organization, today time.Time, summary *RunSummary) (bool, error) {
	period, err := payperiod.ResolveCurrentPeriod(org.PayPeriodSettings, today)
	if err != nil {
		return false, err
	}
	if period == nil {
		logger.Debug("No pay period contains today for org", "org_id", org.ID)
		return false, nil
	}
	// Accrual triggers on the day a period closes, not on every day the
	// period contains.
	if !period.EndsOn(today) {
		logger.Debug("Pay period does not end today, skipping org",
			"org_id", org.ID, "period_end", period.EndDate())
		return false, nil
	}

	users, err := jr.store.Users.ListActiveByOrg(ctx, org.ID)
	if err != nil {
		return false, err
	}

	for i := range users {
		user := &users[i]
		hoursAdded, err := jr.services.Accrual.ProcessUserPeriod(ctx, org, user, *period)
		if err != nil {
			logger.Error("Failed to process PTO for user",
				"org_id", org.ID, "user_id", user.ID, "error", err)
			summary.Errors++
			continue
		}
		summary.UsersProcessed++
		summary.TotalHoursAdded += hoursAdded
	}

	logger.Info("Processed PTO for org",
		"org_id", org.ID, "org_name", org.Name,
		"period", period.Label, "users", len(users))
	return true, nil
}
