package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shiftline-backend/internal/accrual"
	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/logger"
	"shiftline-backend/internal/payperiod"
	"shiftline-backend/internal/repository"
)

type accrualService struct {
	timeEntryRepo repository.TimeEntryRepository
	balanceRepo   repository.BalanceRepository
	notifier      Notifier
	now           nowFunc
}

func NewAccrualService(timeEntryRepo repository.TimeEntryRepository, balanceRepo repository.BalanceRepository, notifier Notifier) AccrualService {
	return &accrualService{
		timeEntryRepo: timeEntryRepo,
		balanceRepo:   balanceRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

func (s *accrualService) ProcessUserPeriod(ctx context.Context, org *domain.Organization, user *domain.User, period payperiod.Period) (float64, error) {
	balance, err := s.balanceRepo.Get(ctx, org.ID, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		balance = domain.NewPTOBalance(org.ID, user.ID)
	} else if err != nil {
		return 0, fmt.Errorf("load balance for user %s: %w", user.ID, err)
	}

	entries, err := s.timeEntryRepo.ListClockedOut(ctx, org.ID, user.ID, period.Start, period.End)
	if err != nil {
		return 0, fmt.Errorf("load time entries for user %s: %w", user.ID, err)
	}
	hoursWorked := accrual.AggregateHours(entries)

	result := accrual.Accrue(balance, hoursWorked, org.PTOSettings, period, s.now())
	if result.AlreadyProcessed {
		logger.Debug("Pay period already processed, skipping",
			"org_id", org.ID, "user_id", user.ID,
			"period_start", period.StartDate(), "period_end", period.EndDate())
		return 0, nil
	}
	if !result.Recorded {
		logger.Debug("Empty pay period, nothing to record",
			"org_id", org.ID, "user_id", user.ID,
			"period_start", period.StartDate(), "period_end", period.EndDate())
		return 0, nil
	}

	if err := s.balanceRepo.Save(ctx, balance); err != nil {
		return 0, fmt.Errorf("save balance for user %s: %w", user.ID, err)
	}

	logger.Info("Processed PTO accrual for user",
		"org_id", org.ID, "user_id", user.ID,
		"period", period.Label,
		"hours_worked", hoursWorked,
		"hours_added", result.HoursAdded,
		"banking_balance", balance.BankingBalance)

	if result.HoursAdded > 0 && s.notifier != nil {
		if err := s.notifier.PTOAccrued(ctx, org, user, result.HoursAdded, period); err != nil {
			logger.Warn("Failed to send PTO accrual notification",
				"org_id", org.ID, "user_id", user.ID, "error", err)
		}
	}

	return result.HoursAdded, nil
}

func (s *accrualService) GetBalance(ctx context.Context, orgID, userID string) (*domain.PTOBalance, error) {
	return s.balanceRepo.Get(ctx, orgID, userID)
}
