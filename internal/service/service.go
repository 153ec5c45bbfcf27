package service

import (
	"context"
	"time"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/payperiod"
)

type AccrualService interface {
	// ProcessUserPeriod runs the full read-aggregate-accrue-write cycle for
	// one user and one pay period. Returns the PTO hours credited (zero for
	// already-processed or empty periods).
	ProcessUserPeriod(ctx context.Context, org *domain.Organization, user *domain.User, period payperiod.Period) (float64, error)
	GetBalance(ctx context.Context, orgID, userID string) (*domain.PTOBalance, error)
}

// Notifier is the opaque notification side effect. Delivery failures are the
// notifier's problem; accrual never fails because a notice didn't go out.
type Notifier interface {
	PTOAccrued(ctx context.Context, org *domain.Organization, user *domain.User, hoursAdded float64, period payperiod.Period) error
}

// nowFunc lets tests pin the clock.
type nowFunc func() time.Time
