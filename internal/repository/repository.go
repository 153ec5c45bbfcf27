package repository

import (
	"context"
	"errors"
	"time"

	"shiftline-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListActiveByOrg(ctx context.Context, orgID string) ([]domain.User, error)
}

type TimeEntryRepository interface {
	// ListClockedOut returns the user's clocked-out entries whose date falls
	// within [from, to]. Callers pass period boundaries already normalized to
	// day start/end.
	ListClockedOut(ctx context.Context, orgID, userID string, from, to time.Time) ([]domain.TimeEntry, error)
}

type BalanceRepository interface {
	Get(ctx context.Context, orgID, userID string) (*domain.PTOBalance, error)
	// Save overwrites the full balance document so processedPeriods and
	// bankingBalance are always written together.
	Save(ctx context.Context, balance *domain.PTOBalance) error
}

// Store bundles the repositories a job or service needs.
type Store struct {
	Organizations OrganizationRepository
	Users         UserRepository
	TimeEntries   TimeEntryRepository
	Balances      BalanceRepository
}
