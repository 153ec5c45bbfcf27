// Package postgres implements the repository interfaces over PostgreSQL for
// self-hosted deployments that mirror the Firestore collections into tables.
package postgres

import (
	"database/sql"

	"shiftline-backend/internal/repository"
)

// NewStore wires all Postgres-backed repositories over one connection pool.
func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		Organizations: NewOrganizationRepository(db),
		Users:         NewUserRepository(db),
		TimeEntries:   NewTimeEntryRepository(db),
		Balances:      NewBalanceRepository(db),
	}
}
