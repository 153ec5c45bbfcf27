// Package firestore implements the repository interfaces over Cloud
// Firestore, the scheduling product's system of record.
package firestore

import (
	fs "cloud.google.com/go/firestore"

	"shiftline-backend/internal/repository"
)

const (
	organizationsCollection = "organizations"
	usersCollection         = "users"
	timeEntriesCollection   = "timeEntries"
	balancesCollection      = "ptoBalances"
)

// NewStore wires all Firestore-backed repositories over one client.
func NewStore(client *fs.Client) *repository.Store {
	return &repository.Store{
		Organizations: NewOrganizationRepository(client),
		Users:         NewUserRepository(client),
		TimeEntries:   NewTimeEntryRepository(client),
		Balances:      NewBalanceRepository(client),
	}
}
