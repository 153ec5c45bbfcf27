package firestore

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type timeEntryRepository struct {
	client *fs.Client
}

func NewTimeEntryRepository(client *fs.Client) repository.TimeEntryRepository {
	return &timeEntryRepository{client: client}
}

func (r *timeEntryRepository) ListClockedOut(ctx context.Context, orgID, userID string, from, to time.Time) ([]domain.TimeEntry, error) {
	query := r.client.Collection(timeEntriesCollection).
		Where("organizationID", "==", orgID).
		Where("userId", "==", userID).
		Where("status", "==", string(domain.TimeEntryClockedOut)).
		Where("date", ">=", from).
		Where("date", "<=", to)

	var entries []domain.TimeEntry
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list time entries for user %s: %w", userID, err)
		}

		var entry domain.TimeEntry
		if err := snap.DataTo(&entry); err != nil {
			// A single undecodable entry should not sink the whole period;
			// the aggregator treats it as zero hours anyway.
			continue
		}
		entry.ID = snap.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}
