package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type balanceRepository struct {
	client *fs.Client
}

func NewBalanceRepository(client *fs.Client) repository.BalanceRepository {
	return &balanceRepository{client: client}
}

func (r *balanceRepository) Get(ctx context.Context, orgID, userID string) (*domain.PTOBalance, error) {
	id := domain.BalanceID(orgID, userID)
	snap, err := r.client.Collection(balancesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get balance %s: %w", id, err)
	}

	var balance domain.PTOBalance
	if err := snap.DataTo(&balance); err != nil {
		return nil, fmt.Errorf("decode balance %s: %w", id, err)
	}
	balance.ID = snap.Ref.ID
	balance.Normalize()
	return &balance, nil
}

func (r *balanceRepository) Save(ctx context.Context, balance *domain.PTOBalance) error {
	if balance.ID == "" {
		balance.ID = domain.BalanceID(balance.OrganizationID, balance.UserID)
	}
	// Full-document set, not a merge: processedPeriods and bankingBalance
	// must never diverge.
	if _, err := r.client.Collection(balancesCollection).Doc(balance.ID).Set(ctx, balance); err != nil {
		return fmt.Errorf("save balance %s: %w", balance.ID, err)
	}
	return nil
}
