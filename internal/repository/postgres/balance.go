package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type balanceRepository struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) Get(ctx context.Context, orgID, userID string) (*domain.PTOBalance, error) {
	id := domain.BalanceID(orgID, userID)
	query := `SELECT id, organization_id, user_id, total_balance, banking_balance,
	                 used_this_year, pending_balance, processed_periods, last_updated
	          FROM pto_balances WHERE id = $1`

	var balance domain.PTOBalance
	var periodsJSON []byte
	var lastUpdated sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&balance.ID,
		&balance.OrganizationID,
		&balance.UserID,
		&balance.TotalBalance,
		&balance.BankingBalance,
		&balance.UsedThisYear,
		&balance.PendingBalance,
		&periodsJSON,
		&lastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get balance %s: %w", id, err)
	}

	if len(periodsJSON) > 0 {
		if err := json.Unmarshal(periodsJSON, &balance.ProcessedPeriods); err != nil {
			return nil, fmt.Errorf("decode processed periods for %s: %w", id, err)
		}
	}
	if lastUpdated.Valid {
		balance.LastUpdated = lastUpdated.Time
	}
	balance.Normalize()
	return &balance, nil
}

func (r *balanceRepository) Save(ctx context.Context, balance *domain.PTOBalance) error {
	if balance.ID == "" {
		balance.ID = domain.BalanceID(balance.OrganizationID, balance.UserID)
	}
	periodsJSON, err := json.Marshal(balance.ProcessedPeriods)
	if err != nil {
		return fmt.Errorf("encode processed periods for %s: %w", balance.ID, err)
	}

	query := `INSERT INTO pto_balances
	            (id, organization_id, user_id, total_balance, banking_balance,
	             used_this_year, pending_balance, processed_periods, last_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (id) DO UPDATE SET
	            total_balance = EXCLUDED.total_balance,
	            banking_balance = EXCLUDED.banking_balance,
	            used_this_year = EXCLUDED.used_this_year,
	            processed_periods = EXCLUDED.processed_periods,
	            last_updated = EXCLUDED.last_updated`
	_, err = r.db.ExecContext(ctx, query,
		balance.ID,
		balance.OrganizationID,
		balance.UserID,
		balance.TotalBalance,
		balance.BankingBalance,
		balance.UsedThisYear,
		balance.PendingBalance,
		periodsJSON,
		balance.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("save balance %s: %w", balance.ID, err)
	}
	return nil
}
