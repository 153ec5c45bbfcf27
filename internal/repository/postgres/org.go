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

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

const orgColumns = `id, name, pto_enabled, accrual_rate, accrual_period_hours, max_accrual,
	       pay_period_active, pay_period_type, pay_period_config`

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`
	org, err := scanOrganization(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", id, err)
	}
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("list organizations: %w", err)
		}
		orgs = append(orgs, *org)
	}
	return orgs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrganization(row rowScanner) (*domain.Organization, error) {
	var org domain.Organization
	var configJSON []byte
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.PTOSettings.Enabled,
		&org.PTOSettings.AccrualRate,
		&org.PTOSettings.AccrualPeriod,
		&org.PTOSettings.MaxAccrual,
		&org.PayPeriodSettings.IsActive,
		&org.PayPeriodSettings.Type,
		&configJSON,
	)
	if err != nil {
		return nil, err
	}
	if len(configJSON) > 0 {
		if err := json.Unmarshal(configJSON, &org.PayPeriodSettings.Config); err != nil {
			return nil, fmt.Errorf("decode pay period config: %w", err)
		}
	}
	return &org, nil
}
