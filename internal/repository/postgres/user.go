package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, organization_id, name, email, is_active FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.OrganizationID, &user.Name, &user.Email, &user.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) ListActiveByOrg(ctx context.Context, orgID string) ([]domain.User, error) {
	query := `SELECT id, organization_id, name, email, is_active FROM users
	          WHERE organization_id = $1 AND is_active = TRUE ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list active users for org %s: %w", orgID, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.OrganizationID, &user.Name, &user.Email, &user.Active); err != nil {
			return nil, fmt.Errorf("list active users for org %s: %w", orgID, err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
