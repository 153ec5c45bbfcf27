package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shiftline-backend/internal/domain"
	"shiftline-backend/internal/repository"
)

type userRepository struct {
	client *fs.Client
}

func NewUserRepository(client *fs.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	user.ID = snap.Ref.ID
	return &user, nil
}

func (r *userRepository) ListActiveByOrg(ctx context.Context, orgID string) ([]domain.User, error) {
	query := r.client.Collection(usersCollection).
		Where("organizationID", "==", orgID).
		Where("isActive", "==", true)

	var users []domain.User
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list active users for org %s: %w", orgID, err)
		}

		var user domain.User
		if err := snap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}
	return users, nil
}
