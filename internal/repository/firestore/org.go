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

type organizationRepository struct {
	client *fs.Client
}

func NewOrganizationRepository(client *fs.Client) repository.OrganizationRepository {
	return &organizationRepository{client: client}
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	snap, err := r.client.Collection(organizationsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get organization %s: %w", id, err)
	}

	var org domain.Organization
	if err := snap.DataTo(&org); err != nil {
		return nil, fmt.Errorf("decode organization %s: %w", id, err)
	}
	org.ID = snap.Ref.ID
	return &org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	iter := r.client.Collection(organizationsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list organizations: %w", err)
		}

		var org domain.Organization
		if err := snap.DataTo(&org); err != nil {
			return nil, fmt.Errorf("decode organization %s: %w", snap.Ref.ID, err)
		}
		org.ID = snap.Ref.ID
		orgs = append(orgs, org)
	}
	return orgs, nil
}
