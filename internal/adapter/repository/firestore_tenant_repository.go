package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"
)

type firestoreTenantRepository struct {
	client *firestore.Client
}

func NewFirestoreTenantRepository(client *firestore.Client) repository.TenantRepository {
	return &firestoreTenantRepository{
		client: client,
	}
}

func (r *firestoreTenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	if tenant.ID == "" {
		doc := r.client.Collection("tenants").NewDoc()
		tenant.ID = doc.ID
	}

	now := time.Now()
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = now
	}
	tenant.UpdatedAt = now

	_, err := r.client.Collection("tenants").Doc(tenant.ID).Set(ctx, tenant)
	if err != nil {
		return errors.Upstream("Failed to create tenant", err)
	}

	return nil
}

func (r *firestoreTenantRepository) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	doc, err := r.client.Collection("tenants").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tenant", err)
		}
		return nil, errors.Upstream("Failed to get tenant", err)
	}

	var tenant entity.Tenant
	if err := doc.DataTo(&tenant); err != nil {
		return nil, errors.Internal("Failed to parse tenant data", err)
	}

	return &tenant, nil
}

func (r *firestoreTenantRepository) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	return r.getByField(ctx, "slug", slug)
}

func (r *firestoreTenantRepository) GetByStripeAccountID(ctx context.Context, accountID string) (*entity.Tenant, error) {
	return r.getByField(ctx, "stripeAccountId", accountID)
}

func (r *firestoreTenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenant.UpdatedAt = time.Now()

	_, err := r.client.Collection("tenants").Doc(tenant.ID).Set(ctx, tenant)
	if err != nil {
		return errors.Upstream("Failed to update tenant", err)
	}

	return nil
}

func (r *firestoreTenantRepository) getByField(ctx context.Context, field, value string) (*entity.Tenant, error) {
	iter := r.client.Collection("tenants").Query.
		Where(field, "==", value).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Tenant", nil)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to query tenant", err)
	}

	var tenant entity.Tenant
	if err := doc.DataTo(&tenant); err != nil {
		return nil, errors.Internal("Failed to parse tenant data", err)
	}

	return &tenant, nil
}
