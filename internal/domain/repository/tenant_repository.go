package repository

import (
	"context"

	"ebazaar/internal/domain/entity"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)
	GetByStripeAccountID(ctx context.Context, accountID string) (*entity.Tenant, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
}
