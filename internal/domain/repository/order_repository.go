package repository

import (
	"context"

	"ebazaar/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Order, error)
	// GetBySessionAndProduct backs the idempotency check of the webhook
	// reconciler: one order per (checkout session, product).
	GetBySessionAndProduct(ctx context.Context, sessionID, productID string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
}
