package repository

import (
	"context"

	"ebazaar/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetByProductAndUser(ctx context.Context, productID, userID string) (*entity.Review, error)
	ListByProductIDs(ctx context.Context, productIDs []string, depth int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
}
