package repository

import (
	"context"

	"ebazaar/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string, depth int) (*entity.Product, error)
	List(ctx context.Context, query *Query) ([]*entity.Product, int64, error)
	ListByIDs(ctx context.Context, ids []string, depth int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}
