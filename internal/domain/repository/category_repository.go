package repository

import (
	"context"

	"ebazaar/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// ListRoots returns parentless categories sorted by name, each with
	// its direct children populated when depth >= 1.
	ListRoots(ctx context.Context, depth int) ([]*entity.Category, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error)
}
