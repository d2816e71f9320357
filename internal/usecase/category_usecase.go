package usecase

import (
	"context"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// GetMany returns all root categories with their direct children attached.
func (uc *CategoryUseCase) GetMany(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListRoots(ctx, 1)
}

func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return uc.categoryRepo.GetBySlug(ctx, slug)
}

type CreateCategoryInput struct {
	Name     string
	Slug     string
	ParentID string
}

func (uc *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, errors.BadRequest("Category name and slug are required", nil)
	}

	existing, err := uc.categoryRepo.GetBySlug(ctx, input.Slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("A category with this slug already exists")
	}

	category := &entity.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		ParentID: input.ParentID,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
