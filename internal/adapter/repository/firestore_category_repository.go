package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		doc := r.client.Collection("categories").NewDoc()
		category.ID = doc.ID
	}

	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = now

	_, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Upstream("Failed to create category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	iter := r.client.Collection("categories").Query.
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Category", nil)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to query category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}

func (r *firestoreCategoryRepository) ListRoots(ctx context.Context, depth int) ([]*entity.Category, error) {
	iter := r.client.Collection("categories").Query.
		Where("parentId", "==", "").
		OrderBy("name", firestore.Asc).
		Documents(ctx)

	var categories []*entity.Category

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Upstream("Failed to iterate categories", err)
		}
		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		categories = append(categories, &category)
	}

	if depth >= 1 {
		for _, category := range categories {
			children, err := r.ListChildren(ctx, category.ID)
			if err != nil {
				return nil, err
			}
			category.Subcategories = children
		}
	}

	return categories, nil
}

func (r *firestoreCategoryRepository) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	iter := r.client.Collection("categories").Query.
		Where("parentId", "==", parentID).
		Documents(ctx)

	var children []*entity.Category

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Upstream("Failed to iterate subcategories", err)
		}
		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		children = append(children, &category)
	}

	return children, nil
}
