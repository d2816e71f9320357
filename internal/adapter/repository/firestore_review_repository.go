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

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection("reviews").NewDoc()
		review.ID = doc.ID
	}

	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Upstream("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Upstream("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) GetByProductAndUser(ctx context.Context, productID, userID string) (*entity.Review, error) {
	iter := r.client.Collection("reviews").Query.
		Where("product.id", "==", productID).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Review", nil)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to query review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}

	return &review, nil
}

func (r *firestoreReviewRepository) ListByProductIDs(ctx context.Context, productIDs []string, depth int) ([]*entity.Review, error) {
	var reviews []*entity.Review

	for _, chunk := range chunkStrings(productIDs, maxDisjunction) {
		iter := r.client.Collection("reviews").Query.
			Where("product.id", "in", chunk).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Upstream("Failed to iterate reviews", err)
			}
			var review entity.Review
			if err := doc.DataTo(&review); err != nil {
				return nil, errors.Internal("Failed to parse review data", err)
			}
			reviews = append(reviews, &review)
		}
	}

	if depth >= 1 {
		if err := r.populate(ctx, reviews); err != nil {
			return nil, err
		}
	}

	return reviews, nil
}

func (r *firestoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	review.UpdatedAt = time.Now()

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Upstream("Failed to update review", err)
	}

	return nil
}

// populate resolves each distinct product reference once.
func (r *firestoreReviewRepository) populate(ctx context.Context, reviews []*entity.Review) error {
	products := make(map[string]*entity.Product)

	for _, review := range reviews {
		id := review.Product.Key()
		if id == "" {
			continue
		}

		product, ok := products[id]
		if !ok {
			doc, err := r.client.Collection("products").Doc(id).Get(ctx)
			if err != nil {
				return errors.Upstream("Failed to resolve review product", err)
			}
			product = &entity.Product{}
			if err := doc.DataTo(product); err != nil {
				return errors.Internal("Failed to parse product data", err)
			}
			products[id] = product
		}
		review.Product.Resolved = product
	}

	return nil
}
