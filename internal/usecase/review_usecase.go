package usecase

import (
	"context"
	"math"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ReviewSummary is derived on every read, never persisted.
type ReviewSummary struct {
	Count        int         `json:"reviewCount"`
	Rating       float64     `json:"reviewRating"`
	Distribution map[int]int `json:"ratingDistribution"`
}

// Summarize fetches all reviews for the given products in one batched
// query and aggregates them per product. Every requested id is present in
// the result; unreviewed products get zero values. A fetch failure fails
// the whole call.
func (uc *ReviewUseCase) Summarize(ctx context.Context, productIDs []string) (map[string]ReviewSummary, error) {
	if len(productIDs) == 0 {
		return map[string]ReviewSummary{}, nil
	}

	reviews, err := uc.reviewRepo.ListByProductIDs(ctx, productIDs, 0)
	if err != nil {
		return nil, err
	}

	return summarizeReviews(productIDs, reviews), nil
}

func summarizeReviews(productIDs []string, reviews []*entity.Review) map[string]ReviewSummary {
	byProduct := make(map[string][]*entity.Review)
	for _, review := range reviews {
		// The product field may arrive as a bare id or a resolved
		// document; group by the normalized key either way.
		key := review.Product.Key()
		byProduct[key] = append(byProduct[key], review)
	}

	summaries := make(map[string]ReviewSummary, len(productIDs))
	for _, id := range productIDs {
		group := byProduct[id]

		summary := ReviewSummary{
			Count:        len(group),
			Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		}

		if len(group) == 0 {
			summaries[id] = summary
			continue
		}

		total := 0
		var counts [6]int
		for _, review := range group {
			total += review.Rating
			if review.Rating >= 1 && review.Rating <= 5 {
				counts[review.Rating]++
			}
		}

		mean := float64(total) / float64(len(group))
		summary.Rating = math.Round(mean*100) / 100

		// Buckets round independently, so the percentages may not sum
		// to exactly 100.
		for rating := 1; rating <= 5; rating++ {
			summary.Distribution[rating] = int(math.Round(float64(counts[rating]) / float64(len(group)) * 100))
		}

		summaries[id] = summary
	}

	return summaries
}

// GetForProduct returns the caller's own review of a product, or nil when
// they have not reviewed it yet.
func (uc *ReviewUseCase) GetForProduct(ctx context.Context, userID, productID string) (*entity.Review, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID, 0); err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.GetByProductAndUser(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}

	return review, nil
}

type CreateReviewInput struct {
	ProductID   string
	Rating      int
	Description string
}

func (uc *ReviewUseCase) Create(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if input.Description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID, 0); err != nil {
		return nil, err
	}

	// One review per (product, user), enforced here rather than by a
	// store constraint.
	existing, err := uc.reviewRepo.GetByProductAndUser(ctx, input.ProductID, userID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("You have already reviewed this product")
	}

	review := &entity.Review{
		Product:     entity.ProductRef{ID: input.ProductID},
		UserID:      userID,
		Rating:      input.Rating,
		Description: input.Description,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

type UpdateReviewInput struct {
	ReviewID    string
	Rating      int
	Description string
}

func (uc *ReviewUseCase) Update(ctx context.Context, userID string, input UpdateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if input.Description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}

	review, err := uc.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, errors.Forbidden("You are not allowed to update this review", nil)
	}

	review.Rating = input.Rating
	review.Description = input.Description

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
