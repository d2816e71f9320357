package usecase

import (
	"context"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/utils"
)

type LibraryUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	reviewUC    *ReviewUseCase
}

func NewLibraryUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	reviewUC *ReviewUseCase,
) *LibraryUseCase {
	return &LibraryUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		reviewUC:    reviewUC,
	}
}

// GetMany pages through the caller's purchased products.
func (uc *LibraryUseCase) GetMany(ctx context.Context, userID string, page, limit int) (*utils.Page, error) {
	offset := (page - 1) * limit
	orders, total, err := uc.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		productIDs = append(productIDs, order.ProductID)
	}

	if len(productIDs) == 0 {
		empty := utils.EmptyPage(page, limit)
		return &empty, nil
	}

	products, err := uc.productRepo.ListByIDs(ctx, productIDs, 2)
	if err != nil {
		return nil, err
	}

	summaries, err := uc.reviewUC.Summarize(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	docs := make([]ProductListItem, 0, len(products))
	for _, product := range products {
		product.Content = ""
		summary := summaries[product.ID]
		docs = append(docs, ProductListItem{
			Product:      product,
			ReviewCount:  summary.Count,
			ReviewRating: summary.Rating,
		})
	}

	envelope := utils.NewPage(docs, total, page, limit)
	return &envelope, nil
}

// GetOne returns a purchased product with its delivered content included.
// Ownership is checked first so content never leaks to non-buyers; a
// product the caller never bought is indistinguishable from one that does
// not exist.
func (uc *LibraryUseCase) GetOne(ctx context.Context, userID, productID string) (*entity.Product, error) {
	if _, err := uc.orderRepo.GetByUserAndProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, productID, 2)
}
