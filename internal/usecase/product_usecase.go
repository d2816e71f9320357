package usecase

import (
	"context"
	"strconv"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"
	"ebazaar/pkg/utils"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tenantRepo   repository.TenantRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	reviewUC     *ReviewUseCase
	defaultLimit int
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	tenantRepo repository.TenantRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	reviewUC *ReviewUseCase,
	defaultLimit int,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		tenantRepo:   tenantRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		reviewUC:     reviewUC,
		defaultLimit: defaultLimit,
	}
}

type ListProductsInput struct {
	Cursor     int
	Limit      int
	Category   string
	MinPrice   string
	MaxPrice   string
	Tags       []string
	Sort       string
	TenantSlug string
}

// ProductListItem is a catalog row with its review summary merged in.
type ProductListItem struct {
	*entity.Product
	ReviewCount  int     `json:"reviewCount"`
	ReviewRating float64 `json:"reviewRating"`
}

// compileFilter turns a catalog request into a single predicate/sort/page
// descriptor for the document store.
func (uc *ProductUseCase) compileFilter(ctx context.Context, input ListProductsInput) (*repository.Query, error) {
	query := repository.NewQuery()

	// "curated" and "new" intentionally share an order: the storefront
	// renders them as separate tabs over the same feed.
	switch input.Sort {
	case "curated":
		query.OrderBy("createdAt_desc")
	case "new":
		query.OrderBy("createdAt_desc")
	case "trending":
		query.OrderBy("createdAt_asc")
	default:
		query.OrderBy("createdAt_desc")
	}

	minPrice, err := parsePrice(input.MinPrice)
	if err != nil {
		return nil, err
	}
	maxPrice, err := parsePrice(input.MaxPrice)
	if err != nil {
		return nil, err
	}
	if minPrice != nil {
		query.Where("price", repository.OpGreaterOrEqual, *minPrice)
	}
	if maxPrice != nil {
		query.Where("price", repository.OpLessOrEqual, *maxPrice)
	}

	if input.TenantSlug != "" {
		query.Where("tenantSlug", repository.OpEqual, input.TenantSlug)
	}

	if input.Category != "" {
		category, err := uc.categoryRepo.GetBySlug(ctx, input.Category)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		// An unresolvable slug means "no filter", not "no results".
		if category != nil {
			children, err := uc.categoryRepo.ListChildren(ctx, category.ID)
			if err != nil {
				return nil, err
			}

			slugs := []string{category.Slug}
			for _, child := range children {
				slugs = append(slugs, child.Slug)
			}

			query.Where("categorySlug", repository.OpIn, slugs)
		}
	}

	if len(input.Tags) > 0 {
		query.Where("tags", repository.OpContainsAny, input.Tags)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	query.Paginate(input.Cursor, limit)
	query.WithDepth(2)

	return query, nil
}

func (uc *ProductUseCase) List(ctx context.Context, input ListProductsInput) (*utils.Page, error) {
	query, err := uc.compileFilter(ctx, input)
	if err != nil {
		return nil, err
	}

	products, total, err := uc.productRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	summaries, err := uc.reviewUC.Summarize(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	docs := make([]ProductListItem, 0, len(products))
	for _, product := range products {
		product.Content = "" // hidden from list views
		summary := summaries[product.ID]
		docs = append(docs, ProductListItem{
			Product:      product,
			ReviewCount:  summary.Count,
			ReviewRating: summary.Rating,
		})
	}

	page := utils.NewPage(docs, total, query.Page, query.Limit)
	return &page, nil
}

// ProductDetail is the single-product view.
type ProductDetail struct {
	*entity.Product
	IsPurchased        bool        `json:"isPurchased"`
	ReviewCount        int         `json:"reviewCount"`
	ReviewRating       float64     `json:"reviewRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// Get loads one product with its rating distribution. userID may be empty
// for anonymous browsing; isPurchased is only checked for signed-in users.
func (uc *ProductUseCase) Get(ctx context.Context, id, userID string) (*ProductDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, id, 2)
	if err != nil {
		return nil, err
	}
	product.Content = ""

	detail := &ProductDetail{Product: product}

	if userID != "" {
		_, err := uc.orderRepo.GetByUserAndProduct(ctx, userID, id)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		detail.IsPurchased = err == nil
	}

	summaries, err := uc.reviewUC.Summarize(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	summary := summaries[id]
	detail.ReviewCount = summary.Count
	detail.ReviewRating = summary.Rating
	detail.RatingDistribution = summary.Distribution

	return detail, nil
}

type CreateProductInput struct {
	Name         string
	Description  string
	Price        float64
	CategorySlug string
	Tags         []string
	Content      string
	IsPrivate    bool
}

// Create lists a product under the caller's tenant.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, errors.BadRequest("Product name is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}

	tenant, err := uc.callerTenant(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !tenant.StripeDetailsSubmitted {
		return nil, errors.Forbidden("Tenant must submit payment details before listing products", nil)
	}

	product := &entity.Product{
		TenantID:    tenant.ID,
		TenantSlug:  tenant.Slug,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Tags:        input.Tags,
		Content:     input.Content,
		IsPrivate:   input.IsPrivate,
	}

	if input.CategorySlug != "" {
		category, err := uc.categoryRepo.GetBySlug(ctx, input.CategorySlug)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategorySlug = category.Slug
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update modifies a product owned by the caller's tenant.
func (uc *ProductUseCase) Update(ctx context.Context, userID, productID string, input CreateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID, 0)
	if err != nil {
		return nil, err
	}

	tenant, err := uc.callerTenant(ctx, userID)
	if err != nil {
		return nil, err
	}
	if product.TenantID != tenant.ID {
		return nil, errors.Forbidden("You are not allowed to update this product", nil)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Tags = input.Tags
	product.Content = input.Content
	product.IsPrivate = input.IsPrivate

	if input.CategorySlug != "" {
		category, err := uc.categoryRepo.GetBySlug(ctx, input.CategorySlug)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategorySlug = category.Slug
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) callerTenant(ctx context.Context, userID string) (*entity.Tenant, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Tenants) == 0 {
		return nil, errors.Forbidden("You do not own a shop", nil)
	}
	return uc.tenantRepo.GetByID(ctx, user.Tenants[0])
}

func parsePrice(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.BadRequest("Invalid price filter", err)
	}
	return &parsed, nil
}
