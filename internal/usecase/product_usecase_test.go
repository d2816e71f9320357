package usecase

import (
	"context"
	"testing"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUseCase(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo) *ProductUseCase {
	if productRepo == nil {
		productRepo = newFakeProductRepo()
	}
	if categoryRepo == nil {
		categoryRepo = newFakeCategoryRepo()
	}
	reviewUC := NewReviewUseCase(&fakeReviewRepo{}, productRepo)
	return NewProductUseCase(
		productRepo,
		categoryRepo,
		newFakeTenantRepo(),
		&fakeOrderRepo{},
		newFakeUserRepo(),
		reviewUC,
		12,
	)
}

func findClause(t *testing.T, q *repository.Query, field string) repository.Clause {
	t.Helper()
	for _, clause := range q.Clauses {
		if clause.Field == field {
			return clause
		}
	}
	t.Fatalf("no clause on field %q", field)
	return repository.Clause{}
}

func hasClause(q *repository.Query, field string) bool {
	for _, clause := range q.Clauses {
		if clause.Field == field {
			return true
		}
	}
	return false
}

func TestCompileFilterSortTable(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	cases := map[string]string{
		"curated":  "createdAt_desc",
		"new":      "createdAt_desc",
		"trending": "createdAt_asc",
		"":         "createdAt_desc",
		"garbage":  "createdAt_desc",
	}

	for sort, want := range cases {
		q, err := uc.compileFilter(context.Background(), ListProductsInput{Sort: sort})
		require.NoError(t, err)
		assert.Equal(t, want, q.Sort, "sort=%q", sort)
	}
}

func TestCompileFilterPriceRange(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{
		MinPrice: "10",
		MaxPrice: "99.5",
	})
	require.NoError(t, err)

	min := findClause(t, q, "price")
	assert.Equal(t, repository.OpGreaterOrEqual, min.Op)
	assert.Equal(t, 10.0, min.Value)

	var max repository.Clause
	for _, clause := range q.Clauses {
		if clause.Field == "price" && clause.Op == repository.OpLessOrEqual {
			max = clause
		}
	}
	assert.Equal(t, 99.5, max.Value)
}

func TestCompileFilterOpenEndedPriceRange(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{MinPrice: "25"})
	require.NoError(t, err)

	count := 0
	for _, clause := range q.Clauses {
		if clause.Field == "price" {
			count++
			assert.Equal(t, repository.OpGreaterOrEqual, clause.Op)
		}
	}
	assert.Equal(t, 1, count)
}

func TestCompileFilterMalformedPrice(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	_, err := uc.compileFilter(context.Background(), ListProductsInput{MinPrice: "cheap"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCompileFilterCategoryExpandsToChildren(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "c1", Slug: "design", Name: "Design"})
	categoryRepo.add(&entity.Category{ID: "c2", Slug: "icons", Name: "Icons", ParentID: "c1"})
	categoryRepo.add(&entity.Category{ID: "c3", Slug: "fonts", Name: "Fonts", ParentID: "c1"})

	uc := newProductUseCase(nil, categoryRepo)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{Category: "design"})
	require.NoError(t, err)

	clause := findClause(t, q, "categorySlug")
	assert.Equal(t, repository.OpIn, clause.Op)
	assert.ElementsMatch(t, []string{"design", "icons", "fonts"}, clause.Value)
}

func TestCompileFilterLeafCategory(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.add(&entity.Category{ID: "c1", Slug: "design", Name: "Design"})
	categoryRepo.add(&entity.Category{ID: "c2", Slug: "icons", Name: "Icons", ParentID: "c1"})

	uc := newProductUseCase(nil, categoryRepo)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{Category: "icons"})
	require.NoError(t, err)

	clause := findClause(t, q, "categorySlug")
	assert.Equal(t, []string{"icons"}, clause.Value)
}

func TestCompileFilterUnresolvedCategoryAddsNoClause(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{Category: "no-such-slug"})
	require.NoError(t, err)

	assert.False(t, hasClause(q, "categorySlug"))
}

func TestCompileFilterTenantAndTags(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{
		TenantSlug: "ana-shop",
		Tags:       []string{"dark", "minimal"},
	})
	require.NoError(t, err)

	tenant := findClause(t, q, "tenantSlug")
	assert.Equal(t, repository.OpEqual, tenant.Op)
	assert.Equal(t, "ana-shop", tenant.Value)

	tags := findClause(t, q, "tags")
	assert.Equal(t, repository.OpContainsAny, tags.Op)
	assert.Equal(t, []string{"dark", "minimal"}, tags.Value)
}

func TestCompileFilterDefaultsPagination(t *testing.T) {
	uc := newProductUseCase(nil, nil)

	q, err := uc.compileFilter(context.Background(), ListProductsInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)
}

func TestListMergesReviewSummaries(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.listDocs = []*entity.Product{
		{ID: "p1", Name: "Icon pack", Content: "secret download"},
		{ID: "p2", Name: "Font kit"},
	}
	productRepo.listTotal = 2

	reviewRepo := &fakeReviewRepo{reviews: []*entity.Review{
		review("p1", "u1", 5),
		review("p1", "u2", 4),
	}}
	reviewUC := NewReviewUseCase(reviewRepo, productRepo)
	uc := NewProductUseCase(productRepo, newFakeCategoryRepo(), newFakeTenantRepo(), &fakeOrderRepo{}, newFakeUserRepo(), reviewUC, 12)

	page, err := uc.List(context.Background(), ListProductsInput{})
	require.NoError(t, err)

	docs := page.Docs.([]ProductListItem)
	require.Len(t, docs, 2)
	assert.Equal(t, 2, docs[0].ReviewCount)
	assert.Equal(t, 4.5, docs[0].ReviewRating)
	assert.Equal(t, 0, docs[1].ReviewCount)

	// Paid content never rides along on catalog rows.
	assert.Empty(t, docs[0].Content)
}

func TestGetIncludesPurchaseFlagAndDistribution(t *testing.T) {
	productRepo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Icon pack"})
	reviewRepo := &fakeReviewRepo{reviews: []*entity.Review{review("p1", "u9", 5)}}
	orderRepo := &fakeOrderRepo{}
	orderRepo.Create(context.Background(), &entity.Order{UserID: "u1", ProductID: "p1"})

	reviewUC := NewReviewUseCase(reviewRepo, productRepo)
	uc := NewProductUseCase(productRepo, newFakeCategoryRepo(), newFakeTenantRepo(), orderRepo, newFakeUserRepo(), reviewUC, 12)

	detail, err := uc.Get(context.Background(), "p1", "u1")
	require.NoError(t, err)
	assert.True(t, detail.IsPurchased)
	assert.Equal(t, 1, detail.ReviewCount)
	assert.Equal(t, 100, detail.RatingDistribution[5])

	anonymous, err := uc.Get(context.Background(), "p1", "")
	require.NoError(t, err)
	assert.False(t, anonymous.IsPurchased)
}
