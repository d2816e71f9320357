package usecase

import (
	"context"
	"fmt"

	"ebazaar/internal/domain/entity"
	"ebazaar/internal/domain/repository"
	"ebazaar/internal/domain/service"
	"ebazaar/pkg/errors"
)

// In-memory fakes for the repository and service boundaries. They model
// just enough store behavior (not-found codes, id assignment) for the use
// case tests.

type fakeReviewRepo struct {
	reviews []*entity.Review
	listErr error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = fmt.Sprintf("review-%d", len(f.reviews)+1)
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (f *fakeReviewRepo) GetByProductAndUser(ctx context.Context, productID, userID string) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.Product.Key() == productID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (f *fakeReviewRepo) ListByProductIDs(ctx context.Context, productIDs []string, depth int) ([]*entity.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		ids[id] = true
	}
	var out []*entity.Review
	for _, r := range f.reviews {
		if ids[r.Product.Key()] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	for i, r := range f.reviews {
		if r.ID == review.ID {
			f.reviews[i] = review
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}

type fakeProductRepo struct {
	products  map[string]*entity.Product
	listDocs  []*entity.Product
	listTotal int64
	lastQuery *repository.Query
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(f.products)+1)
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string, depth int) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (f *fakeProductRepo) List(ctx context.Context, query *repository.Query) ([]*entity.Product, int64, error) {
	f.lastQuery = query
	return f.listDocs, f.listTotal, nil
}

func (f *fakeProductRepo) ListByIDs(ctx context.Context, ids []string, depth int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	f.products[product.ID] = product
	return nil
}

type fakeCategoryRepo struct {
	bySlug   map[string]*entity.Category
	children map[string][]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		bySlug:   map[string]*entity.Category{},
		children: map[string][]*entity.Category{},
	}
}

func (f *fakeCategoryRepo) add(category *entity.Category) {
	f.bySlug[category.Slug] = category
	if category.ParentID != "" {
		f.children[category.ParentID] = append(f.children[category.ParentID], category)
	}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = fmt.Sprintf("category-%d", len(f.bySlug)+1)
	}
	f.add(category)
	return nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return nil, errors.NotFound("Category", nil)
}

func (f *fakeCategoryRepo) ListRoots(ctx context.Context, depth int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.bySlug {
		if c.ParentID == "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	return f.children[parentID], nil
}

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo(tenants ...*entity.Tenant) *fakeTenantRepo {
	f := &fakeTenantRepo{tenants: map[string]*entity.Tenant{}}
	for _, t := range tenants {
		f.tenants[t.ID] = t
	}
	return f
}

func (f *fakeTenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = fmt.Sprintf("tenant-%d", len(f.tenants)+1)
	}
	f.tenants[tenant.ID] = tenant
	return nil
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*entity.Tenant, error) {
	if t, ok := f.tenants[id]; ok {
		return t, nil
	}
	return nil, errors.NotFound("Tenant", nil)
}

func (f *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, errors.NotFound("Tenant", nil)
}

func (f *fakeTenantRepo) GetByStripeAccountID(ctx context.Context, accountID string) (*entity.Tenant, error) {
	for _, t := range f.tenants {
		if t.StripeAccountID == accountID {
			return t, nil
		}
	}
	return nil, errors.NotFound("Tenant", nil)
}

func (f *fakeTenantRepo) Update(ctx context.Context, tenant *entity.Tenant) error {
	if _, ok := f.tenants[tenant.ID]; !ok {
		return errors.NotFound("Tenant", nil)
	}
	f.tenants[tenant.ID] = tenant
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	order.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.UserID == userID && o.ProductID == productID {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) GetBySessionAndProduct(ctx context.Context, sessionID, productID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.StripeCheckoutSessionID == sessionID && o.ProductID == productID {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var mine []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	total := int64(len(mine))
	if offset >= len(mine) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], total, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	f.users[user.ID] = user
	return nil
}

type fakePaymentService struct {
	lineItems       []service.SessionLineItem
	lineItemsErr    error
	sessionRequests []service.CheckoutSessionRequest
	accountLinks    int
}

func (f *fakePaymentService) CreateAccount(ctx context.Context) (string, error) {
	return "acct_test", nil
}

func (f *fakePaymentService) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	f.accountLinks++
	return "https://connect.stripe.com/setup/test", nil
}

func (f *fakePaymentService) CreateCheckoutSession(ctx context.Context, req service.CheckoutSessionRequest) (*service.CheckoutSession, error) {
	f.sessionRequests = append(f.sessionRequests, req)
	return &service.CheckoutSession{ID: "cs_test", URL: "https://checkout.stripe.com/pay/cs_test"}, nil
}

func (f *fakePaymentService) GetSessionLineItems(ctx context.Context, sessionID, accountID string) ([]service.SessionLineItem, error) {
	if f.lineItemsErr != nil {
		return nil, f.lineItemsErr
	}
	return f.lineItems, nil
}

func (f *fakePaymentService) ConstructEvent(payload []byte, sigHeader string) (*service.WebhookEvent, error) {
	return nil, errors.BadRequest("not implemented in fake", nil)
}
