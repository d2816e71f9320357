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

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Upstream("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string, depth int) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Upstream("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	if depth >= 1 {
		if err := r.populate(ctx, []*entity.Product{&product}); err != nil {
			return nil, err
		}
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, query *repository.Query) ([]*entity.Product, int64, error) {
	fsQuery := applyQuery(r.client.Collection("products").Query, query)

	// Count the filtered set before pagination is applied.
	allDocs, err := fsQuery.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Upstream("Failed to count products", err)
	}
	total := int64(len(allDocs))

	if query.Limit > 0 {
		fsQuery = fsQuery.Limit(query.Limit)
	}
	if offset := query.Offset(); offset > 0 {
		fsQuery = fsQuery.Offset(offset)
	}

	iter := fsQuery.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Upstream("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	if query.Depth >= 1 {
		if err := r.populate(ctx, products); err != nil {
			return nil, 0, err
		}
	}

	return products, total, nil
}

func (r *firestoreProductRepository) ListByIDs(ctx context.Context, ids []string, depth int) ([]*entity.Product, error) {
	var products []*entity.Product

	for _, chunk := range chunkStrings(ids, maxDisjunction) {
		iter := r.client.Collection("products").Query.
			Where("id", "in", chunk).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Upstream("Failed to iterate products", err)
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				return nil, errors.Internal("Failed to parse product data", err)
			}
			products = append(products, &product)
		}
	}

	if depth >= 1 {
		if err := r.populate(ctx, products); err != nil {
			return nil, err
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Upstream("Failed to update product", err)
	}

	return nil
}

// populate resolves tenant and category relationships one level deep,
// fetching each referenced document once per call.
func (r *firestoreProductRepository) populate(ctx context.Context, products []*entity.Product) error {
	tenants := make(map[string]*entity.Tenant)
	categories := make(map[string]*entity.Category)

	for _, product := range products {
		if product.TenantID != "" {
			tenant, ok := tenants[product.TenantID]
			if !ok {
				doc, err := r.client.Collection("tenants").Doc(product.TenantID).Get(ctx)
				if err != nil {
					return errors.Upstream("Failed to resolve product tenant", err)
				}
				tenant = &entity.Tenant{}
				if err := doc.DataTo(tenant); err != nil {
					return errors.Internal("Failed to parse tenant data", err)
				}
				tenants[product.TenantID] = tenant
			}
			product.Tenant = tenant
		}

		if product.CategoryID != "" {
			category, ok := categories[product.CategoryID]
			if !ok {
				doc, err := r.client.Collection("categories").Doc(product.CategoryID).Get(ctx)
				if err != nil {
					return errors.Upstream("Failed to resolve product category", err)
				}
				category = &entity.Category{}
				if err := doc.DataTo(category); err != nil {
					return errors.Internal("Failed to parse category data", err)
				}
				categories[product.CategoryID] = category
			}
			product.Category = category
		}
	}

	return nil
}
