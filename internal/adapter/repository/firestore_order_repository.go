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

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Upstream("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Order, error) {
	iter := r.client.Collection("orders").Query.
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)

	return r.first(iter)
}

func (r *firestoreOrderRepository) GetBySessionAndProduct(ctx context.Context, sessionID, productID string) (*entity.Order, error) {
	iter := r.client.Collection("orders").Query.
		Where("stripeCheckoutSessionId", "==", sessionID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)

	return r.first(iter)
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query.
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Upstream("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Upstream("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) first(iter *firestore.DocumentIterator) (*entity.Order, error) {
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Order", nil)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to query order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}
