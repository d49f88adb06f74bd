package repository

import (
	"context"

	"github.com/Lixing-Zhang/table-orders/internal/models"
)

// OrderRepository is the append-only order book
type OrderRepository interface {
	Append(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]*models.Order, error)
	Count(ctx context.Context) int
}

// InMemoryOrderRepository stores orders in the order they were placed
type InMemoryOrderRepository struct {
	orders []*models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make([]*models.Order, 0),
	}
}

// Append records an order at the end of the book
func (r *InMemoryOrderRepository) Append(ctx context.Context, order *models.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

// GetAll returns a snapshot of all orders in chronological order
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	orders := make([]*models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *InMemoryOrderRepository) Count(ctx context.Context) int {
	return len(r.orders)
}
