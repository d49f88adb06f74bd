package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/google/uuid"
)

// PlaceOrderRequest is a table number plus the product names as typed
type PlaceOrderRequest struct {
	TableNumber  int
	ProductNames []string
}

// ProductLookup resolves catalog products by name
type ProductLookup interface {
	GetByName(ctx context.Context, name string) (*models.Product, error)
}

// OrderService handles order business logic
type OrderService struct {
	products ProductLookup
	orders   repository.OrderRepository
	log      *slog.Logger
	now      func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(products ProductLookup, orders repository.OrderRepository, log *slog.Logger) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder resolves every product name and records the order.
// A single unknown name rejects the whole order; nothing is recorded.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if err := models.ValidateTableNumber(req.TableNumber); err != nil {
		return nil, err
	}
	if len(req.ProductNames) == 0 {
		return nil, models.ErrEmptyOrder
	}

	// Duplicated names stay duplicated: each occurrence is a line item
	lines := make([]*models.Product, 0, len(req.ProductNames))
	for _, name := range req.ProductNames {
		product, err := s.products.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				s.log.Debug("order rejected", "table", req.TableNumber, "unknown_product", name)
				return nil, &UnknownProductError{Name: name}
			}
			return nil, fmt.Errorf("failed to look up product %q: %w", name, err)
		}
		lines = append(lines, product)
	}

	order, err := models.NewOrder(generateOrderID(), req.TableNumber, lines, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"table", order.TableNumber,
		"lines", order.LineCount(),
		"total_price", order.TotalPrice.String(),
	)
	return order, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
