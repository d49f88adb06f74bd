package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/Lixing-Zhang/table-orders/internal/service"
	"github.com/Lixing-Zhang/table-orders/pkg/logger"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	// Setup
	log := logger.New("error")
	productRepo := repository.NewInMemoryProductRepository()
	orderRepo := repository.NewInMemoryOrderRepository()
	products := NewProductHandler(service.NewProductService(productRepo, log), log)
	handler := NewOrderHandler(service.NewOrderService(productRepo, orderRepo, log), log)

	for _, line := range []string{
		"salad, Shopska Salad, 350, 2.50",
		"soup, Chicken Soup, 350, 3.00",
		"drink, Coffee, 70, 1.00",
	} {
		if _, err := products.AddProduct(context.Background(), Classify(line)); err != nil {
			t.Fatalf("setup %q failed: %v", line, err)
		}
	}

	tests := []struct {
		name          string
		line          string
		wantErr       error
		checkResponse func(*testing.T, *models.Order)
	}{
		{
			name: "successful order",
			line: "11, Shopska Salad, Chicken Soup, Coffee",
			checkResponse: func(t *testing.T, order *models.Order) {
				if order.ID == "" {
					t.Error("order ID is empty")
				}
				if order.TableNumber != 11 {
					t.Errorf("expected table 11, got %d", order.TableNumber)
				}
				if order.LineCount() != 3 {
					t.Errorf("expected 3 items, got %d", order.LineCount())
				}
				if got := order.TotalPrice.StringFixed(2); got != "6.50" {
					t.Errorf("expected total 6.50, got %s", got)
				}
				if order.TotalCalories != 105 {
					t.Errorf("expected 105 calories, got %v", order.TotalCalories)
				}
			},
		},
		{
			name: "line items keep input order",
			line: "2, Coffee, Shopska Salad, Coffee",
			checkResponse: func(t *testing.T, order *models.Order) {
				names := []string{"Coffee", "Shopska Salad", "Coffee"}
				for i, p := range order.Products {
					if p.Name() != names[i] {
						t.Errorf("item %d: got %q, want %q", i, p.Name(), names[i])
					}
				}
			},
		},
		{
			name:    "missing products",
			line:    "5",
			wantErr: ErrMalformedOrder,
		},
		{
			name:    "invalid table",
			line:    "44, Coffee",
			wantErr: models.ErrInvalidTable,
		},
		{
			name:    "unknown product",
			line:    "5, Coffee, Tea",
			wantErr: service.ErrUnknownProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := orderRepo.Count(context.Background())

			result, err := handler.PlaceOrder(context.Background(), Classify(tt.line))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if orderRepo.Count(context.Background()) != before {
					t.Error("rejected order was recorded")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Action != ActionPlaceOrder {
				t.Errorf("expected place_order action, got %s", result.Action)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, result.Order)
			}
		})
	}
}
