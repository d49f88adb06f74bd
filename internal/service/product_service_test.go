package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/Lixing-Zhang/table-orders/pkg/logger"
	"github.com/shopspring/decimal"
)

func TestProductService_AddProduct(t *testing.T) {
	tests := []struct {
		name    string
		req     AddProductRequest
		wantErr error
	}{
		{
			name: "valid product",
			req:  AddProductRequest{Category: models.CategoryDrink, Name: "Tea", Quantity: 200, Price: decimal.RequireFromString("1.00")},
		},
		{
			name: "inclusive upper bounds",
			req:  AddProductRequest{Category: models.CategoryMainCourse, Name: "Feast", Quantity: 1000, Price: decimal.RequireFromString("100.00")},
		},
		{
			name:    "duplicate name",
			req:     AddProductRequest{Category: models.CategoryDrink, Name: "Coffee", Quantity: 70, Price: decimal.RequireFromString("1.00")},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "duplicate name in another category",
			req:     AddProductRequest{Category: models.CategorySalad, Name: "Steak", Quantity: 70, Price: decimal.RequireFromString("1.00")},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "quantity over limit",
			req:     AddProductRequest{Category: models.CategoryMainCourse, Name: "Giant", Quantity: 1001, Price: decimal.RequireFromString("1.00")},
			wantErr: models.ErrInvalidField,
		},
		{
			name:    "price over limit",
			req:     AddProductRequest{Category: models.CategoryMainCourse, Name: "Pricey", Quantity: 100, Price: decimal.RequireFromString("100.01")},
			wantErr: models.ErrInvalidField,
		},
		{
			name:    "digits only name",
			req:     AddProductRequest{Category: models.CategoryMainCourse, Name: "42", Quantity: 100, Price: decimal.RequireFromString("1.00")},
			wantErr: models.ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := seedCatalog(t)
			before := repo.Count(context.Background())

			product, err := svc.AddProduct(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("AddProduct() error = %v, wantErr %v", err, tt.wantErr)
				}
				if repo.Count(context.Background()) != before {
					t.Error("catalog size changed on rejected product")
				}
				return
			}

			if err != nil {
				t.Fatalf("AddProduct() unexpected error = %v", err)
			}
			if product.Name() != tt.req.Name {
				t.Errorf("AddProduct() name = %q, want %q", product.Name(), tt.req.Name)
			}
			if repo.Count(context.Background()) != before+1 {
				t.Error("catalog did not grow by one")
			}
		})
	}
}

func TestProductService_GetProduct(t *testing.T) {
	_, svc := seedCatalog(t)

	product, err := svc.GetProduct(context.Background(), "Pancake")
	if err != nil {
		t.Fatalf("GetProduct() unexpected error = %v", err)
	}
	if product.Calories() != 450 {
		t.Errorf("Pancake calories = %v, want 450", product.Calories())
	}

	_, err = svc.GetProduct(context.Background(), "pancake")
	var unknown *UnknownProductError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownProductError, got %v", err)
	}
	if unknown.Name != "pancake" {
		t.Errorf("error names %q, want pancake", unknown.Name)
	}
}

func TestProductService_ListProducts(t *testing.T) {
	repo := repository.NewInMemoryProductRepository()
	svc := NewProductService(repo, logger.New("error"))
	ctx := context.Background()

	add := func(c models.Category, name string) {
		t.Helper()
		_, err := svc.AddProduct(ctx, AddProductRequest{Category: c, Name: name, Quantity: 100, Price: decimal.NewFromInt(1)})
		if err != nil {
			t.Fatalf("AddProduct(%q) unexpected error: %v", name, err)
		}
	}
	add(models.CategorySoup, "Tarator")
	add(models.CategorySalad, "Shopska")
	add(models.CategoryDrink, "Tea")
	add(models.CategorySalad, "Greek Salad")
	add(models.CategoryDessert, "Pancake")
	add(models.CategoryDrink, "Coffee")
	add(models.CategoryMainCourse, "Moussaka")

	sorted, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() unexpected error: %v", err)
	}
	want := []string{"Pancake", "Coffee", "Tea", "Moussaka", "Greek Salad", "Shopska", "Tarator"}
	for i, p := range sorted {
		if p.Name() != want[i] {
			t.Errorf("sorted position %d: got %q, want %q", i, p.Name(), want[i])
		}
	}

	catalog, err := svc.ListCatalog(ctx)
	if err != nil {
		t.Fatalf("ListCatalog() unexpected error: %v", err)
	}
	if catalog[0].Name() != "Tarator" || catalog[6].Name() != "Moussaka" {
		t.Error("ListCatalog() must keep insertion order")
	}
}
