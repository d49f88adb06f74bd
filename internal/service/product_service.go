package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrDuplicateName  = repository.ErrDuplicateName
)

// UnknownProductError names the product that could not be resolved
type UnknownProductError struct {
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.Name)
}

func (e *UnknownProductError) Is(target error) bool {
	return target == ErrUnknownProduct
}

// AddProductRequest carries already parsed product fields
type AddProductRequest struct {
	Category models.Category
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// ProductService handles business logic for the menu catalog
type ProductService struct {
	repo repository.ProductRepository
	log  *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
	}
}

// AddProduct validates and appends a new product to the catalog
func (s *ProductService) AddProduct(ctx context.Context, req AddProductRequest) (*models.Product, error) {
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, req.Name)
	}

	product, err := models.NewProduct(req.Category, req.Name, req.Quantity, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: %q", err, req.Name)
	}

	s.log.Debug("product added",
		"category", product.Category().Token(),
		"name", product.Name(),
		"catalog_size", s.repo.Count(ctx),
	)
	return product, nil
}

// GetProduct returns a product by its exact name
func (s *ProductService) GetProduct(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &UnknownProductError{Name: name}
		}
		return nil, err
	}
	return product, nil
}

// ListProducts returns the menu ordered by category token, then name
func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		ti, tj := products[i].Category().Token(), products[j].Category().Token()
		if ti != tj {
			return ti < tj
		}
		return products[i].Name() < products[j].Name()
	})
	return products, nil
}

// ListCatalog returns products in the order they were added
func (s *ProductService) ListCatalog(ctx context.Context) ([]*models.Product, error) {
	return s.repo.GetAll(ctx)
}
