package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/bits-and-blooms/bloom/v3"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name already exists")
)

// Sizing of the name filter. A session menu holds dozens of items;
// exceeding the estimate only raises the false positive rate.
const (
	expectedProducts   = 1000
	falsePositiveRatio = 0.01
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	Add(ctx context.Context, product *models.Product) error
	Count(ctx context.Context) int
}

// InMemoryProductRepository keeps products in insertion order.
// Lookups scan the slice; the bloom filter lets most misses skip the scan.
type InMemoryProductRepository struct {
	products []*models.Product
	names    *bloom.BloomFilter
}

// NewInMemoryProductRepository creates an empty product catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make([]*models.Product, 0),
		names:    bloom.NewWithEstimates(expectedProducts, falsePositiveRatio),
	}
}

// GetAll returns all products in insertion order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	products := make([]*models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByName returns the product with exactly this name
func (r *InMemoryProductRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	if !r.names.TestString(name) {
		return nil, ErrProductNotFound
	}

	for _, product := range r.products {
		if product.Name() == name {
			return product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Add appends a product, rejecting a name that is already taken
func (r *InMemoryProductRepository) Add(ctx context.Context, product *models.Product) error {
	if _, err := r.GetByName(ctx, product.Name()); err == nil {
		return ErrDuplicateName
	}

	r.products = append(r.products, product)
	r.names.AddString(product.Name())
	return nil
}

// Count returns the number of products in the catalog
func (r *InMemoryProductRepository) Count(ctx context.Context) int {
	return len(r.products)
}
