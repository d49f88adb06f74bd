package models

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Product field bounds, inclusive
const (
	MinQuantity = 0
	MaxQuantity = 1000
)

var (
	MinPrice = decimal.Zero
	MaxPrice = decimal.NewFromInt(100)
)

// Product is a validated menu item. Fields are fixed at construction;
// orders share *Product references into the catalog.
type Product struct {
	category Category
	name     string
	quantity int
	price    decimal.Decimal
}

// NewProduct validates every field and builds a product.
// No partially valid product is ever returned.
func NewProduct(category Category, name string, quantity int, price decimal.Decimal) (*Product, error) {
	if !category.Valid() {
		return nil, fieldError("category", "unknown category %d", int(category))
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		category: category,
		name:     name,
		quantity: quantity,
		price:    price,
	}, nil
}

func (p *Product) Category() Category     { return p.category }
func (p *Product) Name() string           { return p.name }
func (p *Product) Quantity() int          { return p.quantity }
func (p *Product) Price() decimal.Decimal { return p.price }

// Unit returns the label the product quantity is measured in
func (p *Product) Unit() string {
	return p.category.Unit()
}

// Calories is derived from the category formula on every call
func (p *Product) Calories() float64 {
	return p.category.Calories(p.quantity)
}

func validateName(name string) error {
	if name == "" {
		return fieldError("name", "must not be empty")
	}
	if strings.IndexFunc(name, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		return fieldError("name", "must not consist of digits only")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < MinQuantity {
		return fieldError("quantity", "must not be negative, got %d", quantity)
	}
	if quantity > MaxQuantity {
		return fieldError("quantity", "must not exceed %d, got %d", MaxQuantity, quantity)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThan(MinPrice) {
		return fieldError("price", "must not be negative, got %s", price.String())
	}
	if price.GreaterThan(MaxPrice) {
		return fieldError("price", "must not exceed %s, got %s", MaxPrice.String(), price.String())
	}
	return nil
}
