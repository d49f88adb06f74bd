package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Table number bounds, inclusive
const (
	MinTableNumber = 1
	MaxTableNumber = 30
)

// Order binds a table to products drawn from the catalog.
// Totals are computed once at construction and never change.
type Order struct {
	ID            string
	TableNumber   int
	Products      []*Product
	TotalPrice    decimal.Decimal
	TotalCalories float64
	PlacedAt      time.Time
}

// NewOrder validates the table number, requires at least one product
// and computes the order totals
func NewOrder(id string, tableNumber int, products []*Product, placedAt time.Time) (*Order, error) {
	if err := ValidateTableNumber(tableNumber); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrEmptyOrder
	}

	lines := make([]*Product, len(products))
	copy(lines, products)

	totalPrice := decimal.Zero
	totalCalories := 0.0
	for _, p := range lines {
		totalPrice = totalPrice.Add(p.Price())
		totalCalories += p.Calories()
	}

	return &Order{
		ID:            id,
		TableNumber:   tableNumber,
		Products:      lines,
		TotalPrice:    totalPrice,
		TotalCalories: totalCalories,
		PlacedAt:      placedAt,
	}, nil
}

// ValidateTableNumber checks the table is within the dining room
func ValidateTableNumber(tableNumber int) error {
	if tableNumber < MinTableNumber || tableNumber > MaxTableNumber {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidTable, tableNumber, MinTableNumber, MaxTableNumber)
	}
	return nil
}

// LineCount returns the number of product lines in the order
func (o *Order) LineCount() int {
	return len(o.Products)
}
