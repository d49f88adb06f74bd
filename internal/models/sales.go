package models

import "github.com/shopspring/decimal"

// SalesReport is the aggregate over every recorded order.
// Amounts are kept unrounded; use the Rounded helpers for display.
type SalesReport struct {
	OrderCount     int
	OccupiedTables int
	TotalLines     int
	TotalIncome    decimal.Decimal
	ByCategory     []CategorySales
}

// CategorySales is one line of the per-category breakdown
type CategorySales struct {
	Category Category
	Count    int
	Total    decimal.Decimal
}

// Empty reports whether no orders were recorded
func (r *SalesReport) Empty() bool {
	return r.OrderCount == 0
}

// RoundedIncome returns the total income rounded to cents
func (r *SalesReport) RoundedIncome() decimal.Decimal {
	return roundCents(r.TotalIncome)
}

// RoundedTotal returns the category subtotal rounded to cents
func (c CategorySales) RoundedTotal() decimal.Decimal {
	return roundCents(c.Total)
}

// roundCents rounds half to even
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
