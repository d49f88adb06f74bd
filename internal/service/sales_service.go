package service

import (
	"context"
	"sort"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/bits-and-blooms/bitset"
	"github.com/shopspring/decimal"
)

// SalesService aggregates the order book into sales reports
type SalesService struct {
	orders repository.OrderRepository
}

// NewSalesService creates a new sales service
func NewSalesService(orders repository.OrderRepository) *SalesService {
	return &SalesService{
		orders: orders,
	}
}

// Summarize recomputes the sales report from every recorded order.
// It has no side effects; calling it twice yields equal reports.
func (s *SalesService) Summarize(ctx context.Context) (*models.SalesReport, error) {
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	tables := bitset.New(models.MaxTableNumber + 1)
	groups := make(map[models.Category]*models.CategorySales)
	report := &models.SalesReport{
		OrderCount:  len(orders),
		TotalIncome: decimal.Zero,
	}

	for _, order := range orders {
		tables.Set(uint(order.TableNumber))
		report.TotalLines += order.LineCount()
		report.TotalIncome = report.TotalIncome.Add(order.TotalPrice)

		for _, product := range order.Products {
			group, ok := groups[product.Category()]
			if !ok {
				group = &models.CategorySales{Category: product.Category(), Total: decimal.Zero}
				groups[product.Category()] = group
			}
			group.Count++
			group.Total = group.Total.Add(product.Price())
		}
	}

	report.OccupiedTables = int(tables.Count())

	report.ByCategory = make([]models.CategorySales, 0, len(groups))
	for _, group := range groups {
		report.ByCategory = append(report.ByCategory, *group)
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Category.Token() < report.ByCategory[j].Category.Token()
	})

	return report, nil
}
