package handlers

import (
	"context"
	"fmt"
)

// Dispatcher classifies input lines and routes them to the handlers.
// It keeps no state between lines.
type Dispatcher struct {
	products *ProductHandler
	orders   *OrderHandler
	sales    *SalesHandler
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(products *ProductHandler, orders *OrderHandler, sales *SalesHandler) *Dispatcher {
	return &Dispatcher{
		products: products,
		orders:   orders,
		sales:    sales,
	}
}

// Handle classifies and executes one line
func (d *Dispatcher) Handle(ctx context.Context, line string) (Result, error) {
	cmd := Classify(line)

	switch cmd.Kind {
	case KindEmpty:
		return Result{Action: ActionNone}, nil
	case KindExit:
		return d.sales.Exit(ctx)
	case KindAddProduct:
		return d.products.AddProduct(ctx, cmd)
	case KindPlaceOrder:
		return d.orders.PlaceOrder(ctx, cmd)
	case KindSales:
		return d.sales.ShowSales(ctx)
	case KindInfo:
		return d.products.ShowInfo(ctx, cmd)
	case KindListCategories:
		return d.products.ListCategories(ctx)
	case KindListMenu:
		return d.products.ListMenu(ctx)
	case KindHelp:
		return Result{Action: ActionHelp}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, cmd.Line)
	}
}
