package handlers

import (
	"context"

	"github.com/Lixing-Zhang/table-orders/internal/models"
)

// Action identifies what a handled line did
type Action int

const (
	ActionNone Action = iota
	ActionAddProduct
	ActionPlaceOrder
	ActionShowSales
	ActionShowInfo
	ActionListCategories
	ActionListMenu
	ActionHelp
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionAddProduct:
		return "add_product"
	case ActionPlaceOrder:
		return "place_order"
	case ActionShowSales:
		return "show_sales"
	case ActionShowInfo:
		return "show_info"
	case ActionListCategories:
		return "list_categories"
	case ActionListMenu:
		return "list_menu"
	case ActionHelp:
		return "help"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// Result is the structured outcome of one command, handed to the
// console for display. Only the fields relevant to Action are set.
type Result struct {
	Action     Action
	Product    *models.Product
	Order      *models.Order
	Report     *models.SalesReport
	Categories []models.CategoryDescriptor
	Menu       []*models.Product
	Halt       bool
}

// HandlerFunc handles one input line
type HandlerFunc func(ctx context.Context, line string) (Result, error)
