package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/service"
	"github.com/shopspring/decimal"
)

// ProductHandler handles catalog commands
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// AddProduct handles "<category>, <name>, <quantity>, <price>"
func (h *ProductHandler) AddProduct(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Fields) != 4 {
		h.logger.Info("malformed product", "fields", len(cmd.Fields))
		return Result{}, ErrMalformedProduct
	}

	category, ok := models.ResolveCategory(cmd.Fields[0])
	if !ok {
		return Result{}, ErrMalformedProduct
	}

	quantity, err := strconv.Atoi(cmd.Fields[2])
	if err != nil {
		return Result{}, &models.FieldError{Field: "quantity", Message: "must be a whole number, got " + strconv.Quote(cmd.Fields[2])}
	}

	// decimal parsing always uses '.' as the decimal point
	price, err := decimal.NewFromString(cmd.Fields[3])
	if err != nil {
		return Result{}, &models.FieldError{Field: "price", Message: "must be a decimal number, got " + strconv.Quote(cmd.Fields[3])}
	}

	product, err := h.service.AddProduct(ctx, service.AddProductRequest{
		Category: category,
		Name:     cmd.Fields[1],
		Quantity: quantity,
		Price:    price,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateName):
			h.logger.Info("duplicate product rejected", "name", cmd.Fields[1])
		case errors.Is(err, models.ErrInvalidField):
			h.logger.Info("invalid product rejected", "name", cmd.Fields[1], "error", err)
		default:
			h.logger.Error("failed to add product", "name", cmd.Fields[1], "error", err)
		}
		return Result{}, err
	}

	return Result{Action: ActionAddProduct, Product: product}, nil
}

// ShowInfo handles "info <product name>"
func (h *ProductHandler) ShowInfo(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Arg == "" {
		return Result{}, ErrMalformedInfo
	}

	product, err := h.service.GetProduct(ctx, cmd.Arg)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			h.logger.Info("product not found", "name", cmd.Arg)
		} else {
			h.logger.Error("failed to get product", "name", cmd.Arg, "error", err)
		}
		return Result{}, err
	}

	return Result{Action: ActionShowInfo, Product: product}, nil
}

// ListMenu returns the catalog sorted for display
func (h *ProductHandler) ListMenu(ctx context.Context) (Result, error) {
	products, err := h.service.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		return Result{}, err
	}

	return Result{Action: ActionListMenu, Menu: products}, nil
}

// ListCategories returns the fixed category registry
func (h *ProductHandler) ListCategories(ctx context.Context) (Result, error) {
	return Result{Action: ActionListCategories, Categories: models.Categories()}, nil
}
