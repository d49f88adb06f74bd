package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/service"
)

// OrderHandler handles order commands
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// PlaceOrder handles "<table>, <product>[, <product>...]"
func (h *OrderHandler) PlaceOrder(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Fields) < 2 {
		h.log.Info("malformed order", "fields", len(cmd.Fields))
		return Result{}, ErrMalformedOrder
	}

	order, err := h.orderService.PlaceOrder(ctx, service.PlaceOrderRequest{
		TableNumber:  cmd.Table,
		ProductNames: cmd.Fields[1:],
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidTable):
			h.log.Info("order rejected: invalid table", "table", cmd.Table)
		case errors.Is(err, service.ErrUnknownProduct):
			h.log.Info("order rejected: unknown product", "table", cmd.Table, "error", err)
		default:
			h.log.Error("failed to place order", "table", cmd.Table, "error", err)
		}
		return Result{}, err
	}

	return Result{Action: ActionPlaceOrder, Order: order}, nil
}
