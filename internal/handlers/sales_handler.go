package handlers

import (
	"context"
	"log/slog"

	"github.com/Lixing-Zhang/table-orders/internal/service"
)

// SalesHandler handles reporting commands
type SalesHandler struct {
	sales *service.SalesService
	log   *slog.Logger
}

func NewSalesHandler(sales *service.SalesService, log *slog.Logger) *SalesHandler {
	return &SalesHandler{
		sales: sales,
		log:   log,
	}
}

// ShowSales returns the current sales report
func (h *SalesHandler) ShowSales(ctx context.Context) (Result, error) {
	report, err := h.sales.Summarize(ctx)
	if err != nil {
		h.log.Error("failed to summarize sales", "error", err)
		return Result{}, err
	}

	return Result{Action: ActionShowSales, Report: report}, nil
}

// Exit returns the closing report and stops the session
func (h *SalesHandler) Exit(ctx context.Context) (Result, error) {
	result, err := h.ShowSales(ctx)
	if err != nil {
		return Result{Action: ActionExit, Halt: true}, err
	}

	h.log.Info("session closing", "orders", result.Report.OrderCount)
	result.Action = ActionExit
	result.Halt = true
	return result, nil
}
