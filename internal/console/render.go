package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/table-orders/internal/handlers"
	"github.com/Lixing-Zhang/table-orders/internal/middleware"
	"github.com/Lixing-Zhang/table-orders/internal/models"
	"github.com/Lixing-Zhang/table-orders/internal/service"
)

// Renderer writes command results as human readable text
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Result writes the outcome of a successful command
func (r *Renderer) Result(res handlers.Result) {
	switch res.Action {
	case handlers.ActionAddProduct:
		r.productAdded(res.Product)
	case handlers.ActionPlaceOrder:
		r.orderPlaced(res.Order)
	case handlers.ActionShowSales:
		r.sales(res.Report, "No orders have been placed yet.")
	case handlers.ActionExit:
		r.sales(res.Report, "No orders were placed.")
	case handlers.ActionShowInfo:
		r.productInfo(res.Product)
	case handlers.ActionListCategories:
		r.categories(res.Categories)
	case handlers.ActionListMenu:
		r.menu(res.Menu)
	case handlers.ActionHelp:
		r.help()
	}
}

// Error writes a single line describing why a command was rejected
func (r *Renderer) Error(err error) {
	var (
		fieldErr   *models.FieldError
		unknownErr *service.UnknownProductError
	)

	switch {
	case errors.As(err, &fieldErr):
		r.printf("Invalid %s: %s\n", fieldErr.Field, fieldErr.Message)
	case errors.As(err, &unknownErr):
		r.printf("No product named '%s'.\n", unknownErr.Name)
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, models.ErrInvalidTable),
		errors.Is(err, handlers.ErrMalformedProduct),
		errors.Is(err, handlers.ErrMalformedOrder),
		errors.Is(err, handlers.ErrMalformedInfo):
		r.printf("Rejected: %v\n", err)
	case errors.Is(err, handlers.ErrUnrecognizedCommand):
		r.printf("%v (type 'help' for the list of commands)\n", err)
	case errors.Is(err, middleware.ErrCommandPanicked):
		r.printf("Internal error, the command was not applied.\n")
	case errors.Is(err, ErrLineTooLong):
		r.printf("Rejected: %v (limit %d bytes)\n", err, maxLineLength)
	default:
		r.printf("Error: %v\n", err)
	}
}

func (r *Renderer) productAdded(p *models.Product) {
	r.printf("Added %s: %s, %d %s, %s\n",
		p.Category().Annotation(), p.Name(), p.Quantity(), p.Unit(), p.Price().StringFixed(2))
}

func (r *Renderer) orderPlaced(o *models.Order) {
	names := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		names = append(names, p.Name())
	}

	r.printf("Order %s for table %d: %d items, %s, %s calories\n",
		o.ID, o.TableNumber, o.LineCount(), o.TotalPrice.StringFixed(2), formatCalories(o.TotalCalories))
	r.printf("Products: %s\n", strings.Join(names, ", "))
}

func (r *Renderer) sales(report *models.SalesReport, emptyNotice string) {
	if report == nil || report.Empty() {
		r.printf("\n%s\n", emptyNotice)
		return
	}

	r.printf("Occupied tables today: %d\n", report.OccupiedTables)
	r.printf("Total sales: %d - %s\n", report.TotalLines, report.RoundedIncome().StringFixed(2))
	r.printf("Products by category:\n")
	for _, group := range report.ByCategory {
		r.printf("  - %s: %d - %s\n",
			group.Category.Annotation(), group.Count, group.RoundedTotal().StringFixed(2))
	}
	r.printf("\n")
}

func (r *Renderer) productInfo(p *models.Product) {
	r.printf("Product info: %s\n", p.Name())
	r.printf("%s: %d\n", p.Unit(), p.Quantity())
	r.printf("Calories: %s\n\n", formatCalories(p.Calories()))
}

func (r *Renderer) categories(descriptors []models.CategoryDescriptor) {
	r.printf("\nCategories by token and name:\n")
	for _, d := range descriptors {
		r.printf("  - %s: %s\n", d.Token, d.Annotation)
	}
	r.printf("\n")
}

func (r *Renderer) menu(products []*models.Product) {
	if len(products) == 0 {
		r.printf("\nThe menu is empty.\n\n")
		return
	}

	r.printf("\nMenu:\n")
	for _, p := range products {
		r.printf("   %s: %s, %d %s, %s\n",
			p.Category().Annotation(), p.Name(), p.Quantity(), p.Unit(), p.Price().StringFixed(2))
	}
	r.printf("\n")
}

func (r *Renderer) help() {
	for _, line := range helpLines {
		r.printf("%s\n", line)
	}
	r.printf("\n")
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

func formatCalories(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
