package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/schooldesk/ordering/internal/money"
)

type QuoteLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Quote is a point-in-time price breakdown recomputed from the cart on every
// view. It is never persisted; submission freezes it into an invoice.
type Quote struct {
	Number         string
	Date           time.Time
	SchoolName     string
	SchoolCode     string
	DeliveryWindow string
	Lines          []QuoteLine
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Shipping       decimal.Decimal
	Total          decimal.Decimal
}

type QuoteService struct {
	employees EmployeeStore
	schools   SchoolStore
	carts     CartStore
	clock     Clock
	rates     RateProvider
}

func NewQuoteService(employees EmployeeStore, schools SchoolStore, carts CartStore, clock Clock, rates RateProvider) *QuoteService {
	return &QuoteService{employees: employees, schools: schools, carts: carts, clock: clock, rates: rates}
}

// QuoteNumber derives {school code}x{MMDDYY}, e.g. "28Q082x122225". One
// school shares one number per calendar day.
func QuoteNumber(schoolCode string, today time.Time) string {
	return fmt.Sprintf("%sx%s", schoolCode, today.Format("010206"))
}

// Build prices the employee's current cart. An empty cart yields a quote
// with zero totals, not an error.
func (s *QuoteService) Build(ctx context.Context, employeeID uint) (*Quote, error) {
	emp, err := s.employees.ByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	school, err := s.schools.ByID(ctx, emp.SchoolID)
	if err != nil {
		return nil, err
	}
	items, err := s.carts.Items(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	q := &Quote{
		Number:         QuoteNumber(school.Code, today),
		Date:           today,
		SchoolName:     school.Name,
		SchoolCode:     school.Code,
		DeliveryWindow: emp.DeliveryWindow,
		Subtotal:       decimal.Zero,
	}
	for _, it := range items {
		lineTotal := money.Line(it.UnitPrice, it.Quantity)
		q.Lines = append(q.Lines, QuoteLine{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   lineTotal,
		})
		q.Subtotal = q.Subtotal.Add(lineTotal)
	}
	taxRate, shippingRate := s.rates.Rates()
	q.Tax = money.ApplyRate(q.Subtotal, taxRate)
	q.Shipping = money.ApplyRate(q.Subtotal, shippingRate)
	q.Total = money.Sum(q.Subtotal, q.Tax, q.Shipping)
	return q, nil
}
