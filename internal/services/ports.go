package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/pdf"
)

// Ports to external collaborators. Production implementations live in
// store, auth, mail, and pdf; tests swap in sqlite-backed or in-memory ones.

type Clock interface {
	Today() time.Time
}

type RateProvider interface {
	Rates() (tax, shipping decimal.Decimal)
}

type Catalog interface {
	PriceFor(ctx context.Context, description string) (decimal.Decimal, error)
	List(ctx context.Context) ([]models.Product, error)
}

type EmployeeStore interface {
	Create(ctx context.Context, e *models.Employee) error
	ByEmail(ctx context.Context, email string) (*models.Employee, error)
	ByID(ctx context.Context, id uint) (*models.Employee, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type SchoolStore interface {
	ByID(ctx context.Context, id uint) (*models.School, error)
	ByName(ctx context.Context, name string) (*models.School, error)
}

type CartStore interface {
	Add(ctx context.Context, employeeID uint, description string, quantity int, unitPrice decimal.Decimal) error
	Items(ctx context.Context, employeeID uint) ([]models.CartItem, error)
	Clear(ctx context.Context, employeeID uint) error
}

type InvoiceStore interface {
	// FindOrCreate resolves by (employee id, number); inv is filled with the
	// existing record when one is already there.
	FindOrCreate(ctx context.Context, inv *models.Invoice) (created bool, err error)
	ByID(ctx context.Context, employeeID, id uint) (*models.Invoice, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]models.Invoice, error)
	MarkEmailed(ctx context.Context, id uint, at time.Time) error
}

type Renderer interface {
	InvoicePDF(data pdf.InvoiceData) ([]byte, error)
}
