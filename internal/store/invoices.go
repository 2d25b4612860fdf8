package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

// Invoices persists submitted orders and their line items.
type Invoices struct {
	db *gorm.DB
}

func NewInvoices(db *gorm.DB) *Invoices { return &Invoices{db: db} }

// FindOrCreate resolves an invoice by its (employee, number) pair. When that
// number was already submitted the stored invoice wins, line items included,
// and inv is overwritten with it.
func (s *Invoices) FindOrCreate(ctx context.Context, inv *models.Invoice) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Invoice
		err := tx.Preload("Items").
			Where("employee_id = ? AND number = ?", inv.EmployeeID, inv.Number).
			First(&existing).Error
		switch {
		case err == nil:
			*inv = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(inv).Error; err != nil {
				return err
			}
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	if created {
		s.audit(ctx, inv)
	}
	return created, nil
}

// audit records the creation. Best effort: a failed audit row never blocks
// the submission it describes.
func (s *Invoices) audit(ctx context.Context, inv *models.Invoice) {
	_ = s.db.WithContext(ctx).Create(&models.AuditLog{
		EmployeeID: inv.EmployeeID,
		EntityType: "invoice",
		EntityID:   inv.ID,
		Action:     "created",
	}).Error
}

func (s *Invoices) ByID(ctx context.Context, employeeID, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("employee_id = ?", employeeID).
		First(&inv, id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &inv, nil
}

func (s *Invoices) ListByEmployee(ctx context.Context, employeeID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *Invoices) MarkEmailed(ctx context.Context, id uint, at time.Time) error {
	return s.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("emailed_at", at).Error
}
