package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

// Carts keeps one open cart per employee, one row per distinct product.
type Carts struct {
	db *gorm.DB
}

func NewCarts(db *gorm.DB) *Carts { return &Carts{db: db} }

// Add merges quantity into the row for the same product or inserts a new
// one. The lookup and write share a transaction so concurrent adds cannot
// fork the row.
func (s *Carts) Add(ctx context.Context, employeeID uint, description string, quantity int, unitPrice decimal.Decimal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("employee_id = ? AND description = ?", employeeID, description).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			item.UnitPrice = unitPrice
			return tx.Save(&item).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.CartItem{
				EmployeeID:  employeeID,
				Description: description,
				Quantity:    quantity,
				UnitPrice:   unitPrice,
			}).Error
		default:
			return err
		}
	})
}

func (s *Carts) Items(ctx context.Context, employeeID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Carts) Clear(ctx context.Context, employeeID uint) error {
	return s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&models.CartItem{}).Error
}
