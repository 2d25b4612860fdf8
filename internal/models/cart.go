package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one cart line. One line per (employee, description): adding
// the same product again merges quantities and refreshes UnitPrice from the
// catalog.
type CartItem struct {
	ID          uint            `gorm:"primaryKey"`
	EmployeeID  uint            `gorm:"not null;index:idx_cart_employee_desc,unique,priority:1"`
	Description string          `gorm:"size:160;not null;index:idx_cart_employee_desc,unique,priority:2"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
