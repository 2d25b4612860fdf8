package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. Description is the lookup key used by carts;
// UnitPrice is exact decimal, never float.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Description string          `gorm:"size:160;unique;not null;index"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
