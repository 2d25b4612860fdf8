package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoicing models. An Invoice is created exactly once per submitted quote
// and is immutable afterwards except for EmailedAt. School name/code and the
// delivery window are denormalized so the record outlives catalog and
// employee edits.
type Invoice struct {
	ID             uint     `gorm:"primaryKey"`
	Number         string   `gorm:"size:40;not null;index:idx_invoice_employee_number,unique,priority:2"`
	EmployeeID     uint     `gorm:"not null;index:idx_invoice_employee_number,priority:1"`
	Employee       Employee `gorm:"foreignKey:EmployeeID"`
	SchoolName     string   `gorm:"not null"`
	SchoolCode     string   `gorm:"size:16;not null"`
	DeliveryWindow string
	Items          []InvoiceItem   `gorm:"foreignKey:InvoiceID"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Tax            decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Shipping       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	EmailedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type InvoiceItem struct {
	ID          uint            `gorm:"primaryKey"`
	InvoiceID   uint            `gorm:"not null;index"`
	Description string          `gorm:"size:160;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}
