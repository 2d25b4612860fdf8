package models

import "time"

// Audit logging
type AuditLog struct {
	ID         uint `gorm:"primaryKey"`
	EmployeeID uint
	EntityType string // ex: "invoice"
	EntityID   uint
	Action     string // ex: "created"
	CreatedAt  time.Time
}
