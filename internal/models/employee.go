package models

import "time"

// Employee & account related models
type Employee struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"unique;not null;index"`
	PasswordHash   string `gorm:"not null"`
	FirstName      string `gorm:"index"`
	LastName       string `gorm:"index"`
	Title          string
	Phone          string
	DeliveryWindow string
	SchoolID       uint   `gorm:"not null;index"`
	School         School `gorm:"foreignKey:SchoolID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
