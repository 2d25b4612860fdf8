package models

import "time"

// School is immutable reference data; Code prefixes quote numbers.
type School struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null;index"`
	Code      string `gorm:"size:16;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
