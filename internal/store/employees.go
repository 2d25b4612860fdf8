package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

// Employees persists employee accounts.
type Employees struct {
	db *gorm.DB
}

func NewEmployees(db *gorm.DB) *Employees { return &Employees{db: db} }

func (s *Employees) Create(ctx context.Context, e *models.Employee) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *Employees) ByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &emp, nil
}

func (s *Employees) ByID(ctx context.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &emp, nil
}

func (s *Employees) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
