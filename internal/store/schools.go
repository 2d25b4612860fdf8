package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

// Schools reads the fixed roster of district schools.
type Schools struct {
	db *gorm.DB
}

func NewSchools(db *gorm.DB) *Schools { return &Schools{db: db} }

func (s *Schools) ByID(ctx context.Context, id uint) (*models.School, error) {
	var school models.School
	if err := s.db.WithContext(ctx).First(&school, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &school, nil
}

func (s *Schools) ByName(ctx context.Context, name string) (*models.School, error) {
	var school models.School
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&school).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &school, nil
}
