package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

// Products reads the product catalog. Descriptions are the lookup key;
// the catalog itself is seeded, never written through here.
type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products { return &Products{db: db} }

func (s *Products) PriceFor(ctx context.Context, description string) (decimal.Decimal, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Where("description = ?", description).First(&p).Error; err != nil {
		return decimal.Zero, mapNotFound(err)
	}
	return p.UnitPrice, nil
}

func (s *Products) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("description").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
