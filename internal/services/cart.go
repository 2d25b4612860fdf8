package services

import (
	"context"
	"errors"

	"github.com/schooldesk/ordering/internal/models"
)

// CartService guards cart mutations: quantities must be positive and every
// description must price against the catalog before it enters the cart.
type CartService struct {
	catalog Catalog
	carts   CartStore
}

func NewCartService(catalog Catalog, carts CartStore) *CartService {
	return &CartService{catalog: catalog, carts: carts}
}

// AddItem prices description against the catalog and merges it into the
// employee's cart. Adding a product already in the cart bumps its quantity.
func (s *CartService) AddItem(ctx context.Context, employeeID uint, description string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	unit, err := s.catalog.PriceFor(ctx, description)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUnknownProduct
		}
		return err
	}
	return s.carts.Add(ctx, employeeID, description, quantity, unit)
}

func (s *CartService) Items(ctx context.Context, employeeID uint) ([]models.CartItem, error) {
	return s.carts.Items(ctx, employeeID)
}

// Clear empties the cart; clearing an already-empty cart is a no-op.
func (s *CartService) Clear(ctx context.Context, employeeID uint) error {
	return s.carts.Clear(ctx, employeeID)
}
