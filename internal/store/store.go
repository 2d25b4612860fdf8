// Package store implements the service ports on gorm. Lookups translate
// gorm.ErrRecordNotFound into services.ErrNotFound so callers never see the
// persistence layer.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/services"
)

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}
