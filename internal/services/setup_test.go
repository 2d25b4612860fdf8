package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
	"github.com/schooldesk/ordering/internal/services"
	"github.com/schooldesk/ordering/internal/store"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.School{}, &models.Employee{}, &models.Product{},
		&models.CartItem{}, &models.Invoice{}, &models.InvoiceItem{}, &models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSchool(t *testing.T, db *gorm.DB) models.School {
	school := models.School{Name: "P.S. 082 - The Hammond School", Code: "28Q082"}
	if err := db.Create(&school).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	return school
}

func seedEmployee(t *testing.T, db *gorm.DB, schoolID uint) models.Employee {
	emp := models.Employee{
		Email:          "m.delgado@schools.nyc.gov",
		PasswordHash:   "irrelevant",
		FirstName:      "Maria",
		LastName:       "Delgado",
		Title:          "Parent Coordinator",
		Phone:          "718-555-0114",
		DeliveryWindow: "Tue/Thu 8-11am",
		SchoolID:       schoolID,
	}
	if err := db.Create(&emp).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return emp
}

func seedProduct(t *testing.T, db *gorm.DB, description, price string) models.Product {
	p := models.Product{Description: description, UnitPrice: decimal.RequireFromString(price)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Today() time.Time { return c.t }

// dec22 pins quotes to 12/22/25 so numbers come out deterministic.
var dec22 = fixedClock{time.Date(2025, time.December, 22, 9, 30, 0, 0, time.UTC)}

func testRates() services.FixedRates {
	return services.FixedRates{
		Tax:      decimal.RequireFromString("0.08875"),
		Shipping: decimal.RequireFromString("0.01"),
	}
}

func newQuoteService(db *gorm.DB) *services.QuoteService {
	return services.NewQuoteService(
		store.NewEmployees(db), store.NewSchools(db), store.NewCarts(db), dec22, testRates(),
	)
}
