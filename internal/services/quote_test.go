package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/schooldesk/ordering/internal/services"
	"github.com/schooldesk/ordering/internal/store"
)

func TestQuoteNumberFormat(t *testing.T) {
	day := time.Date(2025, time.December, 22, 23, 59, 0, 0, time.UTC)
	if got := services.QuoteNumber("28Q082", day); got != "28Q082x122225" {
		t.Fatalf("expected 28Q082x122225 got %q", got)
	}
	if got := services.QuoteNumber("15K001", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)); got != "15K001x010226" {
		t.Fatalf("expected 15K001x010226 got %q", got)
	}
}

// Eight cases of water at $20.00 with 8.875% tax and 1% shipping is the
// worked example the rest of the pipeline is checked against.
func TestQuoteBuildPricesCart(t *testing.T) {
	db := setupTestDB(t, t.Name())
	school := seedSchool(t, db)
	emp := seedEmployee(t, db, school.ID)
	seedProduct(t, db, "Poland Spring Water (48 ct/8 oz)", "20.00")

	carts := store.NewCarts(db)
	cartSvc := services.NewCartService(store.NewProducts(db), carts)
	ctx := context.Background()
	if err := cartSvc.AddItem(ctx, emp.ID, "Poland Spring Water (48 ct/8 oz)", 8); err != nil {
		t.Fatalf("add: %v", err)
	}

	quote, err := newQuoteService(db).Build(ctx, emp.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if quote.Number != "28Q082x122225" {
		t.Fatalf("expected number 28Q082x122225 got %q", quote.Number)
	}
	if quote.SchoolName != school.Name || quote.SchoolCode != "28Q082" {
		t.Fatalf("unexpected school on quote: %q %q", quote.SchoolName, quote.SchoolCode)
	}
	if quote.DeliveryWindow != emp.DeliveryWindow {
		t.Fatalf("expected delivery window %q got %q", emp.DeliveryWindow, quote.DeliveryWindow)
	}
	if len(quote.Lines) != 1 {
		t.Fatalf("expected 1 line got %d", len(quote.Lines))
	}
	line := quote.Lines[0]
	if line.Quantity != 8 || line.UnitPrice.StringFixed(2) != "20.00" || line.LineTotal.StringFixed(2) != "160.00" {
		t.Fatalf("unexpected line %+v", line)
	}
	for _, check := range []struct {
		name string
		got  string
		want string
	}{
		{"subtotal", quote.Subtotal.StringFixed(2), "160.00"},
		{"tax", quote.Tax.StringFixed(2), "14.20"},
		{"shipping", quote.Shipping.StringFixed(2), "1.60"},
		{"total", quote.Total.StringFixed(2), "175.80"},
	} {
		if check.got != check.want {
			t.Fatalf("%s: expected %s got %s", check.name, check.want, check.got)
		}
	}
}

func TestQuoteBuildEmptyCart(t *testing.T) {
	db := setupTestDB(t, t.Name())
	school := seedSchool(t, db)
	emp := seedEmployee(t, db, school.ID)

	quote, err := newQuoteService(db).Build(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(quote.Lines) != 0 {
		t.Fatalf("expected no lines got %d", len(quote.Lines))
	}
	if quote.Total.StringFixed(2) != "0.00" {
		t.Fatalf("expected zero total got %s", quote.Total)
	}
	if quote.Number != "28Q082x122225" {
		t.Fatalf("number still derives from school and date, got %q", quote.Number)
	}
}

func TestQuoteBuildMultipleLinesKeepInsertionOrder(t *testing.T) {
	db := setupTestDB(t, t.Name())
	school := seedSchool(t, db)
	emp := seedEmployee(t, db, school.ID)
	seedProduct(t, db, "Poland Spring Water (48 ct/8 oz)", "20.00")
	seedProduct(t, db, "Copy Paper (10 reams)", "42.50")
	seedProduct(t, db, "Disinfecting Wipes (320 ct)", "15.75")

	cartSvc := services.NewCartService(store.NewProducts(db), store.NewCarts(db))
	ctx := context.Background()
	for _, add := range []struct {
		desc string
		qty  int
	}{
		{"Copy Paper (10 reams)", 2},
		{"Poland Spring Water (48 ct/8 oz)", 1},
		{"Disinfecting Wipes (320 ct)", 3},
	} {
		if err := cartSvc.AddItem(ctx, emp.ID, add.desc, add.qty); err != nil {
			t.Fatalf("add %s: %v", add.desc, err)
		}
	}

	quote, err := newQuoteService(db).Build(ctx, emp.ID)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(quote.Lines) != 3 {
		t.Fatalf("expected 3 lines got %d", len(quote.Lines))
	}
	if quote.Lines[0].Description != "Copy Paper (10 reams)" {
		t.Fatalf("expected insertion order, first line %q", quote.Lines[0].Description)
	}
	// 85.00 + 20.00 + 47.25 = 152.25; tax 13.51; shipping 1.52
	if quote.Subtotal.StringFixed(2) != "152.25" {
		t.Fatalf("expected subtotal 152.25 got %s", quote.Subtotal.StringFixed(2))
	}
	if quote.Tax.StringFixed(2) != "13.51" {
		t.Fatalf("expected tax 13.51 got %s", quote.Tax.StringFixed(2))
	}
	if quote.Shipping.StringFixed(2) != "1.52" {
		t.Fatalf("expected shipping 1.52 got %s", quote.Shipping.StringFixed(2))
	}
	if quote.Total.StringFixed(2) != "167.28" {
		t.Fatalf("expected total 167.28 got %s", quote.Total.StringFixed(2))
	}
}
