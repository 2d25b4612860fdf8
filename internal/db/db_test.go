package db

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/schooldesk/ordering/internal/models"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  postgres://u:p@db:5432/ordering?sslmode=disable  ", "postgres://u:p@db:5432/ordering?sslmode=disable"},
		{`"host=db user=u dbname=ordering"`, "host=db user=u dbname=ordering sslmode=disable"},
		{"host=db   user=u  dbname=ordering sslmode=require", "host=db user=u dbname=ordering sslmode=require"},
		{"not a dsn at all", "not a dsn at all"},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Fatalf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToURLDSN(t *testing.T) {
	got := ToURLDSN("host=db port=5432 user=u password=secret dbname=ordering sslmode=disable")
	want := "postgres://u:secret@db:5432/ordering?sslmode=disable"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	// URL form and underspecified input pass through.
	if got := ToURLDSN("postgres://u@db/ordering"); got != "postgres://u@db/ordering" {
		t.Fatalf("url passthrough broken: %q", got)
	}
	if got := ToURLDSN("host=db"); got != "host=db" {
		t.Fatalf("sparse passthrough broken: %q", got)
	}
}

func TestMaskDSN(t *testing.T) {
	if got := maskDSN("postgres://u:secret@db:5432/ordering"); got != "postgres://u:***@db:5432/ordering" {
		t.Fatalf("url mask: %q", got)
	}
	if got := maskDSN("host=db user=u password=secret dbname=ordering"); got != "host=db user=u password=*** dbname=ordering" {
		t.Fatalf("kv mask: %q", got)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := autoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed(conn, zap.NewNop())
	seed(conn, zap.NewNop())

	var schoolCount, productCount int64
	if err := conn.Model(&models.School{}).Count(&schoolCount).Error; err != nil {
		t.Fatalf("count schools: %v", err)
	}
	if err := conn.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if schoolCount != 3 {
		t.Fatalf("expected 3 schools got %d", schoolCount)
	}
	if productCount != 5 {
		t.Fatalf("expected 5 products got %d", productCount)
	}

	var school models.School
	if err := conn.Where("code = ?", "28Q082").First(&school).Error; err != nil {
		t.Fatalf("default school missing: %v", err)
	}
	if school.Name != "P.S. 082 - The Hammond School" {
		t.Fatalf("unexpected school name %q", school.Name)
	}

	var water models.Product
	if err := conn.Where("description = ?", "Poland Spring Water (48 ct/8 oz)").First(&water).Error; err != nil {
		t.Fatalf("catalog missing water: %v", err)
	}
	if water.UnitPrice.StringFixed(2) != "20.00" {
		t.Fatalf("expected 20.00 got %s", water.UnitPrice.StringFixed(2))
	}
}
