package db

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/schooldesk/ordering/internal/models"
)

// ConnectAndMigrate opens the database, brings the schema up to date and,
// when DB_SEED is on, loads the district roster and the catalog. Connection
// attempts retry for a while so the service survives a database that is
// still booting.
func ConnectAndMigrate(dsn string, log *zap.Logger) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, errors.New("database dsn is empty")
	}

	logLevel := logger.Silent
	if envFlag("DB_DEBUG") {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		log.Warn("retrying database connection", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping: %w", pingErr)
	}
	log.Info("database connected", zap.String("dsn", maskDSN(dsn)))

	// MIGRATIONS=1 runs the SQL files; otherwise AutoMigrate keeps dev setups moving.
	if envFlag("MIGRATIONS") {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations: %w", err)
		}
	} else if err := autoMigrate(db); err != nil {
		return nil, err
	}

	for _, table := range []string{"schools", "employees", "products"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	if envFlag("DB_SEED") {
		seed(db, log)
	}
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	for _, m := range []interface{}{
		&models.School{}, &models.Employee{}, &models.Product{},
		&models.CartItem{}, &models.Invoice{}, &models.InvoiceItem{}, &models.AuditLog{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// runSQLMigrations executes the SQL files under ./migrations with
// golang-migrate, which wants the URL DSN form.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", ToURLDSN(dsn))
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// seed loads reference data: the school roster and the fixed catalog.
// Existing rows are left alone, so reseeding is safe.
func seed(db *gorm.DB, log *zap.Logger) {
	schools := []models.School{
		{Name: "P.S. 082 - The Hammond School", Code: "28Q082"},
		{Name: "P.S. 144 - Col. Jeromus Remsen School", Code: "28Q144"},
		{Name: "J.H.S. 157 - Stephen A. Halsey", Code: "28Q157"},
	}
	for _, s := range schools {
		var existing models.School
		if err := db.Where("code = ?", s.Code).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&s).Error; err != nil {
				log.Warn("seed school", zap.String("code", s.Code), zap.Error(err))
			}
		}
	}

	products := []models.Product{
		{Description: "Poland Spring Water (48 ct/8 oz)", UnitPrice: decimal.RequireFromString("20.00")},
		{Description: "Copy Paper (10 reams)", UnitPrice: decimal.RequireFromString("42.50")},
		{Description: "Disinfecting Wipes (320 ct)", UnitPrice: decimal.RequireFromString("15.75")},
		{Description: "Dry Erase Markers (12 ct)", UnitPrice: decimal.RequireFromString("8.99")},
		{Description: "Hand Sanitizer (1 L pump)", UnitPrice: decimal.RequireFromString("11.25")},
	}
	for _, p := range products {
		var existing models.Product
		if err := db.Where("description = ?", p.Description).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&p).Error; err != nil {
				log.Warn("seed product", zap.String("description", p.Description), zap.Error(err))
			}
		}
	}
}

func envFlag(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

var passwordRe = regexp.MustCompile(`(password=)(\S+)`)

func maskDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "***")
			return u.String()
		}
	}
	return passwordRe.ReplaceAllString(dsn, `${1}***`)
}
